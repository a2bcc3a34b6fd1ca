package app

import (
	"fmt"
	"strings"
)

const (
	roleUser = "user"
)

// Prompt is the rolling conversation history of one source.
type Prompt struct {
	lines []string
	max   int
}

func NewPrompt(max int) *Prompt {
	return &Prompt{max: max}
}

// Write appends a line and drops the oldest ones beyond the limit.
func (p *Prompt) Write(role, text string) {
	p.lines = append(p.lines, fmt.Sprintf("%s: %s", role, strings.TrimSpace(text)))
	if over := len(p.lines) - p.max; over > 0 {
		p.lines = p.lines[over:]
	}
}

func (p *Prompt) Len() int {
	return len(p.lines)
}

func (p *Prompt) String() string {
	return strings.Join(p.lines, "\n")
}
