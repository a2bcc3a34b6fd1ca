package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	p := NewPrompt(2)
	require.Equal(t, 0, p.Len())
	require.Equal(t, "", p.String())

	p.Write(roleUser, "  hello ")
	require.Equal(t, "user: hello", p.String())

	p.Write(roleUser, "second")
	p.Write(roleUser, "third")
	require.Equal(t, 2, p.Len())
	require.Equal(t, "user: second\nuser: third", p.String())
}
