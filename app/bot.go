package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/BenWeng0419/gpt-ai-assistant/line"
	"github.com/BenWeng0419/gpt-ai-assistant/storage"
	"github.com/rs/zerolog/log"
)

// storage key holding every conversation the bot has seen, id -> source type
const SourcesKey = "sources"

// how many webhook event ids are remembered to drop redeliveries
const recentEventsSize = 1024

// Bot keeps per-conversation prompts and the list of known sources.
type Bot struct {
	storage     storage.Storage
	maxMessages int

	mu      sync.Mutex
	prompts map[string]*Prompt
	recent  *recentEvents

	// serializes the read-modify-write of the sources item
	sourcesMu sync.Mutex
}

func NewBot(store storage.Storage, maxMessages int) *Bot {
	return &Bot{
		storage:     store,
		maxMessages: maxMessages,
		prompts:     make(map[string]*Prompt),
		recent:      newRecentEvents(recentEventsSize),
	}
}

// HandleEvents processes events one by one in order and stops at the first failure.
func (b *Bot) HandleEvents(ctx context.Context, events []json.RawMessage) error {
	for i, raw := range events {
		event, err := line.ParseEvent(raw)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}

		if err := b.handleEvent(ctx, event); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, event.Type, err)
		}
	}

	return nil
}

func (b *Bot) handleEvent(ctx context.Context, event line.Event) error {
	// another channel owns the conversation
	if event.Mode == line.ModeStandby {
		return nil
	}

	if event.DeliveryContext.IsRedelivery && b.recent.seen(event.WebhookEventID) {
		log.Debug().Str("webhook_event_id", event.WebhookEventID).Msg("skipping redelivered event")
		return nil
	}

	sourceID := event.Source.ID()
	if sourceID == "" {
		return nil
	}

	if err := b.rememberSource(ctx, event.Source); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch event.Type {
	case line.EventTypeMessage:
		if event.IsText() {
			b.promptFor(sourceID).Write(roleUser, event.Message.Text)
		}
	case line.EventTypeFollow, line.EventTypeJoin:
		b.prompts[sourceID] = NewPrompt(b.maxMessages)
	case line.EventTypeUnfollow, line.EventTypeLeave:
		delete(b.prompts, sourceID)
	}

	// only handled events count as seen, a failed one must be retried on redelivery
	b.recent.add(event.WebhookEventID)

	return nil
}

// must be called with b.mu held
func (b *Bot) promptFor(sourceID string) *Prompt {
	prompt, ok := b.prompts[sourceID]
	if !ok {
		prompt = NewPrompt(b.maxMessages)
		b.prompts[sourceID] = prompt
	}
	return prompt
}

func (b *Bot) rememberSource(ctx context.Context, source line.Source) error {
	b.sourcesMu.Lock()
	defer b.sourcesMu.Unlock()

	sources := map[string]string{}

	raw, err := b.storage.GetItem(ctx, SourcesKey)
	switch {
	case errors.Is(err, storage.ErrItemNotFound):
	case err != nil:
		return fmt.Errorf("failed to load sources: %w", err)
	default:
		if err := json.Unmarshal([]byte(raw), &sources); err != nil {
			return fmt.Errorf("failed to parse sources: %w", err)
		}
	}

	id := source.ID()
	if sources[id] == source.Type {
		return nil
	}
	sources[id] = source.Type

	data, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to serialize sources: %w", err)
	}

	if err := b.storage.SetItem(ctx, SourcesKey, string(data)); err != nil {
		return fmt.Errorf("failed to save sources: %w", err)
	}

	return nil
}

// PrintPrompts logs the prompt of every conversation, ordered by source id.
func (b *Bot) PrintPrompts() {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]string, 0, len(b.prompts))
	for id := range b.prompts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		prompt := b.prompts[id]
		log.Info().
			Str("source", id).
			Int("messages", prompt.Len()).
			Msg("\n" + prompt.String())
	}
}

// Prompt returns the current prompt text for a source.
func (b *Bot) Prompt(sourceID string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	prompt, ok := b.prompts[sourceID]
	if !ok {
		return ""
	}
	return prompt.String()
}

// recentEvents is a fixed size set of webhook event ids, oldest evicted first.
type recentEvents struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
	size  int
}

func newRecentEvents(size int) *recentEvents {
	return &recentEvents{
		ids:  make(map[string]struct{}, size),
		size: size,
	}
}

// seen reports whether id was added before. Empty ids are never seen.
func (r *recentEvents) seen(id string) bool {
	if id == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.ids[id]
	return ok
}

// add reports whether id was new. Empty ids are always new.
func (r *recentEvents) add(id string) bool {
	if id == "" {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return false
	}

	r.ids[id] = struct{}{}
	r.order = append(r.order, id)
	if len(r.order) > r.size {
		delete(r.ids, r.order[0])
		r.order = r.order[1:]
	}

	return true
}
