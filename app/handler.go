package app

import (
	"context"
	"encoding/json"
)

// Handler receives the events of one webhook call, in the order they were sent.
type Handler interface {
	HandleEvents(ctx context.Context, events []json.RawMessage) error
	PrintPrompts()
}
