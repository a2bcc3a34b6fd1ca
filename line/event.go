package line

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Event types the bot reacts to. Any other type is accepted and ignored.
const (
	EventTypeMessage  = "message"
	EventTypeFollow   = "follow"
	EventTypeUnfollow = "unfollow"
	EventTypeJoin     = "join"
	EventTypeLeave    = "leave"
	EventTypePostback = "postback"
)

const (
	ModeActive  = "active"
	ModeStandby = "standby"
)

const (
	SourceTypeUser  = "user"
	SourceTypeGroup = "group"
	SourceTypeRoom  = "room"
)

const MessageTypeText = "text"

var ErrEventTypeMissing = errors.New("webhook event has no type")

// WebhookBody is the JSON document posted to the webhook route.
// Events are kept raw so they can be forwarded exactly as received.
type WebhookBody struct {
	Destination string            `json:"destination"`
	Events      []json.RawMessage `json:"events" binding:"required"`
}

type Event struct {
	Type            string          `json:"type"`
	Mode            string          `json:"mode"`
	Timestamp       int64           `json:"timestamp"`
	WebhookEventID  string          `json:"webhookEventId"`
	ReplyToken      string          `json:"replyToken"`
	Source          Source          `json:"source"`
	Message         *Message        `json:"message,omitempty"`
	DeliveryContext DeliveryContext `json:"deliveryContext"`
}

type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
	RoomID  string `json:"roomId"`
}

// ID returns the identifier of the conversation the event belongs to.
func (s Source) ID() string {
	switch s.Type {
	case SourceTypeGroup:
		return s.GroupID
	case SourceTypeRoom:
		return s.RoomID
	default:
		return s.UserID
	}
}

type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// ParseEvent decodes a single raw webhook event.
func ParseEvent(raw json.RawMessage) (Event, error) {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return Event{}, fmt.Errorf("failed to parse webhook event: %w", err)
	}

	if event.Type == "" {
		return Event{}, ErrEventTypeMissing
	}

	return event, nil
}

// IsText reports whether the event is a text message.
func (e Event) IsText() bool {
	return e.Type == EventTypeMessage && e.Message != nil && e.Message.Type == MessageTypeText
}
