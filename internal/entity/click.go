package entity

import (
	"encoding/json"
	"errors"
	"time"
)

// EventTypeLinkClick is the only message type the click queue carries.
const EventTypeLinkClick = "LINK_CLICK"

// ClickEvent is one recorded redirect. The ID doubles as the idempotency key
// for persistence, so redelivered copies collapse into a single stored row.
type ClickEvent struct {
	ID          string    `json:"id"`
	LinkID      string    `json:"linkId"`
	AccountID   string    `json:"accountId"`
	Destination string    `json:"destination"`
	Country     string    `json:"country"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Validate reports whether the event satisfies the wire schema. Consumers
// treat a violation as fatal (dead-letter), never as retryable.
func (e ClickEvent) Validate() error {
	switch {
	case e.ID == "":
		return errors.New("click event: empty id")
	case e.LinkID == "":
		return errors.New("click event: empty linkId")
	case e.AccountID == "":
		return errors.New("click event: empty accountId")
	case e.Destination == "":
		return errors.New("click event: empty destination")
	case e.Timestamp.IsZero():
		return errors.New("click event: zero timestamp")
	}
	return nil
}

// Envelope is the producer→consumer queue message contract.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// NewClickEnvelope wraps an event into a LINK_CLICK envelope.
func NewClickEnvelope(ev ClickEvent) (Envelope, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: EventTypeLinkClick, Data: data}, nil
}

// EvaluationTrigger is the hand-off payload for the external health-evaluation
// workflow. At most one trigger is produced per link within a cool-down window.
type EvaluationTrigger struct {
	LinkID       string    `json:"linkId"`
	AccountID    string    `json:"accountId"`
	ClickEventID string    `json:"clickEventId"`
	ScheduledAt  time.Time `json:"scheduledAt"`
}

// CountUpdate is one live-counter push to a click-stream subscriber.
type CountUpdate struct {
	NewCount int64 `json:"newCount"`
}
