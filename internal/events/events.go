// Package events defines the domain events emitted after each committed
// operation, and the sink they are delivered to.
package events

import (
	"huddle-auction/internal/models"
	"huddle-auction/utils"
)

// Type names one kind of domain event.
type Type string

const (
	TypeHostRegistered Type = "HostRegistered"
	TypeHuddleCreated  Type = "HuddleCreated"
	TypeHuddleOpen     Type = "HuddleOpen"
	TypeHuddleAccepted Type = "HuddleAccepted"
	TypeBidCreated     Type = "BidCreated"
	TypeClaimed        Type = "Claimed"
	TypeRatingSent     Type = "RatingSent"
)

// Event carries the accounts, identifiers and amounts relevant to one
// committed operation. Unused fields stay at their zero value.
type Event struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	Host        string          `json:"host,omitempty"`
	Guest       string          `json:"guest,omitempty"`
	HuddleID    models.HuddleID `json:"huddle_id,omitempty"`
	Value       models.Balance  `json:"value,omitempty"`
	ScheduledAt models.Moment   `json:"scheduled_at,omitempty"`
	Stars       uint8           `json:"stars,omitempty"`
}

// New stamps a fresh event envelope of the given type.
func New(t Type) Event {
	return Event{ID: utils.GenerateID(), Type: t}
}

// Sink receives events strictly after the operation producing them has
// committed. Delivery is fire-and-forget; the engine never consumes events.
type Sink interface {
	Emit(e Event)
}

// LogSink writes every event to the structured log.
type LogSink struct{}

func (LogSink) Emit(e Event) {
	utils.Info("domain event", map[string]any{
		"event_id":     e.ID,
		"event_type":   string(e.Type),
		"host":         e.Host,
		"guest":        e.Guest,
		"huddle_id":    uint64(e.HuddleID),
		"value":        uint64(e.Value),
		"scheduled_at": int64(e.ScheduledAt),
		"stars":        e.Stars,
	})
}

// NopSink discards events (useful in benchmarks).
type NopSink struct{}

func (NopSink) Emit(Event) {}
