package notify

import (
	"context"

	"github.com/google/uuid"
)

// Kind identifies what a notification reports.
type Kind string

const (
	KindArrived        Kind = "arrived"
	KindCombatStarted  Kind = "combat_started"
	KindHullDamaged    Kind = "hull_damaged"
	KindCrewJoined     Kind = "crew_joined"
	KindFactionChanged Kind = "faction_changed"
	KindDiscovery      Kind = "discovery"
	KindChoiceRejected Kind = "choice_rejected"
	KindTravelRejected Kind = "travel_rejected"
)

// Notification is a one-way message for collaborators outside the core,
// such as a combat system or the display log.
type Notification struct {
	Kind     Kind           `json:"kind"`
	Message  string         `json:"message"`
	SectorID int            `json:"sector_id"`
	Data     map[string]any `json:"data,omitempty"`
}

// Recorder accepts notifications as they are produced.
type Recorder interface {
	Record(n Notification)
}

// Sink delivers a batch of notifications for a session.
type Sink interface {
	Publish(ctx context.Context, sessionID uuid.UUID, batch []Notification) error
}

// Outbox buffers notifications until they are drained.
type Outbox struct {
	pending []Notification
}

// NewOutbox returns an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

// Record appends n.
func (o *Outbox) Record(n Notification) {
	o.pending = append(o.pending, n)
}

// Len returns the number of buffered notifications.
func (o *Outbox) Len() int {
	return len(o.pending)
}

// Pending returns a copy of the buffered notifications without removing them.
func (o *Outbox) Pending() []Notification {
	out := make([]Notification, len(o.pending))
	copy(out, o.pending)
	return out
}

// Drain returns the buffered notifications and empties the outbox.
func (o *Outbox) Drain() []Notification {
	out := o.pending
	o.pending = nil
	return out
}

// Requeue puts a batch back at the front, ahead of anything recorded since.
func (o *Outbox) Requeue(batch []Notification) {
	if len(batch) == 0 {
		return
	}
	o.pending = append(append([]Notification{}, batch...), o.pending...)
}
