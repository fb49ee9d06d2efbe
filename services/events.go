package services

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// Event names consumed by the real-time dashboards.
const (
	EventOrderCreated       = "order-created"
	EventOrderStatusUpdated = "order-status-updated"
	EventOrderChefAssigned  = "order-chef-assigned"
	EventOrderCancelled     = "order-cancelled"
	EventTableReserved      = "table-reserved"
	EventTableFreed         = "table-freed"
	EventTableCreated       = "table-created"
	EventTableUpdated       = "table-updated"
	EventTableDeleted       = "table-deleted"
)

type Envelope struct {
	ID    string    `json:"id"`
	Event string    `json:"event"`
	At    time.Time `json:"at"`
	Data  any       `json:"data"`
}

// EventSink receives state-change events. Delivery is best-effort,
// at-most-once; a failing sink must never fail the triggering operation.
type EventSink interface {
	Publish(env Envelope) error
}

// MultiSink fans out to every sink, keeping going past failures.
type MultiSink []EventSink

func (m MultiSink) Publish(env Envelope) error {
	var first error
	for _, s := range m {
		if err := s.Publish(env); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// emit wraps the payload in an envelope and publishes fire-and-forget.
func emit(sink EventSink, event string, payload any) {
	if sink == nil {
		return
	}
	env := Envelope{
		ID:    uuid.NewString(),
		Event: event,
		At:    time.Now().UTC(),
		Data:  payload,
	}
	if err := sink.Publish(env); err != nil {
		log.Printf("event %s dropped: %v", event, err)
	}
}
