package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/seller-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSellerCreated     EventType = "seller_created"
	EventSellerUpdated     EventType = "seller_updated"
	EventSellerDeleted     EventType = "seller_deleted"
	EventDepartmentCreated EventType = "department_created"
	EventDepartmentUpdated EventType = "department_updated"
	EventDepartmentDeleted EventType = "department_deleted"
)

// AllEventTypes lists every event type services publish.
var AllEventTypes = []EventType{
	EventSellerCreated,
	EventSellerUpdated,
	EventSellerDeleted,
	EventDepartmentCreated,
	EventDepartmentUpdated,
	EventDepartmentDeleted,
}

// Actor identifies who triggered an event.
type Actor struct {
	Subject string      `json:"subject,omitempty"`
	Role    domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	EntityID  int       `json:"entity_id"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, entityID int, actor Actor, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// SellerPayload is attached to seller events.
type SellerPayload struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	BaseSalary   float64 `json:"base_salary"`
	DepartmentID int     `json:"department_id"`
}

// DepartmentPayload is attached to department events.
type DepartmentPayload struct {
	Name string `json:"name"`
}
