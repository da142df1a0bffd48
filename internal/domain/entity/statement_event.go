package entity

import (
	"time"
)

// EventStatementCreated is the event type emitted after a statement is appended
const EventStatementCreated = "statement.created"

// StatementCreatedEvent is published once a statement has been committed
type StatementCreatedEvent struct {
	EventType   string    `json:"event_type"`
	StatementID string    `json:"statement_id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewStatementCreatedEvent builds the event for a committed statement
func NewStatementCreatedEvent(statement *Statement) StatementCreatedEvent {
	return StatementCreatedEvent{
		EventType:   EventStatementCreated,
		StatementID: statement.ID,
		UserID:      statement.UserID,
		Type:        string(statement.Type),
		Amount:      statement.GetAmount(),
		Description: statement.Description,
		OccurredAt:  statement.CreatedAt,
	}
}
