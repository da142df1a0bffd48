package dto

import (
	"time"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// StatementRequest represents the API request for a deposit or withdraw
type StatementRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

// StatementResponse represents a single ledger statement
type StatementResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewStatementResponse converts a statement entity
func NewStatementResponse(s *entity.Statement) StatementResponse {
	return StatementResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Type:        string(s.Type),
		Amount:      s.GetAmount(),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}
