package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

// OperationType is the kind of monetary movement a statement records
type OperationType string

// Operation types
const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// ParseOperationType validates a raw operation name
func ParseOperationType(operation string) (OperationType, error) {
	switch OperationType(strings.ToLower(strings.TrimSpace(operation))) {
	case OperationDeposit:
		return OperationDeposit, nil
	case OperationWithdraw:
		return OperationWithdraw, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidOperationType, operation)
	}
}

// Statement is one immutable ledger entry.
// ID and CreatedAt are assigned by the statement store on append.
type Statement struct {
	ID          string          // Unique identifier assigned on append
	UserID      string          // Owning user
	Type        OperationType   // deposit or withdraw
	Amount      decimal.Decimal // Always positive, direction comes from Type
	Description string          // Free text supplied by the caller
	CreatedAt   time.Time       // When the statement was appended
}

// NewStatement validates the inputs and builds an unsaved statement
func NewStatement(userID string, operation OperationType, amount decimal.Decimal, description string) (*Statement, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	if operation != OperationDeposit && operation != OperationWithdraw {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidOperationType, operation)
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	return &Statement{
		UserID:      userID,
		Type:        operation,
		Amount:      amount,
		Description: description,
	}, nil
}

// IsDeposit returns true if this statement increases the balance
func (s *Statement) IsDeposit() bool {
	return s.Type == OperationDeposit
}

// IsWithdraw returns true if this statement decreases the balance
func (s *Statement) IsWithdraw() bool {
	return s.Type == OperationWithdraw
}

// SignedAmount returns the amount with the sign of its effect on the balance
func (s *Statement) SignedAmount() decimal.Decimal {
	if s.IsWithdraw() {
		return s.Amount.Neg()
	}
	return s.Amount
}

// GetAmount returns the amount as a string with 2 decimal places
func (s *Statement) GetAmount() string {
	return FormatAmount(s.Amount)
}
