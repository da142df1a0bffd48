package entity

import (
	"github.com/shopspring/decimal"
)

// Balance is the derived view of a user's ledger at a point in time
type Balance struct {
	UserID     string
	Amount     decimal.Decimal
	Statements []*Statement // Oldest first
}

// ComputeBalance sums deposits and subtracts withdrawals
func ComputeBalance(statements []*Statement) decimal.Decimal {
	balance := decimal.Zero
	for _, statement := range statements {
		balance = balance.Add(statement.SignedAmount())
	}
	return balance
}

// NewBalance derives the balance for the given ordered statements
func NewBalance(userID string, statements []*Statement) *Balance {
	if statements == nil {
		statements = []*Statement{}
	}
	return &Balance{
		UserID:     userID,
		Amount:     ComputeBalance(statements),
		Statements: statements,
	}
}

// GetBalance returns the balance as a string with 2 decimal places
func (b *Balance) GetBalance() string {
	return FormatAmount(b.Amount)
}

// CanWithdraw reports whether amount is covered by the balance
func (b *Balance) CanWithdraw(amount decimal.Decimal) bool {
	return !amount.GreaterThan(b.Amount)
}
