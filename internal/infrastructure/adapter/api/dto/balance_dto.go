package dto

import "github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"

// BalanceResponse represents the API response for a user's balance and history
type BalanceResponse struct {
	UserID     string              `json:"userId"`
	Balance    string              `json:"balance"`
	Statements []StatementResponse `json:"statements"`
}

// NewBalanceResponse builds the response from a derived balance
func NewBalanceResponse(balance *entity.Balance) BalanceResponse {
	statements := make([]StatementResponse, 0, len(balance.Statements))
	for _, s := range balance.Statements {
		statements = append(statements, NewStatementResponse(s))
	}

	return BalanceResponse{
		UserID:     balance.UserID,
		Balance:    balance.GetBalance(),
		Statements: statements,
	}
}
