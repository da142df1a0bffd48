package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidUserID        = 4003
	CodeInvalidOperationType = 4004
	CodeInvalidUserData      = 4005
	CodeInvalidRequest       = 4006
	CodeUserNotFound         = 4040
	CodeStatementNotFound    = 4041
	CodeDuplicateUser        = 4090
	CodeUserLocked           = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidStatementID is returned when the statement ID is empty
	ErrInvalidStatementID = errors.New("invalid statement ID")

	// ErrInvalidOperationType is returned when the operation is neither deposit nor withdraw
	ErrInvalidOperationType = errors.New("invalid operation type")

	// ErrInvalidUserData is returned when registration data is incomplete
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrStatementNotFound is returned when no statement with the ID exists for the user
	ErrStatementNotFound = errors.New("statement not found")

	// ErrDuplicateUser is returned when the email is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrUserLocked is returned when the per-user lock could not be acquired in time
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when the backing store fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidStatementID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidOperationType):
		return CodeInvalidOperationType
	case errors.Is(err, ErrInvalidUserData):
		return CodeInvalidUserData
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrStatementNotFound):
		return CodeStatementNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected withdrawal
type InsufficientFundsError struct {
	UserID  string
	Amount  string
	Balance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: requested %s, available %s",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID, amount, balance string) error {
	return &InsufficientFundsError{
		UserID:  userID,
		Amount:  amount,
		Balance: balance,
	}
}

// StatementError describes a failed statement operation with its context
type StatementError struct {
	UserID      string
	StatementID string
	Operation   string
	Err         error
}

// Error implements the error interface for StatementError
func (e *StatementError) Error() string {
	if e.StatementID == "" {
		return fmt.Sprintf("%s failed for user %s: %v", e.Operation, e.UserID, e.Err)
	}
	return fmt.Sprintf("%s failed for user %s (statement %s): %v", e.Operation, e.UserID, e.StatementID, e.Err)
}

// Unwrap returns the underlying error
func (e *StatementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StatementError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "statement_error",
		"user_id":      e.UserID,
		"statement_id": e.StatementID,
		"operation":    e.Operation,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewStatementError wraps err with the statement operation context
func NewStatementError(operation, userID, statementID string, err error) error {
	return &StatementError{
		UserID:      userID,
		StatementID: statementID,
		Operation:   operation,
		Err:         err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrStatementNotFound)
}

// IsValidationError reports whether err is a client input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidStatementID) ||
		errors.Is(err, ErrInvalidOperationType) ||
		errors.Is(err, ErrInvalidUserData) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}
