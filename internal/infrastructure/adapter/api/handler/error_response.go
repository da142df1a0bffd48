package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/dto"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsInsufficientFundsError(err),
		errs.IsUserLockedError(err),
		errors.Is(err, errs.ErrDuplicateUser):
		return http.StatusConflict
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error body. Server errors hide their cause.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusCode(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.Error("Request failed with server error", map[string]any{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
		message = "Internal server error"
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
