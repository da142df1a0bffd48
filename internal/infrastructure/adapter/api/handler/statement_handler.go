package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/dto"
)

// StatementHandler handles ledger HTTP requests
type StatementHandler struct {
	statementUseCase usecase.StatementUseCase
	logger           coreport.Logger
}

// NewStatementHandler creates a new statement handler instance
func NewStatementHandler(
	statementUseCase usecase.StatementUseCase,
	logger coreport.Logger,
) *StatementHandler {
	return &StatementHandler{
		statementUseCase: statementUseCase,
		logger:           logger,
	}
}

// Deposit handles the POST /users/:userId/statements/deposit endpoint
func (h *StatementHandler) Deposit(c *gin.Context) {
	h.createStatement(c, entity.OperationDeposit)
}

// Withdraw handles the POST /users/:userId/statements/withdraw endpoint
func (h *StatementHandler) Withdraw(c *gin.Context) {
	h.createStatement(c, entity.OperationWithdraw)
}

func (h *StatementHandler) createStatement(c *gin.Context, operation entity.OperationType) {
	var req dto.StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	statement, err := h.statementUseCase.CreateStatement(
		c.Request.Context(),
		c.Param("userId"),
		operation,
		amount,
		req.Description,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewStatementResponse(statement))
}

// GetBalance handles the GET /users/:userId/balance endpoint
func (h *StatementHandler) GetBalance(c *gin.Context) {
	balance, err := h.statementUseCase.GetBalance(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// GetStatement handles the GET /users/:userId/statements/:statementId endpoint
func (h *StatementHandler) GetStatement(c *gin.Context) {
	statement, err := h.statementUseCase.GetStatementOperation(
		c.Request.Context(),
		c.Param("userId"),
		c.Param("statementId"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatementResponse(statement))
}
