package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	statementHandler *handler.StatementHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.GET("/:userId/profile", userHandler.ShowUserProfile)
		userRoutes.GET("/:userId/balance", statementHandler.GetBalance)

		statements := userRoutes.Group("/:userId/statements")
		statements.POST("/deposit", statementHandler.Deposit)
		statements.POST("/withdraw", statementHandler.Withdraw)
		statements.GET("/:statementId", statementHandler.GetStatement)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, ids coreport.IDGenerator, timeProvider coreport.TimeProvider) {
	// Request IDs first so recovery and access logs can report them
	router.Use(middleware.RequestID(ids))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}
