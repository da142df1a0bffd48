package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/identifier"
	mockcore "github.com/amirhossein-jamali/statement-ledger/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	ids := mockcore.NewMockIDGenerator(t)

	router := gin.New()
	router.Use(RequestID(ids))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("should keep a valid incoming id", func(t *testing.T) {
		incoming := "3f2b8c1e-6a4d-4f1b-9e2a-7c5d8e9f0a1b"
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, incoming)

		rec := serve(router, req)

		assert.Equal(t, incoming, rec.Body.String())
		assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
	})

	t.Run("should replace a malformed id", func(t *testing.T) {
		generated := "0e4a9d7c-1b2f-4c3d-8e5f-6a7b8c9d0e1f"
		ids.On("NewID").Return(generated).Once()

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "<script>")

		rec := serve(router, req)

		assert.Equal(t, generated, rec.Body.String())
		assert.True(t, identifier.IsValid(rec.Header().Get(RequestIDHeader)))
	})
}

func TestErrorHandler(t *testing.T) {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom" && fields["path"] == "/panic"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
	assert.Equal(t, errs.CodeInternalServer, errs.ErrorCode(errs.ErrInternalServer))
}

func TestLogger(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should log successful requests at info", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.On("Now").Return(start)
		clock.On("Since", start).Return(15 * time.Millisecond)

		logger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusOK &&
				fields["route"] == "/users/:userId/balance" &&
				fields["latency_ms"] == int64(15) &&
				fields["status_text"] == "Success"
		})).Once()

		router := gin.New()
		router.Use(Logger(logger, clock))
		router.GET("/users/:userId/balance", func(c *gin.Context) { c.Status(http.StatusOK) })

		serve(router, httptest.NewRequest(http.MethodGet, "/users/u1/balance", nil))
	})

	t.Run("should log server errors at error", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.On("Now").Return(start)
		clock.On("Since", start).Return(time.Millisecond)

		logger.EXPECT().Error("Request failed", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["status"] == http.StatusInternalServerError && fields["status_text"] == "Server Error"
		})).Once()

		router := gin.New()
		router.Use(Logger(logger, clock))
		router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

		serve(router, httptest.NewRequest(http.MethodGet, "/fail", nil))
	})
}
