package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: too small", domainerr.ErrInvalidAmount), http.StatusBadRequest},
		{"phone", domainerr.ErrInvalidPhone, http.StatusBadRequest},
		{"creator missing", domainerr.ErrCreatorNotFound, http.StatusNotFound},
		{"insufficient", domainerr.NewInsufficientBalanceError(1, "10.00", "5.00"), http.StatusUnprocessableEntity},
		{"already processed", domainerr.ErrAlreadyProcessed, http.StatusConflict},
		{"correlation conflict", domainerr.ErrCorrelationConflict, http.StatusConflict},
		{"gateway", domainerr.NewGatewayError("push", 3, 0, "dial tcp", domainerr.ErrGatewayUnreachable), http.StatusBadGateway},
		{"storage", fmt.Errorf("%w: insert: %w", domainerr.ErrStorage, errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
			if status >= http.StatusInternalServerError {
				assert.NotContains(t, msg, "boom")
				assert.NotContains(t, msg, "dial tcp")
			}
		})
	}
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(mockcore.NewPermissiveLogger()))
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
}

func TestErrorHandler_LeavesWrittenResponsesAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(mockcore.NewPermissiveLogger()))
	r.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
		_ = c.Error(domainerr.ErrStorage)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("https://app.example.com"))
	r.POST("/payments/tips", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/payments/tips", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/payments/tips", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}
