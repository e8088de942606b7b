package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/tip-processor/mocks/port/core"
)

func TestLogger_LevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		status int
		level  string
		msg    string
	}{
		{"success", "/ok", http.StatusOK, "Info", "Request processed"},
		{"client error", "/ok", http.StatusNotFound, "Warn", "Request rejected"},
		{"server error", "/ok", http.StatusBadGateway, "Error", "Request failed"},
		{"quiet health check", "/healthz", http.StatusOK, "Debug", "Request processed"},
		{"failing health check still errors", "/healthz", http.StatusServiceUnavailable, "Error", "Request failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger := mockcore.NewMockLogger(t)
			fields := mock.MatchedBy(func(f map[string]any) bool {
				return f["status"] == tc.status && f["path"] == tc.path
			})
			switch tc.level {
			case "Debug":
				logger.EXPECT().Debug(tc.msg, fields).Once()
			case "Info":
				logger.EXPECT().Info(tc.msg, fields).Once()
			case "Warn":
				logger.EXPECT().Warn(tc.msg, fields).Once()
			case "Error":
				logger.EXPECT().Error(tc.msg, fields).Once()
			}

			r := gin.New()
			r.Use(Logger(logger, "/healthz"))
			r.GET(tc.path, func(c *gin.Context) { c.Status(tc.status) })

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))
		})
	}
}
