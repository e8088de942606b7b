package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	r := NewPrometheusRecorder("tp_test")

	r.IncTransition("transaction", "completed")
	r.IncTransition("transaction", "completed")
	r.IncCallback("push", "duplicate")
	r.IncDroppedEvent("new_tip")
	r.AddSwept(3)
	r.AddSwept(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.transitions.WithLabelValues("transaction", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.callbacks.WithLabelValues("push", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.droppedEvents.WithLabelValues("new_tip")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.swept))
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	r := NewPrometheusRecorder("tp_test")
	r.ObserveHTTPRequest(http.MethodPost, "/payments/tips", http.StatusCreated, 25*time.Millisecond)
	r.ObserveGatewayCall("push", "ok", time.Second)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `tp_test_http_request_duration_seconds_count{method="POST",route="/payments/tips",status="201"} 1`))
	assert.True(t, strings.Contains(body, `tp_test_gateway_call_duration_seconds_count{operation="push",outcome="ok"} 1`))
}

func TestNoopRecorder(t *testing.T) {
	r := NewNoopRecorder()
	assert.NotPanics(t, func() {
		r.IncTransition("withdrawal", "failed")
		r.AddSwept(10)
		r.ObserveHTTPRequest("GET", "/healthz", 200, time.Millisecond)
	})
}
