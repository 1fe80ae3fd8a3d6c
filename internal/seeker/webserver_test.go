package seeker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apogee-robotics/seeker/internal/timeutil"
)

func newTestServer(t *testing.T) (*WebServer, *Controller) {
	t.Helper()
	clock := timeutil.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	c := NewController(DefaultConfig(), &captureSink{}, ControllerOptions{Clock: clock})
	return NewWebServer(":0", c), c
}

func TestHealthEndpoint(t *testing.T) {
	ws, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ws.ServeMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "seeker", body["service"])
}

func TestStatusEndpoint(t *testing.T) {
	ws, c := newTestServer(t)
	c.Core().SetGoalSeen(-12, 5000)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	ws.ServeMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, StateSearching, status.State)
	assert.True(t, status.GoalFound)
	assert.Equal(t, -12.0, status.GoalCentroidX)
	assert.Equal(t, 5000, status.GoalBlobArea)
}

func TestStatusEndpointRejectsNonGet(t *testing.T) {
	ws, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/status", nil)
	rec := httptest.NewRecorder()
	ws.ServeMux().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
