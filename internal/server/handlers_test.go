package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminghao/godcps/internal/logger"
	"github.com/luminghao/godcps/internal/report"
)

func newTestServer() *Server {
	return New(logger.NopLogger{})
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, srv *Server) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["session_id"])
	return resp["session_id"]
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestAddLoadAndReport(t *testing.T) {
	srv := newTestServer()
	id := createSession(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/sessions/"+id+"/loads",
		`{"name":"UPS supply","power_kw":15,"usage_factor":0.6,"initial":true,"half_hour":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/sessions/"+id+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var r report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	require.Len(t, r.Loads, 1)
	assert.InDelta(t, 40.91, r.Totals.Initial, 0.01)
	assert.InDelta(t, 40.91, r.Totals.HalfHour, 0.01)
	assert.Equal(t, 0.0, r.Totals.Random)
	assert.Greater(t, r.FinalAh, 0.0)
}

func TestAddLoadValidationLeavesSessionUntouched(t *testing.T) {
	srv := newTestServer()
	id := createSession(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/sessions/"+id+"/loads",
		`{"name":"","power_kw":15,"usage_factor":0.6}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")

	rec = doJSON(t, srv, http.MethodPost, "/api/sessions/"+id+"/loads",
		`{"name":"x","power_kw":10,"usage_factor":1.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/sessions/"+id+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var r report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Empty(t, r.Loads)
}

func TestClearLoads(t *testing.T) {
	srv := newTestServer()
	id := createSession(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/sessions/"+id+"/loads",
		`{"name":"a","power_kw":10,"usage_factor":0.6,"initial":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/sessions/"+id+"/loads", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/sessions/"+id+"/report", "")
	var r report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Empty(t, r.Loads)
	assert.Equal(t, 0.0, r.FinalAh)
}

// No two sessions may observe or mutate the same load collection.
func TestSessionIsolation(t *testing.T) {
	srv := newTestServer()
	a := createSession(t, srv)
	b := createSession(t, srv)
	require.NotEqual(t, a, b)

	rec := doJSON(t, srv, http.MethodPost, "/api/sessions/"+a+"/loads",
		`{"name":"a-only","power_kw":10,"usage_factor":0.6,"initial":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/sessions/"+b+"/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var r report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Empty(t, r.Loads)
}

func TestUnknownSession(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodGet, "/api/sessions/nope/report", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBatteryCountEndpoint(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/battery/count",
		`{"nominal_voltage_v":220,"float_voltage_v":2.23}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 104, resp.Count)

	rec = doJSON(t, srv, http.MethodPost, "/api/battery/count",
		`{"nominal_voltage_v":220,"float_voltage_v":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModuleCountEndpoint(t *testing.T) {
	srv := newTestServer()

	rec := doJSON(t, srv, http.MethodPost, "/api/rectifier/modules",
		`{"battery_capacity_ah":400,"frequent_current_a":27.27,"module_current_a":20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		N1    int `json:"n1"`
		N2    int `json:"n2"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.N1)
	assert.Equal(t, 1, resp.N2)
	assert.Equal(t, 5, resp.Total)

	rec = doJSON(t, srv, http.MethodPost, "/api/rectifier/modules",
		`{"battery_capacity_ah":400,"frequent_current_a":27.27,"module_current_a":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionCleanup(t *testing.T) {
	m := NewSessionManager()
	s := m.Create()
	require.Equal(t, 1, m.Len())

	s.Lock()
	s.LastAccessed = time.Now().Add(-time.Hour)
	s.Unlock()

	removed := m.CleanupOldSessions(SessionMaxAge)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, m.Len())

	_, ok := m.Get(s.ID)
	assert.False(t, ok)
}
