package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opscalendar/internal/config"
	"opscalendar/internal/dataset"
	"opscalendar/internal/events"
	"opscalendar/internal/tabular"
)

type stubLoader struct {
	bundle *dataset.Bundle
}

func (s stubLoader) Load(ctx context.Context) *dataset.Bundle {
	return s.bundle
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			RequestTimeout: 5 * time.Second,
		},
		Auth: config.AuthConfig{
			Enabled:        true,
			AllowedDomains: []string{"example.com"},
			IdentityHeader: "X-Auth-Request-Email",
		},
	}
}

func testBundle() *dataset.Bundle {
	b := dataset.NewEmptyBundle()
	b.Projects["P1"] = tabular.Record{
		"ID":   tabular.StringCell("P1"),
		"name": tabular.StringCell("Expo"),
	}
	b.Tasks = []tabular.Record{
		{
			"ID":      tabular.StringCell("1"),
			"dateIn":  tabular.StringCell("2024-03-01"),
			"Project": tabular.StringCell("P1"),
		},
	}
	return b
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	svc := events.NewService(stubLoader{bundle: testBundle()})
	return NewServer(svc, cfg)
}

func TestEventsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("X-Auth-Request-Email", "dana@example.com")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var got []events.CalendarEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2024-03-01", got[0].Start)
	assert.True(t, got[0].AllDay)
}

func TestEventsEndpoint_Auth(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		wantCode int
		wantBody string
	}{
		{"no identity", "", http.StatusUnauthorized, "AUTH_NO_IDENTITY"},
		{"wrong domain", "mallory@evil.example.org", http.StatusForbidden, "AUTH_DOMAIN_DENIED"},
		{"allowed domain", "dana@example.com", http.StatusOK, ""},
		{"subdomain of allowed", "dana@team.example.com", http.StatusOK, ""},
		{"domain as substring only", "dana@notexample.com", http.StatusForbidden, "AUTH_DOMAIN_DENIED"},
	}

	srv := newTestServer(t, testConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
			if tt.email != "" {
				req.Header.Set("X-Auth-Request-Email", tt.email)
			}
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestEventsEndpoint_AuthDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.Enabled = false
	srv := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthEndpoint_Unauthenticated(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestEventsEndpoint_PipelineFailure(t *testing.T) {
	cfg := testConfig()
	svc := events.NewService(stubLoader{bundle: nil})
	srv := NewServer(svc, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("X-Auth-Request-Email", "dana@example.com")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "EVENTS_PIPELINE_FAILED")
}
