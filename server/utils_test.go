package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/flow"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Tests log middleware.
func TestLogMiddleware(t *testing.T) {
	in := []string{"/api/v1/test", "/pub/ping"}

	nextCalled := false
	logCalled := false
	s := &GismeteoServer{
		Logger: mocks.FakeNewLogger(func(s string) {
			logCalled = true
		}),
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		nextCalled = true
	})
	ts := httptest.NewServer(s.logMiddleware(handler))
	defer ts.Close()

	for _, v := range in {
		nextCalled = false
		logCalled = false

		resp, err := http.Get(ts.URL + v)
		assert.NoError(t, err, "error %s", v)
		resp.Body.Close() // nolint: errcheck
		assert.True(t, nextCalled, "next %s", v)
		assert.True(t, logCalled, "log %s", v)
	}
}

// Tests authorization middleware.
func TestAuthMiddleware(t *testing.T) {
	in := []struct {
		security     providers.ISecurityProvider
		nextExpected bool
		code         int
		user         string
	}{
		{security: mocks.FakeNewSecurityProvider(false, false), nextExpected: true, code: http.StatusOK,
			user: "anonymous"},
		{security: mocks.FakeNewSecurityProvider(true, false), nextExpected: false, code: http.StatusUnauthorized},
		{security: mocks.FakeNewSecurityProvider(true, true), nextExpected: true, code: http.StatusOK,
			user: "test"},
	}

	nextCalled := false
	user := ""
	settings := mocks.FakeNewSettings(nil, nil, nil)
	s := &GismeteoServer{
		Logger:   mocks.FakeNewLogger(nil),
		Settings: settings,
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		nextCalled = true
		user = getContextUser(req)
	})

	ts := httptest.NewServer(s.authMiddleware(handler))
	defer ts.Close()

	for i, v := range in {
		settings.AddSecurity(v.security)
		nextCalled = false
		user = ""

		resp, err := http.Get(ts.URL)
		assert.NoError(t, err, "error %d", i)
		resp.Body.Close() // nolint: errcheck
		assert.Equal(t, v.nextExpected, nextCalled, "call %d", i)
		assert.Equal(t, v.code, resp.StatusCode, "code %d", i)
		assert.Equal(t, v.user, user, "user %d", i)
	}
}

// Tests errors mapping.
func TestErrorStatus(t *testing.T) {
	in := []struct {
		err  error
		code int
	}{
		{err: &ErrUnknownEntity{ID: "1"}, code: http.StatusNotFound},
		{err: &entries.ErrEntryNotFound{ID: "1"}, code: http.StatusNotFound},
		{err: errors.Wrap(&flow.ErrUnknownFlow{ID: "1"}, "wrapped"), code: http.StatusNotFound},
		{err: &ErrBadRequest{}, code: http.StatusBadRequest},
		{err: &ErrNoForecast{ID: "1"}, code: http.StatusBadRequest},
		{err: context.Canceled, code: http.StatusConflict},
		{err: errors.New("other"), code: http.StatusInternalServerError},
	}

	for _, v := range in {
		assert.Equal(t, v.code, errorStatus(v.err), v.err.Error())
	}
}

// Tests CORS headers.
func TestCORS(t *testing.T) {
	f := newFixture(t)
	defer f.close()

	f.settings.AddServerSettings(&providers.ServerSettings{Port: 8123, AllowOrigins: []string{"http://example.com"}})
	ts := httptest.NewServer(f.server.Handler())
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/pub/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	resp.Body.Close() // nolint: errcheck
	assert.Equal(t, "http://example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/pub/ping", nil)
	req.Header.Set("Origin", "http://other.com")
	assert.False(t, f.server.checkOrigin(req))
}
