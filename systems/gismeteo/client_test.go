package gismeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	current  int32
	hourly   int32
	daily    int32
	failures int32
	status   int
	token    atomic.Value
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.token.Store(r.Header.Get(tokenHeader))
	if f.status != 0 && atomic.AddInt32(&f.failures, -1) >= 0 {
		w.WriteHeader(f.status)
		return
	}

	switch r.URL.Path {
	case pathCurrent:
		atomic.AddInt32(&f.current, 1)
		w.Write([]byte(fixtureCurrent)) // nolint: errcheck
	case pathHourly:
		atomic.AddInt32(&f.hourly, 1)
		w.Write([]byte(fixtureHourly)) // nolint: errcheck
	case pathDaily:
		atomic.AddInt32(&f.daily, 1)
		w.Write([]byte(fixtureDaily)) // nolint: errcheck
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func getClient(url string) *Client {
	return NewClient(&ConstructClient{
		Settings: &providers.GismeteoSettings{
			Endpoint:   url + "/",
			Timeout:    time.Second,
			MaxRetries: 2,
		},
		Logger: mocks.FakeNewLogger(nil),
		Backoff: &BackoffConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		},
	})
}

var testLocation = weather.Location{Latitude: 55.75, Longitude: 37.62, Token: "abc", ForecastDays: 3}

// Tests full fetch and forecast caching.
func TestFetch(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := getClient(srv.URL)
	d, err := c.Fetch(context.Background(), testLocation)
	require.NoError(t, err)

	assert.Equal(t, "abc", api.token.Load())
	assert.Equal(t, -3.5, *d.Temperature())
	assert.Len(t, d.Forecast(enums.ForecastHourly), 2)
	assert.Len(t, d.Forecast(enums.ForecastDaily), 1)

	_, err = c.Fetch(context.Background(), testLocation)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&api.current))
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.hourly), "hourly forecast should be cached")
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.daily), "daily forecast should be cached")

	c.InvalidateCache()
	_, err = c.Fetch(context.Background(), testLocation)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&api.hourly))
}

// Tests check request.
func TestCheck(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := getClient(srv.URL)
	assert.NoError(t, c.Check(context.Background(), testLocation))
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.hourly))
}

// Tests that server errors are retried.
func TestRetry(t *testing.T) {
	api := &fakeAPI{status: http.StatusBadGateway, failures: 2}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := getClient(srv.URL)
	assert.NoError(t, c.Check(context.Background(), testLocation))
	assert.Equal(t, int32(1), atomic.LoadInt32(&api.current))
}

// Tests that client errors are not retried.
func TestNoRetry(t *testing.T) {
	api := &fakeAPI{status: http.StatusUnauthorized, failures: 1}
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := getClient(srv.URL)
	err := c.Check(context.Background(), testLocation)
	require.Error(t, err)

	bad, ok := errors.Cause(err).(*ErrBadStatus)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.current))
}

// Tests that rejected tokens don't open the breaker for other locations.
func TestRejectedTokenKeepsBreakerClosed(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if "wrong" == r.Header.Get(tokenHeader) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		api.ServeHTTP(w, r)
	}))
	defer srv.Close()

	c := getClient(srv.URL)
	wrong := testLocation
	wrong.Token = "wrong"
	for i := 0; i < 10; i++ {
		err := c.Check(context.Background(), wrong)
		_, ok := errors.Cause(err).(*ErrBadStatus)
		require.True(t, ok, "attempt %d: %v", i, err)
	}

	_, err := c.Fetch(context.Background(), testLocation)
	require.NoError(t, err)
	assert.Equal(t, gobreaker.StateClosed, c.circuit.State())
}

// Tests that server failures open the breaker.
func TestServerFailuresOpenBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := getClient(srv.URL)
	for i := 0; i < 3; i++ {
		assert.Error(t, c.Check(context.Background(), testLocation))
	}

	assert.Equal(t, gobreaker.StateOpen, c.circuit.State())
	_, ok := errors.Cause(c.Check(context.Background(), testLocation)).(*ErrCircuitOpen)
	assert.True(t, ok)
}

// Tests API error in the envelope.
func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixtureAPIError)) // nolint: errcheck
	}))
	defer srv.Close()

	c := getClient(srv.URL)
	err := c.Check(context.Background(), testLocation)
	require.Error(t, err)
	_, ok := errors.Cause(err).(*ErrAPI)
	assert.True(t, ok)
}

// Tests cancelled context.
func TestCancelled(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := getClient(srv.URL)
	err := c.Check(ctx, testLocation)
	assert.Equal(t, context.Canceled, err)
}

// Tests unreachable provider.
func TestUnreachable(t *testing.T) {
	srv := httptest.NewServer(&fakeAPI{})
	url := srv.URL
	srv.Close()

	c := getClient(url)
	_, err := c.Fetch(context.Background(), testLocation)
	assert.Error(t, err)
}
