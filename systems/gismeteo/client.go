package gismeteo

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Client implements weather.IProviderClient for Gismeteo API.
type Client struct {
	endpoint string
	http     *http.Client
	backoff  BackoffConfig
	circuit  *gobreaker.CircuitBreaker
	cache    *cache.Cache
	logger   common.ILoggerProvider
}

// ConstructClient has data required for a new client.
type ConstructClient struct {
	Settings   *providers.GismeteoSettings
	Logger     common.ILoggerProvider
	HTTPClient *http.Client
	Backoff    *BackoffConfig
}

// NewClient constructs a new Gismeteo API client.
func NewClient(ctor *ConstructClient) *Client {
	httpClient := ctor.HTTPClient
	if nil == httpClient {
		httpClient = &http.Client{Timeout: ctor.Settings.Timeout}
	}

	backoff := BackoffConfig{
		MaxRetries:      ctor.Settings.MaxRetries,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
	if nil != ctor.Backoff {
		backoff = *ctor.Backoff
	}

	c := &Client{
		endpoint: strings.TrimRight(ctor.Settings.Endpoint, "/"),
		http:     httpClient,
		backoff:  backoff,
		cache:    cache.New(ForecastMaxCacheInterval, 10*time.Minute),
		logger:   ctor.Logger,
	}

	c.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        logSystem,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		// Rejected requests mean the provider is up, they never trip the breaker.
		IsSuccessful: func(err error) bool {
			return nil == err || !isRetryable(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.logger.Warn(fmt.Sprintf("Circuit breaker state changed from %s to %s", from, to),
				common.LogProviderToken, name)
		},
	})

	return c
}

// Check performs a test request, used to validate location parameters.
func (c *Client) Check(ctx context.Context, loc weather.Location) error {
	_, err := c.get(ctx, pathCurrent, loc, nil)
	return err
}

// Fetch loads current weather and both forecasts.
// Forecasts are served from the cache while they're fresh.
func (c *Client) Fetch(ctx context.Context, loc weather.Location) (weather.ISensorData, error) {
	current, err := c.get(ctx, pathCurrent, loc, nil)
	if err != nil {
		return nil, errors.Wrap(err, "current weather")
	}

	hourly, err := c.forecast(ctx, loc, enums.ForecastHourly)
	if err != nil {
		return nil, errors.Wrap(err, "hourly forecast")
	}

	daily, err := c.forecast(ctx, loc, enums.ForecastDaily)
	if err != nil {
		return nil, errors.Wrap(err, "daily forecast")
	}

	data, err := DataFromJSON(current, hourly, daily)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// InvalidateCache drops all cached forecasts.
func (c *Client) InvalidateCache() {
	c.cache.Flush()
}

// Loads forecast of the requested mode.
func (c *Client) forecast(ctx context.Context, loc weather.Location, mode enums.ForecastMode) ([]byte, error) {
	days := loc.ForecastDays
	if days <= 0 {
		days = DefaultForecastDays
	}
	if days > MaxForecastDays {
		days = MaxForecastDays
	}

	key := fmt.Sprintf("%s/%s/%d", mode, locationKey(loc), days)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]byte), nil
	}

	path := pathHourly
	if enums.ForecastDaily == mode {
		path = pathDaily
	}

	data, err := c.get(ctx, path, loc, url.Values{"days": []string{strconv.Itoa(days)}})
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// Performs GET request with retries.
func (c *Client) get(ctx context.Context, path string, loc weather.Location, extra url.Values) ([]byte, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	for k, v := range extra {
		values[k] = v
	}

	u := fmt.Sprintf("%s%s?%s", c.endpoint, path, values.Encode())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return retry.DoWithData(
		func() ([]byte, error) {
			data, err := c.doRequest(ctx, u, loc.Token)
			if err != nil {
				return nil, err
			}

			if err := validateEnvelope(data); err != nil {
				return nil, retry.Unrecoverable(err)
			}

			return data, nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.backoff.MaxRetries+1)),
		retry.Delay(c.backoff.InitialInterval),
		retry.MaxDelay(c.backoff.MaxInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("Retrying provider request", common.LogURLToken, path,
				common.LogErrorToken, err.Error())
		}),
	)
}

// Executes a single request through the circuit breaker.
func (c *Client) doRequest(ctx context.Context, u string, token string) ([]byte, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		req = req.WithContext(ctx)
		req.Header.Set(tokenHeader, token)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Encoding", "identity")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close() // nolint: errcheck

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &ErrBadStatus{Code: resp.StatusCode}
		}

		return ioutil.ReadAll(resp.Body)
	})

	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, &ErrCircuitOpen{}
		}

		return nil, err
	}

	return result.([]byte), nil
}

// Validates API envelope without decoding the payload.
func validateEnvelope(data []byte) error {
	var raw interface{}
	return decodeResponse(data, &raw)
}

// Checks whether request could be repeated.
func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}

	switch e := errors.Cause(err).(type) {
	case *ErrBadStatus:
		return e.Code == http.StatusTooManyRequests || e.Code >= 500
	case *ErrCircuitOpen:
		return false
	}

	return err != context.Canceled && err != context.DeadlineExceeded
}

// Returns cache key of the location.
func locationKey(loc weather.Location) string {
	return fmt.Sprintf("%f:%f", loc.Latitude, loc.Longitude)
}
