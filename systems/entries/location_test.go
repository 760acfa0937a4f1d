package entries

import (
	"testing"

	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var home = &providers.HomeLocation{Latitude: 55.75, Longitude: 37.62}

// Tests location decoding with defaults.
func TestDecodeLocationDefaults(t *testing.T) {
	cfg, err := DecodeLocation(nil, home, utils.NewValidator(mocks.FakeNewLogger(nil)))
	require.NoError(t, err)

	assert.Equal(t, DefaultName, cfg.Name)
	assert.Equal(t, 55.75, cfg.Latitude)
	assert.Equal(t, 37.62, cfg.Longitude)
	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, "55.75-37.62", cfg.UniqueID())
}

// Tests location decoding.
func TestDecodeLocation(t *testing.T) {
	raw := map[string]interface{}{
		ConfName:         "Office",
		ConfToken:        "abc",
		ConfLatitude:     59.94,
		ConfLongitude:    30.31,
		ConfForecastDays: 5,
	}

	cfg, err := DecodeLocation(raw, home, utils.NewValidator(mocks.FakeNewLogger(nil)))
	require.NoError(t, err)

	loc := cfg.Location()
	assert.Equal(t, "Office", cfg.Name)
	assert.Equal(t, "abc", loc.Token)
	assert.Equal(t, 59.94, loc.Latitude)
	assert.Equal(t, 30.31, loc.Longitude)
	assert.Equal(t, 5, loc.ForecastDays)
}

// Tests invalid locations.
func TestDecodeLocationInvalid(t *testing.T) {
	v := utils.NewValidator(mocks.FakeNewLogger(nil))
	data := []map[string]interface{}{
		{ConfLatitude: 91.0},
		{ConfLongitude: -181.0},
		{ConfForecastDays: 11},
		{ConfLatitude: "wrong"},
	}

	for _, v2 := range data {
		_, err := DecodeLocation(v2, home, v)
		assert.Error(t, err, "%v", v2)
	}
}

// Tests that locations added by user require a token.
func TestDecodeUserLocation(t *testing.T) {
	v := utils.NewValidator(mocks.FakeNewLogger(nil))
	for _, token := range []interface{}{nil, "", "  "} {
		raw := map[string]interface{}{ConfName: "Office"}
		if nil != token {
			raw[ConfToken] = token
		}

		_, err := DecodeUserLocation(raw, home, v)
		assert.IsType(t, &ErrInvalidLocation{}, err, "%v", token)
	}

	cfg, err := DecodeUserLocation(map[string]interface{}{ConfToken: "abc"}, home, v)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Token)

	_, err = DecodeLocation(nil, home, v)
	assert.NoError(t, err)
}
