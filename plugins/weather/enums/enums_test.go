package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests forecast mode parsing.
func TestForecastModeString(t *testing.T) {
	m, err := ForecastModeString("Daily")
	assert.NoError(t, err)
	assert.Equal(t, ForecastDaily, m)

	m, err = ForecastModeString("hourly")
	assert.NoError(t, err)
	assert.Equal(t, ForecastHourly, m)

	_, err = ForecastModeString("twice_daily")
	assert.Error(t, err)
}

// Tests platform option keys.
func TestPlatformOptionKey(t *testing.T) {
	assert.Equal(t, "platform.sensor", PlatformSensor.OptionKey())
	assert.Equal(t, "platform.weather", PlatformWeather.OptionKey())

	p, err := PlatformString("SENSOR")
	assert.NoError(t, err)
	assert.Equal(t, PlatformSensor, p)

	_, err = PlatformString("light")
	assert.Error(t, err)
}

// Tests feature set helpers.
func TestFeatures(t *testing.T) {
	f := FeatureForecastDaily | FeatureForecastHourly
	assert.True(t, f.Has(FeatureForecastDaily))
	assert.True(t, f.Has(FeatureForecastHourly))
	assert.False(t, f.Has(FeatureForecastTwiceDaily))
	assert.Equal(t, []ForecastMode{ForecastDaily, ForecastHourly}, f.Modes())
	assert.Empty(t, WeatherFeature(0).Modes())
}
