package weather

import (
	"testing"
	"time"

	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullData() *mocks.FakeWeatherData {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return &mocks.FakeWeatherData{
		ConditionValue:           utils.StringPtr(enums.ConditionSnowy),
		TemperatureValue:         utils.FloatPtr(-3.5),
		ApparentTemperatureValue: utils.FloatPtr(-8.1),
		PressureValue:            utils.FloatPtr(748),
		HumidityValue:            utils.FloatPtr(86),
		WindBearingValue:         utils.FloatPtr(225),
		WindGustSpeedValue:       utils.FloatPtr(9),
		WindSpeedValue:           utils.FloatPtr(4),
		CloudCoverageValue:       utils.FloatPtr(70),
		UVIndexValue:             utils.FloatPtr(1),
		Hourly: []weather.Forecast{
			{DateTime: now, Temperature: utils.FloatPtr(-3)},
			{DateTime: now.Add(3 * time.Hour), Temperature: utils.FloatPtr(-2)},
		},
		Daily: []weather.Forecast{
			{DateTime: now, Temperature: utils.FloatPtr(-1), TemperatureLow: utils.FloatPtr(-7)},
		},
	}
}

// Tests that entity requires coordinator.
func TestNewEntityNoCoordinator(t *testing.T) {
	e, err := NewEntity(nil, "Home")
	assert.Nil(t, e)
	assert.IsType(t, &ErrNoCoordinator{}, err)
}

// Tests entity identity.
func TestEntityIdentity(t *testing.T) {
	e, err := NewEntity(mocks.FakeNewDataSource("55.75-37.62", nil), "Home")
	require.NoError(t, err)

	assert.Equal(t, "55.75-37.62", e.UniqueID())
	assert.Equal(t, "Home", e.Name())
	assert.Equal(t, enums.PlatformWeather, e.Platform())
	assert.Equal(t, map[string]string{"location_name": "Home"}, e.TranslationPlaceholders())
	assert.True(t, e.SupportedFeatures().Has(enums.FeatureForecastDaily))
	assert.True(t, e.SupportedFeatures().Has(enums.FeatureForecastHourly))
	assert.False(t, e.SupportedFeatures().Has(enums.FeatureForecastTwiceDaily))

	attrs := e.Attributes()
	assert.Equal(t, common.Attribution, attrs["attribution"])
	assert.Equal(t, enums.UnitCelsius, attrs["temperature_unit"])
	assert.Equal(t, enums.UnitMmHg, attrs["pressure_unit"])
	assert.Equal(t, enums.UnitMillimeters, attrs["precipitation_unit"])
	assert.Equal(t, enums.UnitMetersPerSec, attrs["wind_speed_unit"])
}

// Tests that every getter returns unknown without data.
func TestUnknownValues(t *testing.T) {
	e, err := NewEntity(mocks.FakeNewDataSource("1", nil), "Home")
	require.NoError(t, err)

	assert.Nil(t, e.Condition())
	assert.Nil(t, e.ApparentTemperature())
	assert.Nil(t, e.Temperature())
	assert.Nil(t, e.Pressure())
	assert.Nil(t, e.Humidity())
	assert.Nil(t, e.WindBearing())
	assert.Nil(t, e.WindGustSpeed())
	assert.Nil(t, e.WindSpeed())
	assert.Nil(t, e.CloudCoverage())
	assert.Nil(t, e.UVIndex())
	assert.Nil(t, e.ForecastDaily())
	assert.Nil(t, e.ForecastHourly())
	assert.Nil(t, e.State())

	for k, v := range e.Attributes() {
		if "temperature" == k || "uv_index" == k {
			assert.Nil(t, v, k)
		}
	}
}

// Tests that getters return stored values untouched.
func TestKnownValues(t *testing.T) {
	data := fullData()
	e, err := NewEntity(mocks.FakeNewDataSource("1", data), "Home")
	require.NoError(t, err)

	assert.Equal(t, data.ConditionValue, e.Condition())
	assert.Equal(t, data.ApparentTemperatureValue, e.ApparentTemperature())
	assert.Equal(t, data.TemperatureValue, e.Temperature())
	assert.Equal(t, data.PressureValue, e.Pressure())
	assert.Equal(t, data.HumidityValue, e.Humidity())
	assert.Equal(t, data.WindBearingValue, e.WindBearing())
	assert.Equal(t, data.WindGustSpeedValue, e.WindGustSpeed())
	assert.Equal(t, data.WindSpeedValue, e.WindSpeed())
	assert.Equal(t, data.CloudCoverageValue, e.CloudCoverage())
	assert.Equal(t, data.UVIndexValue, e.UVIndex())
	assert.Equal(t, enums.ConditionSnowy, e.State())
	assert.Equal(t, -3.5, e.Attributes()["temperature"])
}

// Tests that daily and hourly forecasts are independent.
func TestForecastIndependence(t *testing.T) {
	data := fullData()
	e, err := NewEntity(mocks.FakeNewDataSource("1", data), "Home")
	require.NoError(t, err)

	daily := e.ForecastDaily()
	hourly := e.ForecastHourly()
	require.Equal(t, 1, len(daily))
	require.Equal(t, 2, len(hourly))
	assert.Equal(t, -7.0, *daily[0].TemperatureLow)
	assert.Nil(t, hourly[0].TemperatureLow)

	hourly[0].Temperature = utils.FloatPtr(100)
	assert.Equal(t, -3.0, *e.ForecastHourly()[0].Temperature)
	assert.Equal(t, daily, e.ForecastDaily())
	assert.Equal(t, 2, len(data.Hourly))
}

// Tests that entity follows coordinator updates.
func TestEntityFollowsCoordinator(t *testing.T) {
	source := mocks.FakeNewDataSource("1", nil)
	e, err := NewEntity(source, "Home")
	require.NoError(t, err)

	updates := 0
	unsub := e.AddListener(func() { updates++ })

	source.Update(fullData(), true)
	assert.Equal(t, 1, updates)
	assert.Equal(t, -3.5, *e.Temperature())
	assert.True(t, e.Available())

	source.Update(e.Data(), false)
	assert.False(t, e.Available())
	assert.Equal(t, -3.5, *e.Temperature())

	unsub()
	source.Update(fullData(), true)
	assert.Equal(t, 2, updates)
}
