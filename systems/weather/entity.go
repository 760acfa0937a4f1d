// Package weather contains weather platform of the integration.
package weather

import (
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
)

// Entity exposes coordinator snapshot as a weather entity.
type Entity struct {
	weather.EntityBase
	uniqueID     string
	placeholders map[string]string
}

// NewEntity creates a new weather entity bound to the coordinator.
func NewEntity(coordinator weather.IDataSource, locationName string) (*Entity, error) {
	if nil == coordinator {
		return nil, &ErrNoCoordinator{}
	}

	return &Entity{
		EntityBase: weather.EntityBase{
			Coordinator:  coordinator,
			LocationName: locationName,
		},
		uniqueID: coordinator.UniqueID(),
		placeholders: map[string]string{
			"location_name": locationName,
		},
	}, nil
}

// UniqueID returns coordinator unique ID.
func (e *Entity) UniqueID() string {
	return e.uniqueID
}

// Name returns location name.
// Entity has no own name, so the device name is used.
func (e *Entity) Name() string {
	return e.LocationName
}

// Platform returns weather platform.
func (e *Entity) Platform() enums.Platform {
	return enums.PlatformWeather
}

// TranslationPlaceholders returns name placeholders.
func (e *Entity) TranslationPlaceholders() map[string]string {
	return e.placeholders
}

// SupportedFeatures returns supported forecast modes.
func (e *Entity) SupportedFeatures() enums.WeatherFeature {
	return enums.FeatureForecastDaily | enums.FeatureForecastHourly
}

// Condition returns current condition.
func (e *Entity) Condition() *string {
	return e.Data().Condition()
}

// ApparentTemperature returns apparent temperature in °C.
func (e *Entity) ApparentTemperature() *float64 {
	return e.Data().ApparentTemperature()
}

// Temperature returns temperature in °C.
func (e *Entity) Temperature() *float64 {
	return e.Data().Temperature()
}

// Pressure returns pressure in mmHg.
func (e *Entity) Pressure() *float64 {
	return e.Data().Pressure()
}

// Humidity returns humidity in %.
func (e *Entity) Humidity() *float64 {
	return e.Data().Humidity()
}

// WindBearing returns wind bearing in degrees.
func (e *Entity) WindBearing() *float64 {
	return e.Data().WindBearing()
}

// WindGustSpeed returns wind gust speed in m/s.
func (e *Entity) WindGustSpeed() *float64 {
	return e.Data().WindGustSpeed()
}

// WindSpeed returns wind speed in m/s.
func (e *Entity) WindSpeed() *float64 {
	return e.Data().WindSpeed()
}

// CloudCoverage returns cloud coverage in %.
func (e *Entity) CloudCoverage() *float64 {
	return e.Data().CloudCoverage()
}

// UVIndex returns UV index.
func (e *Entity) UVIndex() *float64 {
	return e.Data().UVIndex()
}

// ForecastDaily returns daily forecast.
func (e *Entity) ForecastDaily() []weather.Forecast {
	return e.Data().Forecast(enums.ForecastDaily)
}

// ForecastHourly returns hourly forecast.
func (e *Entity) ForecastHourly() []weather.Forecast {
	return e.Data().Forecast(enums.ForecastHourly)
}

// State returns current condition or nil.
func (e *Entity) State() interface{} {
	c := e.Condition()
	if nil == c {
		return nil
	}

	return *c
}

// Attributes returns rendered entity attributes.
func (e *Entity) Attributes() map[string]interface{} {
	data := e.Data()
	return map[string]interface{}{
		"temperature":              value(data.Temperature()),
		"apparent_temperature":     value(data.ApparentTemperature()),
		"pressure":                 value(data.Pressure()),
		"humidity":                 value(data.Humidity()),
		"wind_bearing":             value(data.WindBearing()),
		"wind_gust_speed":          value(data.WindGustSpeed()),
		"wind_speed":               value(data.WindSpeed()),
		"cloud_coverage":           value(data.CloudCoverage()),
		"uv_index":                 value(data.UVIndex()),
		"temperature_unit":         enums.UnitCelsius,
		"pressure_unit":            enums.UnitMmHg,
		"precipitation_unit":       enums.UnitMillimeters,
		"wind_speed_unit":          enums.UnitMetersPerSec,
		"attribution":              common.Attribution,
		"supported_features":       int(e.SupportedFeatures()),
		"translation_placeholders": e.placeholders,
		"device":                   e.DeviceInfo(),
	}
}

// Dereferences optional value.
func value(v *float64) interface{} {
	if nil == v {
		return nil
	}

	return *v
}
