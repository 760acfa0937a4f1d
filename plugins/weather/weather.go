// Package weather contains weather platform definitions shared between
// the provider, coordinator and entity layers.
package weather

import (
	"context"
	"time"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
)

// IWeatherData defines read accessors of the latest provider snapshot.
// Every accessor returns nil if the value is not known yet.
type IWeatherData interface {
	Condition() *string
	Temperature() *float64
	ApparentTemperature() *float64
	Pressure() *float64
	Humidity() *float64
	WindBearing() *float64
	WindGustSpeed() *float64
	WindSpeed() *float64
	CloudCoverage() *float64
	UVIndex() *float64
	Forecast(mode enums.ForecastMode) []Forecast
}

// ISensorData extends weather data with values exposed by sensors only.
type ISensorData interface {
	IWeatherData
	PrecipitationAmount() *float64
	RainAmount() *float64
	SnowAmount() *float64
	WindBearingLabel() *string
	IsStorm() *bool
	GeomagneticField() *float64
	WaterTemperature() *float64
	TemperatureLow() *float64
	PollenBirch() *float64
	PollenGrass() *float64
	PollenRagweed() *float64
	RoadCondition() *string
	// Day returns snapshot of the daily forecast period, nil if the day is not known.
	Day(day int) ISensorData
}

// IDataSource defines anything holding provider data, usually a coordinator.
type IDataSource interface {
	UniqueID() string
	Gismeteo() ISensorData
	LastUpdateSuccess() bool
	AddListener(func()) common.Unsubscribe
}

// Forecast describes a single forecast period in native units.
type Forecast struct {
	DateTime            time.Time `json:"datetime"`
	Condition           *string   `json:"condition"`
	Temperature         *float64  `json:"native_temperature"`
	TemperatureLow      *float64  `json:"native_templow,omitempty"`
	ApparentTemperature *float64  `json:"native_apparent_temperature"`
	Humidity            *float64  `json:"humidity"`
	Pressure            *float64  `json:"native_pressure"`
	Precipitation       *float64  `json:"native_precipitation"`
	WindSpeed           *float64  `json:"native_wind_speed"`
	WindGustSpeed       *float64  `json:"native_wind_gust_speed"`
	WindBearing         *float64  `json:"wind_bearing"`
	CloudCoverage       *float64  `json:"cloud_coverage"`
	UVIndex             *float64  `json:"uv_index"`
}

// Location describes provider-specific location parameters.
type Location struct {
	Latitude     float64
	Longitude    float64
	Token        string
	ForecastDays int
}

// IProviderClient defines weather provider client.
type IProviderClient interface {
	Check(ctx context.Context, loc Location) error
	Fetch(ctx context.Context, loc Location) (ISensorData, error)
}

// IEntity defines an entity registered in the host state.
type IEntity interface {
	UniqueID() string
	Name() string
	Platform() enums.Platform
	Available() bool
	State() interface{}
	Attributes() map[string]interface{}
	AddListener(func()) common.Unsubscribe
}

// IDefaultEnabled defines entities which might be disabled until enabled explicitly.
type IDefaultEnabled interface {
	EnabledDefault() bool
}

// IForecastEntity defines an entity able to provide forecasts.
type IForecastEntity interface {
	IEntity
	SupportedFeatures() enums.WeatherFeature
	ForecastDaily() []Forecast
	ForecastHourly() []Forecast
}
