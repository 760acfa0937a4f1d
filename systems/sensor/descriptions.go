package sensor

import (
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
)

// Device class of the condition sensor.
const conditionDeviceClass = "gismeteo__condition"

// Description describes a single sensor.
type Description struct {
	Key            string
	TranslationKey string
	DeviceClass    string
	Unit           string
	StateClass     string
	Icon           string
	EnabledDefault bool
	Value          func(data weather.ISensorData) interface{}
}

// Descriptions contains all sensors provided for every location.
var Descriptions = []*Description{
	{
		Key:            "condition",
		TranslationKey: "condition",
		DeviceClass:    conditionDeviceClass,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return str(d.Condition()) },
	},
	{
		Key:            "temperature",
		TranslationKey: "temperature",
		DeviceClass:    "temperature",
		Unit:           enums.UnitCelsius,
		StateClass:     enums.StateClassMeasured,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.Temperature()) },
	},
	{
		Key:            "apparent_temperature",
		TranslationKey: "apparent_temperature",
		DeviceClass:    "temperature",
		Unit:           enums.UnitCelsius,
		StateClass:     enums.StateClassMeasured,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.ApparentTemperature()) },
	},
	{
		Key:            "humidity",
		TranslationKey: "humidity",
		DeviceClass:    "humidity",
		Unit:           enums.UnitPercentage,
		StateClass:     enums.StateClassMeasured,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.Humidity()) },
	},
	{
		Key:            "pressure",
		TranslationKey: "pressure",
		DeviceClass:    "pressure",
		Unit:           enums.UnitMmHg,
		StateClass:     enums.StateClassMeasured,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.Pressure()) },
	},
	{
		Key:            "precipitation_amount",
		TranslationKey: "precipitation",
		DeviceClass:    "precipitation",
		Unit:           enums.UnitMillimeters,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.PrecipitationAmount()) },
	},
	{
		Key:            "wind_speed",
		TranslationKey: "wind_speed",
		Icon:           "mdi:weather-windy",
		Unit:           enums.UnitMetersPerSec,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.WindSpeed()) },
	},
	{
		Key:            "wind_bearing",
		TranslationKey: "wind_bearing",
		Icon:           "mdi:weather-windy",
		Unit:           enums.UnitDegree,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.WindBearing()) },
	},
	{
		Key:            "wind_bearing_label",
		TranslationKey: "wind_bearing_label",
		Icon:           "mdi:weather-windy",
		Value:          func(d weather.ISensorData) interface{} { return str(d.WindBearingLabel()) },
	},
	{
		Key:            "cloud_coverage",
		TranslationKey: "cloud_coverage",
		Icon:           "mdi:weather-partly-cloudy",
		Unit:           enums.UnitPercentage,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.CloudCoverage()) },
	},
	{
		Key:            "rain_amount",
		TranslationKey: "rain_amount",
		Icon:           "mdi:weather-rainy",
		DeviceClass:    "precipitation",
		Unit:           enums.UnitMillimeters,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.RainAmount()) },
	},
	{
		Key:            "snow_amount",
		TranslationKey: "snow_amount",
		Icon:           "mdi:weather-snowy",
		DeviceClass:    "precipitation",
		Unit:           enums.UnitMillimeters,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.SnowAmount()) },
	},
	{
		Key:            "is_storm",
		TranslationKey: "is_storm",
		Icon:           "mdi:weather-lightning",
		Value:          func(d weather.ISensorData) interface{} { return flag(d.IsStorm()) },
	},
	{
		Key:            "geomagnetic_field",
		TranslationKey: "geomagnetic_field",
		Icon:           "mdi:magnet-on",
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.GeomagneticField()) },
	},
	{
		Key:            "water_temperature",
		TranslationKey: "water_temperature",
		DeviceClass:    "temperature",
		Unit:           enums.UnitCelsius,
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.WaterTemperature()) },
	},
	{
		Key:            "uv_index",
		TranslationKey: "uv_index",
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.UVIndex()) },
	},
	{
		Key:            "pollen_birch",
		TranslationKey: "pollen_birch",
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.PollenBirch()) },
	},
	{
		Key:            "pollen_grass",
		TranslationKey: "pollen_grass",
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.PollenGrass()) },
	},
	{
		Key:            "pollen_ragweed",
		TranslationKey: "pollen_ragweed",
		StateClass:     enums.StateClassMeasured,
		Value:          func(d weather.ISensorData) interface{} { return num(d.PollenRagweed()) },
	},
	{
		Key:            "road_condition",
		TranslationKey: "road_condition",
		Value:          func(d weather.ISensorData) interface{} { return str(d.RoadCondition()) },
	},
}

// ForecastDescriptions contains sensors provided for every configured forecast day.
// Values are taken from the daily period snapshot.
var ForecastDescriptions = []*Description{
	{
		Key:            "condition",
		TranslationKey: "condition_forecast",
		DeviceClass:    conditionDeviceClass,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return str(d.Condition()) },
	},
	{
		Key:            "temperature",
		TranslationKey: "temperature_forecast",
		DeviceClass:    "temperature",
		Unit:           enums.UnitCelsius,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.Temperature()) },
	},
	{
		Key:            "templow",
		TranslationKey: "temperature_low_forecast",
		DeviceClass:    "temperature",
		Unit:           enums.UnitCelsius,
		Value:          func(d weather.ISensorData) interface{} { return num(d.TemperatureLow()) },
	},
	{
		Key:            "apparent_temperature",
		TranslationKey: "apparent_temperature_forecast",
		DeviceClass:    "temperature",
		Unit:           enums.UnitCelsius,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.ApparentTemperature()) },
	},
	{
		Key:            "humidity",
		TranslationKey: "humidity_forecast",
		DeviceClass:    "humidity",
		Unit:           enums.UnitPercentage,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.Humidity()) },
	},
	{
		Key:            "pressure",
		TranslationKey: "pressure_forecast",
		DeviceClass:    "pressure",
		Unit:           enums.UnitMmHg,
		EnabledDefault: true,
		Value:          func(d weather.ISensorData) interface{} { return num(d.Pressure()) },
	},
	{
		Key:            "precipitation_amount",
		TranslationKey: "precipitation_forecast",
		DeviceClass:    "precipitation",
		Unit:           enums.UnitMillimeters,
		Value:          func(d weather.ISensorData) interface{} { return num(d.PrecipitationAmount()) },
	},
	{
		Key:            "wind_speed",
		TranslationKey: "wind_speed_forecast",
		Icon:           "mdi:weather-windy",
		Unit:           enums.UnitMetersPerSec,
		Value:          func(d weather.ISensorData) interface{} { return num(d.WindSpeed()) },
	},
	{
		Key:            "wind_gust_speed",
		TranslationKey: "wind_gust_speed_forecast",
		Icon:           "mdi:weather-windy",
		Unit:           enums.UnitMetersPerSec,
		Value:          func(d weather.ISensorData) interface{} { return num(d.WindGustSpeed()) },
	},
	{
		Key:            "wind_bearing",
		TranslationKey: "wind_bearing_forecast",
		Icon:           "mdi:weather-windy",
		Unit:           enums.UnitDegree,
		Value:          func(d weather.ISensorData) interface{} { return num(d.WindBearing()) },
	},
	{
		Key:            "wind_bearing_label",
		TranslationKey: "wind_bearing_label_forecast",
		Icon:           "mdi:weather-windy",
		Value:          func(d weather.ISensorData) interface{} { return str(d.WindBearingLabel()) },
	},
	{
		Key:            "cloud_coverage",
		TranslationKey: "cloud_coverage_forecast",
		Icon:           "mdi:weather-partly-cloudy",
		Unit:           enums.UnitPercentage,
		Value:          func(d weather.ISensorData) interface{} { return num(d.CloudCoverage()) },
	},
	{
		Key:            "rain_amount",
		TranslationKey: "rain_amount_forecast",
		Icon:           "mdi:weather-rainy",
		DeviceClass:    "precipitation",
		Unit:           enums.UnitMillimeters,
		Value:          func(d weather.ISensorData) interface{} { return num(d.RainAmount()) },
	},
	{
		Key:            "snow_amount",
		TranslationKey: "snow_amount_forecast",
		Icon:           "mdi:weather-snowy",
		DeviceClass:    "precipitation",
		Unit:           enums.UnitMillimeters,
		Value:          func(d weather.ISensorData) interface{} { return num(d.SnowAmount()) },
	},
	{
		Key:            "is_storm",
		TranslationKey: "is_storm_forecast",
		Icon:           "mdi:weather-lightning",
		Value:          func(d weather.ISensorData) interface{} { return flag(d.IsStorm()) },
	},
	{
		Key:            "geomagnetic_field",
		TranslationKey: "geomagnetic_field_forecast",
		Icon:           "mdi:magnet-on",
		Value:          func(d weather.ISensorData) interface{} { return num(d.GeomagneticField()) },
	},
	{
		Key:            "uv_index",
		TranslationKey: "uv_index_forecast",
		Value:          func(d weather.ISensorData) interface{} { return num(d.UVIndex()) },
	},
	{
		Key:            "pollen_birch",
		TranslationKey: "pollen_birch_forecast",
		Value:          func(d weather.ISensorData) interface{} { return num(d.PollenBirch()) },
	},
	{
		Key:            "pollen_grass",
		TranslationKey: "pollen_grass_forecast",
		Value:          func(d weather.ISensorData) interface{} { return num(d.PollenGrass()) },
	},
	{
		Key:            "pollen_ragweed",
		TranslationKey: "pollen_ragweed_forecast",
		Value:          func(d weather.ISensorData) interface{} { return num(d.PollenRagweed()) },
	},
	{
		Key:            "road_condition",
		TranslationKey: "road_condition_forecast",
		Value:          func(d weather.ISensorData) interface{} { return str(d.RoadCondition()) },
	},
}

func num(v *float64) interface{} {
	if nil == v {
		return nil
	}

	return *v
}

func flag(v *bool) interface{} {
	if nil == v {
		return nil
	}

	return *v
}

func str(v *string) interface{} {
	if nil == v {
		return nil
	}

	return *v
}
