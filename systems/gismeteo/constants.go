// Package gismeteo contains Gismeteo API client and snapshot projections.
package gismeteo

import "time"

const (
	// UpdateInterval describes default refresh interval of the current weather.
	UpdateInterval = 5 * time.Minute
	// ForecastMaxCacheInterval describes how long forecast responses are reused.
	ForecastMaxCacheInterval = 3 * time.Hour
	// DefaultForecastDays describes forecast depth if not configured.
	DefaultForecastDays = 3
	// MaxForecastDays describes maximum forecast depth supported by the API.
	MaxForecastDays = 10

	tokenHeader = "X-Gismeteo-Token"

	pathCurrent  = "/v2/weather/current/"
	pathHourly   = "/v2/weather/forecast/"
	pathDaily    = "/v2/weather/forecast/aggregate/"
	logSystem    = "gismeteo"
	metaCodeOkay = "200"
)

// Precipitation types.
const (
	precipitationNone = iota
	precipitationRain
	precipitationSnow
	precipitationMixed
)

// Cloudiness types.
const (
	cloudinessClear    = 0
	cloudinessLight    = 1
	cloudinessCloudy   = 2
	cloudinessOvercast = 3
	cloudinessVariable = 101
)

// Maximal precipitation intensity.
const precipitationIntensityHeavy = 3

// Phenomenon classes reported as fog.
var conditionFogClasses = map[int]bool{
	11: true, 12: true, 28: true, 40: true, 41: true, 42: true, 43: true, 44: true,
	45: true, 46: true, 47: true, 48: true, 49: true, 120: true, 130: true, 131: true,
	132: true, 133: true, 134: true, 135: true, 528: true,
}

// Wind bearing labels on the 8-point scale, 0 is calm.
var windBearingLabels = []string{"c", "n", "ne", "e", "se", "s", "sw", "w", "nw"}
