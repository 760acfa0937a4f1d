// Package enums contains enumerations shared by weather platforms.
package enums

import "strings"

// ForecastMode selects forecast resolution.
type ForecastMode string

const (
	// ForecastHourly describes hourly-resolution forecast.
	ForecastHourly ForecastMode = "hourly"
	// ForecastDaily describes daily-resolution forecast.
	ForecastDaily ForecastMode = "daily"
)

// String returns mode name.
func (m ForecastMode) String() string {
	return string(m)
}

// ForecastModeString converts raw string into a forecast mode.
func ForecastModeString(s string) (ForecastMode, error) {
	switch ForecastMode(strings.ToLower(s)) {
	case ForecastHourly:
		return ForecastHourly, nil
	case ForecastDaily:
		return ForecastDaily, nil
	}

	return "", &ErrUnknownValue{Kind: "forecast mode", Value: s}
}
