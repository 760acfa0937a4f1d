package enums

import (
	"fmt"
	"strings"
)

// Platform describes entity platform provided by the integration.
type Platform string

const (
	// PlatformSensor describes sensor platform.
	PlatformSensor Platform = "sensor"
	// PlatformWeather describes weather platform.
	PlatformWeather Platform = "weather"
)

// ConfPlatformFormat is a format of the options key enabling a platform.
const ConfPlatformFormat = "platform.%s"

// Platforms contains all platforms in setup order.
var Platforms = []Platform{PlatformSensor, PlatformWeather}

// String returns platform name.
func (p Platform) String() string {
	return string(p)
}

// OptionKey returns options mapping key for the platform.
func (p Platform) OptionKey() string {
	return fmt.Sprintf(ConfPlatformFormat, p)
}

// PlatformString converts raw string into a platform.
func PlatformString(s string) (Platform, error) {
	s = strings.ToLower(s)
	for _, v := range Platforms {
		if string(v) == s {
			return v, nil
		}
	}

	return "", &ErrUnknownValue{Kind: "platform", Value: s}
}
