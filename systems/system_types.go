// Package systems contains names of the configurable systems.
package systems

import (
	"fmt"
	"strings"
)

// SystemType is an enum describing known system types.
type SystemType string

const (
	// SysServer describes API server system.
	SysServer SystemType = "server"
	// SysLogger describes logger system.
	SysLogger SystemType = "logger"
	// SysGismeteo describes provider client system.
	SysGismeteo SystemType = "gismeteo"
	// SysHome describes home location system.
	SysHome SystemType = "home"
	// SysWeather describes legacy weather locations system.
	SysWeather SystemType = "weather"
	// SysSecurity describes API security system.
	SysSecurity SystemType = "security"
)

var allSystems = []SystemType{SysServer, SysLogger, SysGismeteo, SysHome, SysWeather, SysSecurity}

// String returns system name.
func (s SystemType) String() string {
	return string(s)
}

// SystemTypeString converts raw string into a system type.
func SystemTypeString(s string) (SystemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range allSystems {
		if string(v) == s {
			return v, nil
		}
	}

	return "", fmt.Errorf("%s is not a valid system type", s)
}
