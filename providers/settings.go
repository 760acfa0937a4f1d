package providers

import (
	"time"

	"github.com/iredun/ha-gismeteo/plugins/common"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system string, provider string) common.ILoggerProvider
	Cron() ICronProvider
	Validator() IValidatorProvider
	FanOut() IFanOutProvider
	Security() ISecurityProvider
	ServerSettings() *ServerSettings
	GismeteoSettings() *GismeteoSettings
	HomeLocation() *HomeLocation
	LegacyLocations() map[string]map[string]interface{}
	EntriesFile() string
}

// ServerSettings has configured data for the API server.
type ServerSettings struct {
	Port         int      `yaml:"port" validate:"required,port" default:"8123"`
	AllowOrigins []string `yaml:"allowOrigins"`
	DelayedStart int      `yaml:"delayedStart" validate:"gte=0"`
}

// GismeteoSettings has configured data for the provider client.
type GismeteoSettings struct {
	Endpoint       string        `yaml:"endpoint" validate:"required,url" default:"https://api.gismeteo.net"`
	Timeout        time.Duration `yaml:"timeout" default:"10s"`
	UpdateInterval time.Duration `yaml:"updateInterval" default:"5m"`
	MaxRetries     int           `yaml:"maxRetries" validate:"gte=0,lte=10" default:"2"`
}

// SecuritySettings has configured API users.
type SecuritySettings struct {
	Users     map[string]string `yaml:"users"`
	UsersFile string            `yaml:"usersFile"`
}

// LoggerSettings has configured logger data.
type LoggerSettings struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug dbg info warning warn error err" default:"info"`
	JSON  bool   `yaml:"json"`
}

// HomeLocation has coordinates used as defaults for new locations.
type HomeLocation struct {
	Latitude  float64 `yaml:"latitude" validate:"latitude"`
	Longitude float64 `yaml:"longitude" validate:"longitude"`
}
