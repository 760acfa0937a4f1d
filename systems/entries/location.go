package entries

import (
	"strings"

	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Configuration keys.
const (
	ConfName         = "name"
	ConfToken        = "token"
	ConfLatitude     = "latitude"
	ConfLongitude    = "longitude"
	ConfForecastDays = "forecast_days"
	ConfAddSensors   = "add_sensors"
)

// MaxForecastDays limits forecast depth.
const MaxForecastDays = 10

// DefaultName is used if location name is not provided.
const DefaultName = "Gismeteo"

// LocationConfig has location settings.
type LocationConfig struct {
	Name         string  `yaml:"name" default:"Gismeteo"`
	Token        string  `yaml:"token"`
	Latitude     float64 `yaml:"latitude" validate:"latitude"`
	Longitude    float64 `yaml:"longitude" validate:"longitude"`
	ForecastDays int     `yaml:"forecast_days" default:"3" validate:"min=1,max=10"`
}

// Credentials required from the locations added by user.
type credentials struct {
	Token string `validate:"required"`
}

// DecodeUserLocation builds location settings submitted by user.
// Unlike legacy locations, token is mandatory.
func DecodeUserLocation(raw map[string]interface{}, home *providers.HomeLocation,
	validator providers.IValidatorProvider) (*LocationConfig, error) {
	cfg, err := DecodeLocation(raw, home, validator)
	if err != nil {
		return nil, err
	}

	if !validator.Validate(&credentials{Token: strings.TrimSpace(cfg.Token)}) {
		return nil, &ErrInvalidLocation{}
	}

	return cfg, nil
}

// DecodeLocation builds location settings from a raw map.
// Missing coordinates are taken from the home location.
func DecodeLocation(raw map[string]interface{}, home *providers.HomeLocation,
	validator providers.IValidatorProvider) (*LocationConfig, error) {
	cfg := &LocationConfig{}
	if nil != home {
		cfg.Latitude = home.Latitude
		cfg.Longitude = home.Longitude
	}

	if len(raw) > 0 {
		data, err := yaml.Marshal(raw)
		if err != nil {
			return nil, errors.Wrap(err, "marshal failed")
		}

		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "unmarshal failed")
		}
	}

	if !validator.Validate(cfg) {
		return nil, &ErrInvalidLocation{}
	}

	return cfg, nil
}

// UniqueID returns location unique ID.
func (c *LocationConfig) UniqueID() string {
	return utils.LocationID(c.Latitude, c.Longitude)
}

// Location returns provider parameters.
func (c *LocationConfig) Location() weather.Location {
	return weather.Location{
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Token:        c.Token,
		ForecastDays: c.ForecastDays,
	}
}
