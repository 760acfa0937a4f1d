// Package sensor contains sensor platform of the integration.
package sensor

import (
	"fmt"
	"strings"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/registry"
	"github.com/iredun/ha-gismeteo/systems/state"
	"github.com/iredun/ha-gismeteo/utils"
)

// Entity exposes a single snapshot value.
type Entity struct {
	weather.EntityBase
	description *Description
}

// NewEntity creates a new sensor entity.
func NewEntity(coordinator weather.IDataSource, locationName string, description *Description) *Entity {
	return &Entity{
		EntityBase: weather.EntityBase{
			Coordinator:  coordinator,
			LocationName: locationName,
		},
		description: description,
	}
}

// UniqueID returns sensor unique ID.
func (e *Entity) UniqueID() string {
	return fmt.Sprintf("%s-%s", e.Coordinator.UniqueID(), e.description.Key)
}

// Name returns sensor name.
func (e *Entity) Name() string {
	return fmt.Sprintf("%s %s", e.LocationName, utils.Deslugify(e.description.TranslationKey))
}

// Platform returns sensor platform.
func (e *Entity) Platform() enums.Platform {
	return enums.PlatformSensor
}

// Description returns sensor description.
func (e *Entity) Description() *Description {
	return e.description
}

// EnabledDefault returns whether the sensor is enabled right after setup.
func (e *Entity) EnabledDefault() bool {
	return e.description.EnabledDefault
}

// State returns current sensor value.
func (e *Entity) State() interface{} {
	return e.description.Value(e.Data())
}

// Attributes returns rendered sensor attributes.
func (e *Entity) Attributes() map[string]interface{} {
	attrs := map[string]interface{}{
		"translation_key":          e.description.TranslationKey,
		"attribution":              common.Attribution,
		"enabled_default":          e.description.EnabledDefault,
		"device":                   e.DeviceInfo(),
		"translation_placeholders": map[string]string{"location_name": e.LocationName},
	}

	optional := map[string]string{
		"device_class":        e.description.DeviceClass,
		"unit_of_measurement": e.description.Unit,
		"state_class":         e.description.StateClass,
		"icon":                e.description.Icon,
	}

	for k, v := range optional {
		if "" != strings.TrimSpace(v) {
			attrs[k] = v
		}
	}

	return attrs
}

// ForecastEntity exposes a single value of the daily forecast period.
type ForecastEntity struct {
	Entity
	day int
}

// NewForecastEntity creates a new sensor of the forecast day, zero is today.
func NewForecastEntity(coordinator weather.IDataSource, locationName string, description *Description,
	day int) *ForecastEntity {
	return &ForecastEntity{
		Entity: *NewEntity(coordinator, locationName, description),
		day:    day,
	}
}

// UniqueID returns sensor unique ID.
func (e *ForecastEntity) UniqueID() string {
	return fmt.Sprintf("%s-%s-%d", e.Coordinator.UniqueID(), e.description.Key, e.day)
}

// Name returns sensor name.
func (e *ForecastEntity) Name() string {
	return fmt.Sprintf("%s %s %d", e.LocationName, utils.Deslugify(e.description.TranslationKey), e.day)
}

// Day returns forecast day of the sensor.
func (e *ForecastEntity) Day() int {
	return e.day
}

// State returns forecast value, nil if the day is not known yet.
func (e *ForecastEntity) State() interface{} {
	day := e.Data().Day(e.day)
	if nil == day {
		return nil
	}

	return e.description.Value(day)
}

// Attributes returns rendered sensor attributes.
func (e *ForecastEntity) Attributes() map[string]interface{} {
	attrs := e.Entity.Attributes()
	attrs["forecast_day"] = e.day
	attrs["translation_placeholders"] = map[string]string{
		"location_name": e.LocationName,
		"day":           fmt.Sprintf("%d", e.day),
	}

	return attrs
}

// SetupEntry adds sensor entities of the entry.
// Locations without coordinator are skipped, the rest are still added.
func SetupEntry(reg *registry.Registry, entry *entries.ConfigEntry, add state.AddEntitiesCallback) error {
	locations, err := reg.Locations(entry)

	entities := make([]weather.IEntity, 0, len(locations)*len(Descriptions))
	for _, l := range locations {
		if !l.Sensors {
			continue
		}

		for _, d := range Descriptions {
			entities = append(entities, NewEntity(l.Source, l.Name, d))
		}

		for day := 0; day < l.ForecastDays; day++ {
			for _, d := range ForecastDescriptions {
				entities = append(entities, NewForecastEntity(l.Source, l.Name, d, day))
			}
		}
	}

	add(entities, false)
	return err
}
