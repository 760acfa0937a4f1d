package registry

import (
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/utils"
)

// BoundLocation is a data source together with the location display name.
// ForecastDays is zero unless forecast depth is configured explicitly.
type BoundLocation struct {
	Key          string
	Name         string
	Source       weather.IDataSource
	Sensors      bool
	ForecastDays int
}

// Locations resolves all locations of the entry.
// Locations without coordinator are skipped and reported with ErrMissingCoordinator.
func (r *Registry) Locations(entry *entries.ConfigEntry) ([]*BoundLocation, error) {
	result := make([]*BoundLocation, 0)
	missing := make([]string, 0)

	resolve := func(key string, name string, config map[string]interface{}) {
		source, ok := r.Get(key)
		if !ok || nil == source {
			missing = append(missing, key)
			return
		}

		sensors, ok := config[entries.ConfAddSensors].(bool)
		if !ok {
			sensors = true
		}

		result = append(result, &BoundLocation{
			Key:          key,
			Name:         name,
			Source:       source,
			Sensors:      sensors,
			ForecastDays: forecastDays(config[entries.ConfForecastDays]),
		})
	}

	if entries.SourceImport == entry.Source {
		for _, key := range r.LegacyKeys() {
			config, _ := r.Legacy(key)
			if nil == config {
				config = make(map[string]interface{})
			}

			name, ok := config[entries.ConfName].(string)
			if !ok || "" == name {
				name = utils.Deslugify(key)
			}

			resolve(key, name, config)
		}
	} else {
		config := entry.Merged()
		name, ok := config[entries.ConfName].(string)
		if !ok || "" == name {
			name = entries.DefaultName
		}

		resolve(entry.EntryID, name, config)
	}

	if len(missing) > 0 {
		return result, &ErrMissingCoordinator{Keys: missing}
	}

	return result, nil
}

// Parses configured forecast depth, yaml and json produce different number types.
func forecastDays(raw interface{}) int {
	var days int
	switch v := raw.(type) {
	case int:
		days = v
	case int64:
		days = int(v)
	case uint64:
		days = int(v)
	case float64:
		days = int(v)
	}

	if days < 0 {
		return 0
	}

	if days > entries.MaxForecastDays {
		return entries.MaxForecastDays
	}

	return days
}
