package weather

import (
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/registry"
	"github.com/iredun/ha-gismeteo/systems/state"
)

// SetupEntry adds weather entities of the entry.
// Locations without coordinator are skipped, the rest are still added.
func SetupEntry(reg *registry.Registry, entry *entries.ConfigEntry, add state.AddEntitiesCallback) error {
	locations, err := reg.Locations(entry)

	entities := make([]weather.IEntity, 0, len(locations))
	for _, v := range locations {
		e, eErr := NewEntity(v.Source, v.Name)
		if eErr != nil {
			continue
		}

		entities = append(entities, e)
	}

	add(entities, false)
	return err
}
