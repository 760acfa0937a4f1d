// Package registry keeps coordinators of the loaded entries
// together with the legacy YAML locations.
package registry

import (
	"sort"
	"sync"

	"github.com/iredun/ha-gismeteo/plugins/weather"
)

// Registry keeps data sources keyed by entry ID or legacy location key.
type Registry struct {
	sync.RWMutex
	sources map[string]weather.IDataSource
	owners  map[string]string
	legacy  map[string]map[string]interface{}
}

// NewRegistry creates a new registry with the legacy locations namespace.
func NewRegistry(legacy map[string]map[string]interface{}) *Registry {
	r := &Registry{
		sources: make(map[string]weather.IDataSource),
		owners:  make(map[string]string),
		legacy:  make(map[string]map[string]interface{}),
	}

	for k, v := range legacy {
		r.legacy[k] = v
	}

	return r
}

// Add registers a data source owned by the entry.
func (r *Registry) Add(entryID string, key string, source weather.IDataSource) {
	r.Lock()
	defer r.Unlock()

	r.sources[key] = source
	r.owners[key] = entryID
}

// Get returns data source by key.
func (r *Registry) Get(key string) (weather.IDataSource, bool) {
	r.RLock()
	defer r.RUnlock()

	s, ok := r.sources[key]
	return s, ok
}

// EntrySources returns all data sources owned by the entry.
func (r *Registry) EntrySources(entryID string) map[string]weather.IDataSource {
	r.RLock()
	defer r.RUnlock()

	result := make(map[string]weather.IDataSource)
	for k, v := range r.owners {
		if v == entryID {
			result[k] = r.sources[k]
		}
	}

	return result
}

// RemoveEntry drops all data sources owned by the entry and returns them.
func (r *Registry) RemoveEntry(entryID string) []weather.IDataSource {
	r.Lock()
	defer r.Unlock()

	result := make([]weather.IDataSource, 0)
	for k, v := range r.owners {
		if v != entryID {
			continue
		}

		result = append(result, r.sources[k])
		delete(r.sources, k)
		delete(r.owners, k)
	}

	return result
}

// HasLegacy checks whether legacy locations were configured.
func (r *Registry) HasLegacy() bool {
	r.RLock()
	defer r.RUnlock()
	return len(r.legacy) > 0
}

// LegacyKeys returns sorted legacy location keys.
func (r *Registry) LegacyKeys() []string {
	r.RLock()
	defer r.RUnlock()

	keys := make([]string, 0, len(r.legacy))
	for k := range r.legacy {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// Legacy returns legacy location config. Nil config means defaults.
func (r *Registry) Legacy(key string) (map[string]interface{}, bool) {
	r.RLock()
	defer r.RUnlock()

	c, ok := r.legacy[key]
	return c, ok
}
