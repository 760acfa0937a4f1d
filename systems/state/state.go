// Package state contains registry of the added entities.
package state

import (
	"fmt"
	"sort"
	"sync"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/utils"
)

// AddEntitiesCallback registers a batch of entities.
// If updateBeforeAdd is set, entities are expected to be refreshed before adding.
type AddEntitiesCallback func(entities []weather.IEntity, updateBeforeAdd bool)

// EntityState is a rendered entity state.
type EntityState struct {
	EntityID   string                 `json:"entity_id"`
	UniqueID   string                 `json:"unique_id"`
	EntryID    string                 `json:"entry_id"`
	Name       string                 `json:"name"`
	Platform   string                 `json:"platform"`
	Available  bool                   `json:"available"`
	State      interface{}            `json:"state"`
	Attributes map[string]interface{} `json:"attributes"`
}

// Known entity.
type knownEntity struct {
	id       string
	entryID  string
	entity   weather.IEntity
	unsub    common.Unsubscribe
	disabled bool
}

// ConstructRegistry has data required for a new entities registry.
type ConstructRegistry struct {
	Logger common.ILoggerProvider
	FanOut providers.IFanOutProvider
}

// Registry keeps all added entities.
type Registry struct {
	sync.RWMutex
	logger   common.ILoggerProvider
	fanOut   providers.IFanOutProvider
	entities map[string]*knownEntity
	unique   map[string]string
}

// NewRegistry creates a new entities registry.
func NewRegistry(ctor *ConstructRegistry) *Registry {
	return &Registry{
		logger:   ctor.Logger,
		fanOut:   ctor.FanOut,
		entities: make(map[string]*knownEntity),
		unique:   make(map[string]string),
	}
}

// AddEntities returns callback adding entities of the entry.
func (r *Registry) AddEntities(entryID string) AddEntitiesCallback {
	return func(entities []weather.IEntity, updateBeforeAdd bool) {
		if updateBeforeAdd {
			r.logger.Debug("Entities are added without update, data is provided by coordinator",
				common.LogEntryToken, entryID)
		}

		for _, v := range entities {
			r.add(entryID, v)
		}
	}
}

// RemoveEntry removes all entities of the entry.
func (r *Registry) RemoveEntry(entryID string) {
	r.Lock()
	removed := make([]string, 0)
	for k, v := range r.entities {
		if v.entryID != entryID {
			continue
		}

		if nil != v.unsub {
			v.unsub()
		}

		delete(r.entities, k)
		delete(r.unique, r.uniqueKey(v.entity))
		if !v.disabled {
			removed = append(removed, k)
		}
	}
	r.Unlock()

	for _, v := range removed {
		r.logger.Debug("Removed entity", common.LogIDToken, v, common.LogEntryToken, entryID)
		r.publish(v, true)
	}
}

// Get returns entity by its ID.
func (r *Registry) Get(entityID string) (weather.IEntity, bool) {
	r.RLock()
	defer r.RUnlock()

	e, ok := r.entities[entityID]
	if !ok || e.disabled {
		return nil, false
	}

	return e.entity, true
}

// IDs returns sorted IDs of all enabled entities.
func (r *Registry) IDs() []string {
	return r.ids(false)
}

// Disabled returns sorted IDs of entities which are disabled by default.
func (r *Registry) Disabled() []string {
	return r.ids(true)
}

// Enable starts publishing updates of the disabled entity.
// Returns false if entity is unknown.
func (r *Registry) Enable(entityID string) bool {
	r.Lock()
	e, ok := r.entities[entityID]
	if !ok {
		r.Unlock()
		return false
	}

	if !e.disabled {
		r.Unlock()
		return true
	}

	e.disabled = false
	e.unsub = e.entity.AddListener(func() {
		r.publish(entityID, false)
	})
	r.Unlock()

	r.logger.Info("Enabled entity", common.LogIDToken, entityID, common.LogEntryToken, e.entryID)
	r.publish(entityID, false)
	return true
}

func (r *Registry) ids(disabled bool) []string {
	r.RLock()
	defer r.RUnlock()

	result := make([]string, 0, len(r.entities))
	for k, v := range r.entities {
		if v.disabled == disabled {
			result = append(result, k)
		}
	}

	sort.Strings(result)
	return result
}

// State renders entity state.
func (r *Registry) State(entityID string) (*EntityState, bool) {
	r.RLock()
	e, ok := r.entities[entityID]
	disabled := ok && e.disabled
	r.RUnlock()
	if !ok || disabled {
		return nil, false
	}

	return &EntityState{
		EntityID:   e.id,
		UniqueID:   e.entity.UniqueID(),
		EntryID:    e.entryID,
		Name:       e.entity.Name(),
		Platform:   e.entity.Platform().String(),
		Available:  e.entity.Available(),
		State:      e.entity.State(),
		Attributes: e.entity.Attributes(),
	}, true
}

// States renders states of all entities sorted by ID.
func (r *Registry) States() []*EntityState {
	result := make([]*EntityState, 0)
	for _, v := range r.IDs() {
		s, ok := r.State(v)
		if ok {
			result = append(result, s)
		}
	}

	return result
}

// Adds a single entity.
func (r *Registry) add(entryID string, entity weather.IEntity) {
	r.Lock()
	key := r.uniqueKey(entity)
	if id, ok := r.unique[key]; ok {
		r.Unlock()
		r.logger.Warn("Entity with the same unique ID already exists", common.LogIDToken, id,
			common.LogEntryToken, entryID)
		return
	}

	id := r.entityID(entity)
	known := &knownEntity{
		id:      id,
		entryID: entryID,
		entity:  entity,
	}

	if de, ok := entity.(weather.IDefaultEnabled); ok && !de.EnabledDefault() {
		known.disabled = true
	} else {
		known.unsub = entity.AddListener(func() {
			r.publish(id, false)
		})
	}

	r.entities[id] = known
	r.unique[key] = id
	r.Unlock()

	if known.disabled {
		r.logger.Debug("Added disabled entity", common.LogIDToken, id, common.LogEntryToken, entryID)
		return
	}

	r.logger.Info("Added entity", common.LogIDToken, id, common.LogEntryToken, entryID,
		common.LogPlatformToken, entity.Platform().String())
	r.publish(id, false)
}

// Generates entity ID. Must be called under lock.
func (r *Registry) entityID(entity weather.IEntity) string {
	base := fmt.Sprintf("%s.%s", entity.Platform(), utils.Slugify(entity.Name()))
	id := base
	for i := 2; ; i++ {
		if _, ok := r.entities[id]; !ok {
			return id
		}

		id = fmt.Sprintf("%s_%d", base, i)
	}
}

func (r *Registry) uniqueKey(entity weather.IEntity) string {
	return fmt.Sprintf("%s/%s", entity.Platform(), entity.UniqueID())
}

// Publishes entity update.
func (r *Registry) publish(entityID string, removed bool) {
	if nil == r.fanOut {
		return
	}

	select {
	case r.fanOut.ChannelInEntityUpdates() <- &providers.MsgEntityUpdate{ID: entityID, Removed: removed}:
	default:
		r.logger.Warn("Entity updates queue is full", common.LogIDToken, entityID)
	}
}
