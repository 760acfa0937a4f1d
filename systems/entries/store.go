package entries

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// UpdateListener is invoked after entry options change.
type UpdateListener func(entry *ConfigEntry)

// ConstructStore has data required for a new entries store.
type ConstructStore struct {
	Logger common.ILoggerProvider
	File   string
}

// Store keeps config entries and persists them into a YAML file.
type Store struct {
	sync.RWMutex
	logger common.ILoggerProvider
	file   string

	entries   map[string]*ConfigEntry
	order     []string
	listeners map[string]map[int]UpdateListener
	nextID    int
}

// NewStore creates a new store and loads previously saved entries.
// Empty file name means in-memory store.
func NewStore(ctor *ConstructStore) (*Store, error) {
	s := &Store{
		logger:    ctor.Logger,
		file:      ctor.File,
		entries:   make(map[string]*ConfigEntry),
		order:     make([]string, 0),
		listeners: make(map[string]map[int]UpdateListener),
	}

	if "" == s.file {
		return s, nil
	}

	data, err := ioutil.ReadFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("Entries file not found, starting with empty store", common.LogFileToken, s.file)
			return s, nil
		}

		return nil, errors.Wrap(err, "read failed")
	}

	list := make([]*ConfigEntry, 0)
	if err = yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "unmarshal failed")
	}

	for _, v := range list {
		if "" == v.EntryID {
			s.logger.Warn("Skipping entry without ID", common.LogFileToken, s.file)
			continue
		}

		if nil == v.Data {
			v.Data = make(map[string]interface{})
		}

		if nil == v.Options {
			v.Options = make(map[string]interface{})
		}

		s.entries[v.EntryID] = v
		s.order = append(s.order, v.EntryID)
	}

	s.logger.Info("Loaded config entries", common.LogFileToken, s.file)
	return s, nil
}

// Add stores a new entry and assigns its ID.
func (s *Store) Add(entry *ConfigEntry) (*ConfigEntry, error) {
	s.Lock()
	defer s.Unlock()

	if "" != entry.UniqueID {
		for _, v := range s.entries {
			if v.UniqueID == entry.UniqueID {
				return nil, &ErrAlreadyConfigured{UniqueID: entry.UniqueID}
			}
		}
	}

	e := entry.Copy()
	e.EntryID = uuid.New().String()
	s.entries[e.EntryID] = e
	s.order = append(s.order, e.EntryID)

	if err := s.save(); err != nil {
		delete(s.entries, e.EntryID)
		s.order = s.order[:len(s.order)-1]
		return nil, err
	}

	s.logger.Info("Added config entry", common.LogEntryToken, e.EntryID, common.LogNameToken, e.Title)
	return e.Copy(), nil
}

// Get returns a copy of the entry.
func (s *Store) Get(entryID string) (*ConfigEntry, error) {
	s.RLock()
	defer s.RUnlock()

	e, ok := s.entries[entryID]
	if !ok {
		return nil, &ErrEntryNotFound{ID: entryID}
	}

	return e.Copy(), nil
}

// List returns all entries in creation order.
func (s *Store) List() []*ConfigEntry {
	s.RLock()
	defer s.RUnlock()

	result := make([]*ConfigEntry, 0, len(s.order))
	for _, v := range s.order {
		result = append(result, s.entries[v].Copy())
	}

	return result
}

// FindByUniqueID returns entry with the given unique ID or nil.
func (s *Store) FindByUniqueID(uniqueID string) *ConfigEntry {
	s.RLock()
	defer s.RUnlock()

	for _, v := range s.order {
		if s.entries[v].UniqueID == uniqueID {
			return s.entries[v].Copy()
		}
	}

	return nil
}

// FindBySource returns entries created from the given source.
func (s *Store) FindBySource(source Source) []*ConfigEntry {
	s.RLock()
	defer s.RUnlock()

	result := make([]*ConfigEntry, 0)
	for _, v := range s.order {
		if s.entries[v].Source == source {
			result = append(result, s.entries[v].Copy())
		}
	}

	return result
}

// UpdateOptions replaces entry options and notifies listeners.
func (s *Store) UpdateOptions(entryID string, options map[string]interface{}) (*ConfigEntry, error) {
	s.Lock()
	e, ok := s.entries[entryID]
	if !ok {
		s.Unlock()
		return nil, &ErrEntryNotFound{ID: entryID}
	}

	old := e.Options
	e.Options = copyMap(options)
	if err := s.save(); err != nil {
		e.Options = old
		s.Unlock()
		return nil, err
	}

	result := e.Copy()
	listeners := make([]UpdateListener, 0)
	for _, v := range s.listeners[entryID] {
		listeners = append(listeners, v)
	}
	s.Unlock()

	s.logger.Info("Updated config entry options", common.LogEntryToken, entryID)
	for _, v := range listeners {
		v(result.Copy())
	}

	return result, nil
}

// Remove deletes the entry.
func (s *Store) Remove(entryID string) error {
	s.Lock()
	defer s.Unlock()

	e, ok := s.entries[entryID]
	if !ok {
		return &ErrEntryNotFound{ID: entryID}
	}

	delete(s.entries, entryID)
	order := s.order
	s.order = make([]string, 0, len(order))
	for _, v := range order {
		if v != entryID {
			s.order = append(s.order, v)
		}
	}

	if err := s.save(); err != nil {
		s.entries[entryID] = e
		s.order = order
		return err
	}

	delete(s.listeners, entryID)
	s.logger.Info("Removed config entry", common.LogEntryToken, entryID)
	return nil
}

// AddUpdateListener registers options update listener.
func (s *Store) AddUpdateListener(entryID string, listener UpdateListener) common.Unsubscribe {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.listeners[entryID]; !ok {
		s.listeners[entryID] = make(map[int]UpdateListener)
	}

	s.nextID++
	id := s.nextID
	s.listeners[entryID][id] = listener

	return func() {
		s.Lock()
		defer s.Unlock()
		if l, ok := s.listeners[entryID]; ok {
			delete(l, id)
		}
	}
}

// Persists entries. Must be called under lock.
func (s *Store) save() error {
	if "" == s.file {
		return nil
	}

	list := make([]*ConfigEntry, 0, len(s.order))
	for _, v := range s.order {
		list = append(list, s.entries[v])
	}

	data, err := yaml.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "marshal failed")
	}

	tmp := filepath.Join(filepath.Dir(s.file), "."+filepath.Base(s.file)+".tmp")
	if err = ioutil.WriteFile(tmp, data, 0600); err != nil {
		s.logger.Error("Failed to write entries file", err, common.LogFileToken, tmp)
		return errors.Wrap(err, "write failed")
	}

	if err = os.Rename(tmp, s.file); err != nil {
		s.logger.Error("Failed to replace entries file", err, common.LogFileToken, s.file)
		return errors.Wrap(err, "rename failed")
	}

	return nil
}
