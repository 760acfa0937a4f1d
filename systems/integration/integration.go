// Package integration contains config entries lifecycle.
package integration

import (
	"context"
	"sync"
	"time"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems/coordinator"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/flow"
	"github.com/iredun/ha-gismeteo/systems/logger"
	"github.com/iredun/ha-gismeteo/systems/registry"
	"github.com/iredun/ha-gismeteo/systems/sensor"
	"github.com/iredun/ha-gismeteo/systems/state"
	wplatform "github.com/iredun/ha-gismeteo/systems/weather"
)

const (
	logSystem     = "integration"
	reloadTimeout = 30 * time.Second
)

// Platform setup function.
type platformSetup func(reg *registry.Registry, entry *entries.ConfigEntry, add state.AddEntitiesCallback) error

var platforms = map[enums.Platform]platformSetup{
	enums.PlatformSensor:  sensor.SetupEntry,
	enums.PlatformWeather: wplatform.SetupEntry,
}

// Data source which can be stopped.
type unloader interface {
	Unload()
}

// ConstructIntegration has data required for a new integration.
type ConstructIntegration struct {
	Settings providers.ISettingsProvider
	Client   weather.IProviderClient
	Store    *entries.Store
	Registry *registry.Registry
	State    *state.Registry
}

// Integration sets up and unloads config entries.
type Integration struct {
	sync.Mutex
	ctor   *ConstructIntegration
	logger common.ILoggerProvider
	loaded map[string]common.Unsubscribe
}

// NewIntegration creates a new integration.
func NewIntegration(ctor *ConstructIntegration) *Integration {
	return &Integration{
		ctor: ctor,
		logger: logger.NewPluginLogger(&logger.ConstructPluginLogger{
			SystemLogger: ctor.Settings.SystemLogger(),
			System:       logSystem,
			Provider:     common.Domain,
		}),
		loaded: make(map[string]common.Unsubscribe),
	}
}

// SetupEntry creates coordinators of the entry and adds its entities.
// Failed first refresh does not prevent setup.
func (i *Integration) SetupEntry(ctx context.Context, entry *entries.ConfigEntry) error {
	i.Lock()
	defer i.Unlock()

	if _, ok := i.loaded[entry.EntryID]; ok {
		return &ErrAlreadyLoaded{ID: entry.EntryID}
	}

	i.logger.Info("Setting up config entry", common.LogEntryToken, entry.EntryID,
		common.LogNameToken, entry.Title, common.LogSourceToken, string(entry.Source))

	if entries.SourceImport == entry.Source {
		for _, key := range i.ctor.Registry.LegacyKeys() {
			raw, _ := i.ctor.Registry.Legacy(key)
			i.setupLocation(ctx, entry.EntryID, key, raw)
		}
	} else {
		i.setupLocation(ctx, entry.EntryID, entry.EntryID, entry.Merged())
	}

	add := i.ctor.State.AddEntities(entry.EntryID)
	for _, p := range enums.Platforms {
		if !entry.PlatformEnabled(p) {
			i.logger.Debug("Platform is disabled", common.LogEntryToken, entry.EntryID,
				common.LogPlatformToken, p.String())
			continue
		}

		if err := platforms[p](i.ctor.Registry, entry, add); err != nil {
			i.logger.Error("Failed to set up some locations", err, common.LogEntryToken, entry.EntryID,
				common.LogPlatformToken, p.String())
		}
	}

	i.loaded[entry.EntryID] = i.ctor.Store.AddUpdateListener(entry.EntryID, i.onOptionsUpdate)
	return nil
}

// UnloadEntry stops coordinators of the entry and removes its entities.
func (i *Integration) UnloadEntry(entryID string) error {
	i.Lock()
	defer i.Unlock()
	return i.unload(entryID)
}

// ReloadEntry unloads and sets up the entry again.
func (i *Integration) ReloadEntry(ctx context.Context, entryID string) error {
	entry, err := i.ctor.Store.Get(entryID)
	if err != nil {
		return err
	}

	if err := i.UnloadEntry(entryID); err != nil {
		i.logger.Debug("Reloading entry which was not loaded", common.LogEntryToken, entryID)
	}

	return i.SetupEntry(ctx, entry)
}

// RemoveEntry unloads the entry and deletes it from the store.
func (i *Integration) RemoveEntry(entryID string) error {
	if err := i.UnloadEntry(entryID); err != nil {
		i.logger.Debug("Removing entry which was not loaded", common.LogEntryToken, entryID)
	}

	return i.ctor.Store.Remove(entryID)
}

// SetupAll sets up all stored entries.
func (i *Integration) SetupAll(ctx context.Context) {
	for _, v := range i.ctor.Store.List() {
		if err := i.SetupEntry(ctx, v); err != nil {
			i.logger.Error("Failed to set up config entry", err, common.LogEntryToken, v.EntryID)
		}
	}
}

// ImportLegacy imports legacy YAML locations.
// Imported entry is removed once legacy locations are gone.
func (i *Integration) ImportLegacy(ctx context.Context, flows *flow.Manager) error {
	if !i.ctor.Registry.HasLegacy() {
		for _, v := range i.ctor.Store.FindBySource(entries.SourceImport) {
			i.logger.Info("Legacy configuration is gone, removing imported entry", common.LogEntryToken, v.EntryID)
			if err := i.RemoveEntry(v.EntryID); err != nil {
				return err
			}
		}

		return nil
	}

	result, err := flows.Init(ctx, entries.SourceImport, map[string]interface{}{})
	if err != nil {
		return err
	}

	i.logger.Info("Legacy configuration import finished", common.LogFlowToken, result.FlowID,
		"result", string(result.Type), "reason", result.Reason)
	return nil
}

// Stop unloads all entries.
func (i *Integration) Stop() {
	i.Lock()
	defer i.Unlock()

	for k := range i.loaded {
		i.unload(k) // nolint: errcheck
	}
}

// Loaded checks whether entry is loaded.
func (i *Integration) Loaded(entryID string) bool {
	i.Lock()
	defer i.Unlock()

	_, ok := i.loaded[entryID]
	return ok
}

// Unloads entry. Must be called under lock.
func (i *Integration) unload(entryID string) error {
	unsub, ok := i.loaded[entryID]
	if !ok {
		return &ErrNotLoaded{ID: entryID}
	}

	unsub()
	delete(i.loaded, entryID)

	i.ctor.State.RemoveEntry(entryID)
	for _, v := range i.ctor.Registry.RemoveEntry(entryID) {
		if u, ok := v.(unloader); ok {
			u.Unload()
		}
	}

	i.logger.Info("Unloaded config entry", common.LogEntryToken, entryID)
	return nil
}

// Creates, refreshes and schedules a coordinator of the location.
func (i *Integration) setupLocation(ctx context.Context, entryID string, key string, raw map[string]interface{}) {
	settings := i.ctor.Settings
	cfg, err := entries.DecodeLocation(raw, settings.HomeLocation(), settings.Validator())
	if err != nil {
		i.logger.Error("Invalid location configuration", err, common.LogEntryToken, entryID,
			common.LogLocationToken, key)
		return
	}

	c := coordinator.NewCoordinator(&coordinator.ConstructCoordinator{
		UniqueID:       cfg.UniqueID(),
		Location:       cfg.Location(),
		Client:         i.ctor.Client,
		Cron:           settings.Cron(),
		Logger:         settings.PluginLogger(coordinator.LogSystem, key),
		UpdateInterval: settings.GismeteoSettings().UpdateInterval,
		RequestTimeout: settings.GismeteoSettings().Timeout,
	})

	if err = c.Refresh(ctx); err != nil {
		i.logger.Warn("First refresh failed, values are unknown until the next update",
			common.LogLocationToken, key, common.LogErrorToken, err.Error())
	}

	if err = c.Start(); err != nil {
		i.logger.Error("Failed to schedule location updates", err, common.LogLocationToken, key)
	}

	i.ctor.Registry.Add(entryID, key, c)
}

// Reloads entry after options change.
func (i *Integration) onOptionsUpdate(entry *entries.ConfigEntry) {
	timeout := i.ctor.Settings.GismeteoSettings().Timeout
	if timeout <= 0 {
		timeout = reloadTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := i.ReloadEntry(ctx, entry.EntryID); err != nil {
		i.logger.Error("Failed to reload entry after options update", err, common.LogEntryToken, entry.EntryID)
	}
}
