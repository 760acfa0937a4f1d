// Package coordinator contains polling data update coordinator.
package coordinator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/systems/gismeteo"
	"github.com/pkg/errors"
)

// LogSystem is used as a system name of coordinator loggers.
const LogSystem = "coordinator"

// Minimal allowed polling interval.
const minUpdateInterval = 10 * time.Second

// ConstructCoordinator has data required for a new coordinator.
type ConstructCoordinator struct {
	UniqueID       string
	Location       weather.Location
	Client         weather.IProviderClient
	Cron           providers.ICronProvider
	Logger         common.ILoggerProvider
	UpdateInterval time.Duration
	RequestTimeout time.Duration
}

// Coordinator keeps the latest provider snapshot of a single location
// and refreshes it on schedule.
type Coordinator struct {
	mu        sync.RWMutex
	refreshMu sync.Mutex
	lmu       sync.Mutex

	ctor *ConstructCoordinator

	data              weather.ISensorData
	lastUpdateSuccess bool
	lastError         error
	lastUpdate        time.Time

	jobID        int
	listeners    map[int]func()
	nextListener int
}

// NewCoordinator constructs a new coordinator without any data.
func NewCoordinator(ctor *ConstructCoordinator) *Coordinator {
	if ctor.UpdateInterval <= 0 {
		ctor.UpdateInterval = gismeteo.UpdateInterval
	}

	if ctor.RequestTimeout <= 0 {
		ctor.RequestTimeout = 30 * time.Second
	}

	return &Coordinator{
		ctor:      ctor,
		data:      gismeteo.NewEmptyData(),
		listeners: make(map[int]func()),
	}
}

// UniqueID returns location unique ID.
func (c *Coordinator) UniqueID() string {
	return c.ctor.UniqueID
}

// Location returns location parameters.
func (c *Coordinator) Location() weather.Location {
	return c.ctor.Location
}

// Gismeteo returns the latest successful snapshot.
// It never blocks on I/O.
func (c *Coordinator) Gismeteo() weather.ISensorData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// LastUpdateSuccess returns whether the latest refresh succeeded.
func (c *Coordinator) LastUpdateSuccess() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdateSuccess
}

// LastError returns error of the latest refresh, if any.
func (c *Coordinator) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// LastUpdate returns time of the latest successful refresh.
func (c *Coordinator) LastUpdate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdate
}

// Refresh fetches a new snapshot. Previous snapshot is kept on failure.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.ctor.Logger.Debug("Fetching update for the location", common.LogIDToken, c.ctor.UniqueID)
	data, err := c.ctor.Client.Fetch(ctx, c.ctor.Location)

	c.mu.Lock()
	wasSuccess := c.lastUpdateSuccess
	if err != nil {
		c.lastUpdateSuccess = false
		c.lastError = err
	} else {
		c.data = data
		c.lastUpdateSuccess = true
		c.lastError = nil
		c.lastUpdate = time.Now().UTC()
	}
	c.mu.Unlock()

	if err != nil {
		if wasSuccess {
			c.ctor.Logger.Error("Failed to fetch location updates", err, common.LogIDToken, c.ctor.UniqueID)
		} else {
			c.ctor.Logger.Debug("Location is still unavailable", common.LogIDToken, c.ctor.UniqueID,
				common.LogErrorToken, err.Error())
		}

		if wasSuccess {
			c.notify()
		}

		return errors.Wrap(err, "refresh failed")
	}

	c.notify()
	return nil
}

// Start schedules periodic refresh.
func (c *Coordinator) Start() error {
	interval := c.ctor.UpdateInterval
	if interval < minUpdateInterval {
		interval = minUpdateInterval
	}

	id, err := c.ctor.Cron.AddFunc(fmt.Sprintf("@every %ds", int(interval/time.Second)), c.pullUpdate)
	if err != nil {
		c.ctor.Logger.Error("Failed to schedule location updates", err, common.LogIDToken, c.ctor.UniqueID)
		return errors.Wrap(err, "schedule failed")
	}

	c.jobID = id
	c.ctor.Logger.Debug(fmt.Sprintf("Polling rate for the location is %s", interval),
		common.LogIDToken, c.ctor.UniqueID)
	return nil
}

// Unload stops all background activities.
func (c *Coordinator) Unload() {
	if 0 != c.jobID {
		c.ctor.Cron.RemoveFunc(c.jobID)
		c.jobID = 0
	}

	c.lmu.Lock()
	c.listeners = make(map[int]func())
	c.lmu.Unlock()
}

// AddListener registers a callback invoked after every state change.
func (c *Coordinator) AddListener(f func()) common.Unsubscribe {
	c.lmu.Lock()
	defer c.lmu.Unlock()

	c.nextListener++
	id := c.nextListener
	c.listeners[id] = f

	return func() {
		c.lmu.Lock()
		defer c.lmu.Unlock()
		delete(c.listeners, id)
	}
}

// Scheduled refresh.
func (c *Coordinator) pullUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), c.ctor.RequestTimeout)
	defer cancel()

	c.Refresh(ctx) // nolint: errcheck
}

// Invokes all listeners.
func (c *Coordinator) notify() {
	c.lmu.Lock()
	callbacks := make([]func(), 0, len(c.listeners))
	for _, v := range c.listeners {
		callbacks = append(callbacks, v)
	}
	c.lmu.Unlock()

	for _, v := range callbacks {
		v()
	}
}
