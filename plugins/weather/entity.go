package weather

import (
	"github.com/iredun/ha-gismeteo/plugins/common"
)

// Manufacturer shown in the device info.
const Manufacturer = "Gismeteo"

// EntityBase keeps coordinator binding shared by all entities.
type EntityBase struct {
	Coordinator  IDataSource
	LocationName string
}

// Available returns whether the latest coordinator refresh succeeded.
func (e *EntityBase) Available() bool {
	return e.Coordinator.LastUpdateSuccess()
}

// AddListener subscribes to the coordinator updates.
func (e *EntityBase) AddListener(f func()) common.Unsubscribe {
	return e.Coordinator.AddListener(f)
}

// Data returns the latest coordinator snapshot.
func (e *EntityBase) Data() ISensorData {
	return e.Coordinator.Gismeteo()
}

// DeviceInfo returns information about the location device.
func (e *EntityBase) DeviceInfo() map[string]interface{} {
	return map[string]interface{}{
		"identifiers":  []string{common.Domain, e.Coordinator.UniqueID()},
		"name":         e.LocationName,
		"manufacturer": Manufacturer,
		"entry_type":   "service",
	}
}
