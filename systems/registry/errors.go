package registry

import (
	"fmt"
	"strings"
)

// ErrMissingCoordinator has data for locations without loaded coordinators.
type ErrMissingCoordinator struct {
	Keys []string
}

func (e *ErrMissingCoordinator) Error() string {
	return fmt.Sprintf("coordinators are not loaded: %s", strings.Join(e.Keys, ", "))
}
