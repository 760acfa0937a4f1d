package settings

import "fmt"

// ErrInvalidRecord defines config record which failed validation.
type ErrInvalidRecord struct {
	System string
}

// Error formats output.
func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("%s record is invalid", e.System)
}
