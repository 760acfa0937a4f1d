package enums

import "fmt"

// ErrUnknownValue defines unknown enumeration value.
type ErrUnknownValue struct {
	Kind  string
	Value string
}

// Error formats output.
func (e *ErrUnknownValue) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.Value)
}
