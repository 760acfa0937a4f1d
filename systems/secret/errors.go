package secret

import "fmt"

// ErrNotFound defines missing secret error.
type ErrNotFound struct {
	Name string
}

// Error formats output.
func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("secret %s is not found", e.Name)
}
