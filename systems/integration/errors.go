package integration

import "fmt"

// ErrAlreadyLoaded has data for repeated entry setup error.
type ErrAlreadyLoaded struct {
	ID string
}

func (e *ErrAlreadyLoaded) Error() string {
	return fmt.Sprintf("entry %s is already loaded", e.ID)
}

// ErrNotLoaded has data for unload of unknown entry error.
type ErrNotLoaded struct {
	ID string
}

func (e *ErrNotLoaded) Error() string {
	return fmt.Sprintf("entry %s is not loaded", e.ID)
}
