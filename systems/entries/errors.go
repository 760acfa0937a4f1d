package entries

import "fmt"

// ErrEntryNotFound has data for missing entry error.
type ErrEntryNotFound struct {
	ID string
}

func (e *ErrEntryNotFound) Error() string {
	return fmt.Sprintf("entry %s not found", e.ID)
}

// ErrAlreadyConfigured has data for duplicated unique ID error.
type ErrAlreadyConfigured struct {
	UniqueID string
}

func (e *ErrAlreadyConfigured) Error() string {
	return fmt.Sprintf("location %s is already configured", e.UniqueID)
}

// ErrInvalidLocation defines location validation error.
type ErrInvalidLocation struct {
}

func (*ErrInvalidLocation) Error() string {
	return "invalid location configuration"
}
