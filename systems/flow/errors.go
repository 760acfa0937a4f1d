package flow

import "fmt"

// ErrUnknownFlow has data for unknown flow error.
type ErrUnknownFlow struct {
	ID string
}

func (e *ErrUnknownFlow) Error() string {
	return fmt.Sprintf("flow %s not found", e.ID)
}

// ErrUnknownSource has data for unsupported flow source error.
type ErrUnknownSource struct {
	Source string
}

func (e *ErrUnknownSource) Error() string {
	return fmt.Sprintf("unsupported flow source %s", e.Source)
}
