package gismeteo

import "fmt"

// ErrBadStatus defines unexpected HTTP status.
type ErrBadStatus struct {
	Code int
}

// Error formats output.
func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// ErrAPI defines error reported inside API envelope.
type ErrAPI struct {
	Code    string
	Message string
}

// Error formats output.
func (e *ErrAPI) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// ErrCircuitOpen defines provider temporarily disabled after failures.
type ErrCircuitOpen struct {
}

// Error formats output.
func (*ErrCircuitOpen) Error() string {
	return "circuit breaker open"
}

// ErrEmptyResponse defines response without data.
type ErrEmptyResponse struct {
}

// Error formats output.
func (*ErrEmptyResponse) Error() string {
	return "provider returned no data"
}
