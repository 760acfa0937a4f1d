package weather

// ErrNoCoordinator defines missing coordinator error during entity creation.
type ErrNoCoordinator struct {
}

func (*ErrNoCoordinator) Error() string {
	return "coordinator is required"
}
