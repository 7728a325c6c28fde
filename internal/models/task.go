package models

// Task represents a queued address awaiting coordinate resolution.
type Task struct {
	ID      int    // ID is the unique identifier for the task.
	Address string // Address is the location to be resolved.
}
