package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	// Slot loads never surface it; it is internal to store implementations.
	ErrNotFound = errors.New("persistence: not found")
	// ErrCorruptSlot is returned when a stored slot value cannot be decoded.
	ErrCorruptSlot = errors.New("persistence: corrupt slot value")
)
