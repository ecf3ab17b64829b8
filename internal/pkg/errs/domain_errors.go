package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Configuration errors
	ErrNotConfigured = errors.New("datastore not configured")

	// Availability errors
	ErrNoAvailability = errors.New("no availability for requested range")

	// Catalog errors
	ErrRoomNotFound = errors.New("room not found")
)
