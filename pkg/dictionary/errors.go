package dictionary

import "errors"

var (
	// ErrEmptySourceName is returned when a source has no name.
	ErrEmptySourceName = errors.New("empty source name")

	// ErrSourceExists is returned when adding a source whose name is taken.
	ErrSourceExists = errors.New("source already exists")

	// ErrSourceNotFound is returned when no source has the given name.
	ErrSourceNotFound = errors.New("source not found")
)
