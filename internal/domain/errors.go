package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrGeometryNotFound reports that no boundary feature carries a given
	// region code. The hierarchy builder downgrades it to a null polygon so
	// one bad region never aborts a whole country import.
	ErrGeometryNotFound = errors.New("geometry not found")
)
