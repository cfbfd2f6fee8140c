package geom

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCount is returned when a requested point count is negative
	// or above the configured maximum.
	ErrInvalidCount = errors.New("invalid point count")

	// ErrNoPoints is returned when a query is made against an empty point set.
	ErrNoPoints = errors.New("no points")

	// ErrInvalidStart is returned when a traversal start index is outside [0, N).
	ErrInvalidStart = errors.New("invalid traversal start")

	// ErrInvalidSpeed is returned when a playback speed is not positive.
	ErrInvalidSpeed = errors.New("invalid playback speed")

	// ErrInvalidStep is returned when a sampling step is not positive.
	ErrInvalidStep = errors.New("invalid sample step")

	// ErrOptionViolation is returned when an option is given a value it
	// cannot take (ie. k <= 0 neighbours, a negative max depth).
	ErrOptionViolation = errors.New("option violation")

	// ErrCannotPlace implies the generator's filters rejected every candidate
	// for a point.
	ErrCannotPlace = errors.New("failed to place point within configured filters")
)
