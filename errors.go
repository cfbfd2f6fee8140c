package sitegraph

import (
	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

var (
	// ErrInvalidCount implies a point count was negative or above the
	// configured MaxCount. Nothing is regenerated.
	ErrInvalidCount = geom.ErrInvalidCount

	// ErrNoPoints implies a query against an empty point set.
	ErrNoPoints = geom.ErrNoPoints

	// ErrInvalidStart implies a traversal start outside [0, N).
	ErrInvalidStart = geom.ErrInvalidStart

	// ErrInvalidSpeed implies a playback speed <= 0.
	ErrInvalidSpeed = geom.ErrInvalidSpeed

	// ErrInvalidStep implies a raster sample step <= 0.
	ErrInvalidStep = geom.ErrInvalidStep

	// ErrCannotPlace implies MinDistance could not be honoured for every point.
	ErrCannotPlace = geom.ErrCannotPlace

	// ErrOptionViolation implies an option (k, max depth, rule ..) was out of range.
	ErrOptionViolation = geom.ErrOptionViolation

	// ErrInvalidConfig implies the Config could not be used as given.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownMode implies a Mode we don't know how to build.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownFormat implies an output file extension we cannot write.
	ErrUnknownFormat = errors.New("unknown output format")
)
