package smt

import (
	"errors"

	"github.com/rsmtlab/rsmt/mstengine"
)

// ErrInvalidCoord is returned by AddPin when a coordinate falls outside
// [0, gridSize).
var ErrInvalidCoord = errors.New("smt: coordinate out of range")

// ErrAlreadyFinalized is returned by AddPin once Build has already run.
var ErrAlreadyFinalized = errors.New("smt: instance already finalized")

// ErrDisconnected is mstengine.ErrDisconnected, re-exported so smt callers
// never need to import mstengine directly. spec.md §7 calls this structural:
// never expected to surface for a complete graph on ≥1 point.
var ErrDisconnected = mstengine.ErrDisconnected
