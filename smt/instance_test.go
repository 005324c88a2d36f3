package smt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsmtlab/rsmt/point"
	"github.com/rsmtlab/rsmt/smt"
)

func TestInstance_SinglePin(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 1)
	require.NoError(inst.AddPin(2, 2))

	length, err := inst.Build()
	require.NoError(err)
	require.Equal(0, length)

	points := inst.Points()
	require.Len(points, 2)
	require.True(points[0].IsPin())

	edges := inst.Edges()
	require.Len(edges, 0)
}

func TestInstance_TwoColinearPins(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 2)
	require.NoError(inst.AddPin(0, 0))
	require.NoError(inst.AddPin(4, 0))

	length, err := inst.Build()
	require.NoError(err)
	require.Equal(4, length)

	edges := inst.Edges()
	require.Len(edges, 1)
	require.True(edges[0].IsM2())
}

func TestInstance_TwoDiagonalPinsSplitAtDocumentedCorner(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 2)
	require.NoError(inst.AddPin(0, 0))
	require.NoError(inst.AddPin(3, 2))

	length, err := inst.Build()
	require.NoError(err)
	require.Equal(5, length)

	for _, e := range inst.Edges() {
		require.False(e.IsDiagonal(), "no diagonal edge should survive finalization")
	}
}

func TestInstance_LShapeTriple(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 3)
	require.NoError(inst.AddPin(0, 0))
	require.NoError(inst.AddPin(4, 0))
	require.NoError(inst.AddPin(4, 4))

	length, err := inst.Build()
	require.NoError(err)
	require.Equal(8, length)
	require.Len(inst.Edges(), 2)
}

func TestInstance_PlusShapeQuadGainsSteinerPoint(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 4)
	require.NoError(inst.AddPin(0, 2))
	require.NoError(inst.AddPin(4, 2))
	require.NoError(inst.AddPin(2, 0))
	require.NoError(inst.AddPin(2, 4))

	length, err := inst.Build()
	require.NoError(err)
	require.Equal(8, length)
	require.Len(inst.Edges(), 4)
}

func TestInstance_SixPinSmokeNet(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 6)
	pins := [][2]int{{0, 0}, {2, 0}, {4, 0}, {1, 2}, {4, 4}, {0, 4}}
	for _, p := range pins {
		require.NoError(inst.AddPin(p[0], p[1]))
	}

	length, err := inst.Build()
	require.NoError(err)

	sum := 0
	for _, e := range inst.Edges() {
		require.False(e.IsDiagonal())
		sum += e.Length
	}
	require.Equal(length, sum, "total length must equal the sum of reported edge lengths")

	pinCount, viaCount := 0, 0
	for _, p := range inst.Points() {
		if p.IsPin() {
			pinCount++
		}
		if p.Type == point.PinsM2 {
			viaCount++
		}
	}
	require.Equal(len(pins), pinCount)
	require.Equal(len(pins), viaCount, "every pin must have exactly one Pins_M2 via")

	// idempotence: a second Build call returns the identical cached length
	// without mutating the finalized output.
	again, err := inst.Build()
	require.NoError(err)
	require.Equal(length, again)
}

func TestInstance_AddPinRejectsOutOfRangeCoord(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 1)
	err := inst.AddPin(5, 0)
	require.ErrorIs(err, smt.ErrInvalidCoord)
}

func TestInstance_AddPinRejectsAfterFinalized(t *testing.T) {
	require := require.New(t)

	inst := smt.New(5, 1)
	require.NoError(inst.AddPin(1, 1))
	_, err := inst.Build()
	require.NoError(err)

	err = inst.AddPin(2, 2)
	require.ErrorIs(err, smt.ErrAlreadyFinalized)
	require.True(errors.Is(err, smt.ErrAlreadyFinalized))
}
