package smt_test

import (
	"fmt"

	"github.com/rsmtlab/rsmt/smt"
)

// ExampleInstance_lShape builds the rectilinear MST over three pins that
// already form an optimal L-shape, so no Steiner point is needed.
func ExampleInstance_lShape() {
	inst := smt.New(5, 3)
	inst.AddPin(0, 0)
	inst.AddPin(4, 0)
	inst.AddPin(4, 4)

	length, err := inst.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("length=%d edges=%d", length, len(inst.Edges()))
	// Output: length=8 edges=2
}

// ExampleInstance_plusShape builds the rectilinear MST over four pins
// arranged around a common center, which gains exactly one Steiner point.
func ExampleInstance_plusShape() {
	inst := smt.New(5, 4)
	inst.AddPin(0, 2)
	inst.AddPin(4, 2)
	inst.AddPin(2, 0)
	inst.AddPin(2, 4)

	length, err := inst.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("length=%d edges=%d", length, len(inst.Edges()))
	// Output: length=8 edges=4
}

func ExampleInstance_errInvalidCoord() {
	inst := smt.New(5, 1)
	err := inst.AddPin(5, 0)
	fmt.Println(err)
	// Output: AddPin(5,0): smt: coordinate out of range
}
