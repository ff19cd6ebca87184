package models

import (
	"time"
)

// RollOutcome represents one dice roll request and its results
type RollOutcome struct {
	// ID is the unique identifier for the roll
	ID string

	// Spec is the dice that were rolled
	Spec DiceSpec

	// Notation is the canonical notation shown to the user
	Notation string

	// Rolls holds each die value in roll order
	Rolls []int

	// Sum is the total of all rolls
	Sum int

	// RolledAt is when the roll was made
	RolledAt time.Time
}

// IsSingle reports whether a single die was rolled.
// Single rolls expose the die value as the primary result, multi-die
// rolls expose every die plus the sum.
func (r *RollOutcome) IsSingle() bool {
	return len(r.Rolls) == 1
}

// Primary returns the value rendered as the primary result
func (r *RollOutcome) Primary() int {
	if r.IsSingle() {
		return r.Rolls[0]
	}
	return r.Sum
}
