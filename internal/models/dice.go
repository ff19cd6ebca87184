package models

import "fmt"

// DiceSpec describes a validated dice notation such as 3d6
type DiceSpec struct {
	// Quantity is the number of dice to roll
	Quantity int

	// Sides is the number of faces on each die
	Sides int
}

// Notation returns the canonical notation, lower-case d and no leading zeros
func (d DiceSpec) Notation() string {
	return fmt.Sprintf("%dd%d", d.Quantity, d.Sides)
}

// Path returns the navigation path for the spec
func (d DiceSpec) Path() string {
	return "/" + d.Notation()
}
