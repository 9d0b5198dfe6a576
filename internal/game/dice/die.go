// Package dice provides the six-sided dice primitives and the randomness
// abstraction for the Farkle rules engine.
package dice

import (
	"errors"
	"fmt"
)

// Sides is the number of faces on every die in the game.
const Sides = 6

// ErrValueOutOfRange is returned when a die is constructed with a face value
// outside [1, Sides].
var ErrValueOutOfRange = errors.New("die value out of range")

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Die is a single six-sided die with a face value and a kept flag.
//
// Invariant: Value() is always in [1, Sides]. A Die is owned exclusively by
// its Set and is rerolled, never recreated, for the lifetime of the Set.
type Die struct {
	value int
	kept  bool
}

// NewDie creates a die with a random starting value drawn from src.
//
// Precondition: src must be non-nil.
// Postcondition: Value() is in [1, Sides]; Kept() is false.
func NewDie(src Source) *Die {
	d := &Die{}
	d.Roll(src)
	return d
}

// NewDieWithValue creates a die with an explicit starting value.
//
// Postcondition: Returns ErrValueOutOfRange if value is not in [1, Sides].
func NewDieWithValue(value int) (*Die, error) {
	if value < 1 || value > Sides {
		return nil, fmt.Errorf("%w: %d", ErrValueOutOfRange, value)
	}
	return &Die{value: value}, nil
}

// Value returns the current face value.
func (d *Die) Value() int { return d.value }

// Kept reports whether the die is currently set aside.
func (d *Die) Kept() bool { return d.kept }

// Roll assigns a uniformly random value in [1, Sides] and returns it.
// The kept flag is not consulted here; the owning Set only rolls
// available dice during partial rerolls.
//
// Postcondition: Value() is in [1, Sides].
func (d *Die) Roll(src Source) int {
	d.value = src.Intn(Sides) + 1
	return d.value
}

// Keep marks the die as set aside. Idempotent.
func (d *Die) Keep() { d.kept = true }

// Release marks the die as available for rerolling. Idempotent.
func (d *Die) Release() { d.kept = false }

// String returns a human-readable representation, e.g. "5 (kept)".
func (d *Die) String() string {
	status := "available"
	if d.kept {
		status = "kept"
	}
	return fmt.Sprintf("%d (%s)", d.value, status)
}
