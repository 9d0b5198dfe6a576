package dice

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultCount is the number of dice in a standard Farkle set.
const DefaultCount = 6

// ErrIndexOutOfRange is returned when a die index is outside [0, Len).
var ErrIndexOutOfRange = errors.New("die index out of range")

// ErrAlreadyKept is returned when a keep targets a die that is already kept.
var ErrAlreadyKept = errors.New("die already kept")

// Set is a fixed-size arena of dice addressed by stable integer position.
//
// Invariant: the number of dice is fixed for the Set's lifetime; dice are
// rerolled in place, never replaced. Set is not safe for concurrent use;
// callers needing concurrency must serialize externally (see session.Manager).
type Set struct {
	dice   []*Die
	src    Source
	logger *zap.Logger
}

// NewSet creates a set of count dice, each rolled once from src.
//
// Precondition: count must be >= 1; src must be non-nil.
// Postcondition: Len() == count; every die is available.
func NewSet(count int, src Source, logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	dice := make([]*Die, count)
	for i := range dice {
		dice[i] = NewDie(src)
	}
	s := &Set{dice: dice, src: src, logger: logger}
	s.logger.Debug("dice set created", zap.Int("count", count), zap.Ints("values", s.Values()))
	return s
}

// Len returns the fixed number of dice in the set.
func (s *Set) Len() int { return len(s.dice) }

// Die returns the die at position idx.
//
// Postcondition: Returns ErrIndexOutOfRange if idx is not in [0, Len).
func (s *Set) Die(idx int) (*Die, error) {
	if idx < 0 || idx >= len(s.dice) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	return s.dice[idx], nil
}

// Values returns the face values of all dice, in position order.
func (s *Set) Values() []int {
	values := make([]int, len(s.dice))
	for i, d := range s.dice {
		values[i] = d.Value()
	}
	return values
}

// KeptValues returns the face values of all kept dice, in position order.
func (s *Set) KeptValues() []int {
	var values []int
	for _, d := range s.dice {
		if d.Kept() {
			values = append(values, d.Value())
		}
	}
	return values
}

// AvailableValues returns the face values of all available dice, in
// position order.
func (s *Set) AvailableValues() []int {
	var values []int
	for _, d := range s.dice {
		if !d.Kept() {
			values = append(values, d.Value())
		}
	}
	return values
}

// KeptIndices returns the positions of all kept dice, ascending.
func (s *Set) KeptIndices() []int {
	var indices []int
	for i, d := range s.dice {
		if d.Kept() {
			indices = append(indices, i)
		}
	}
	return indices
}

// AvailableIndices returns the positions of all available dice, ascending.
func (s *Set) AvailableIndices() []int {
	var indices []int
	for i, d := range s.dice {
		if !d.Kept() {
			indices = append(indices, i)
		}
	}
	return indices
}

// RollAll rolls every die and releases all kept flags. Used at the start of
// a turn and after a full clear.
//
// Postcondition: every die is available; returns the new values in
// position order.
func (s *Set) RollAll() []int {
	for _, d := range s.dice {
		d.Roll(s.src)
		d.Release()
	}
	values := s.Values()
	s.logger.Debug("rolled all dice", zap.Ints("values", values))
	return values
}

// RollAvailable rolls only the dice that are not kept.
//
// Postcondition: if every die is kept, returns an empty slice and performs
// no mutation; callers must detect this state and release before rolling.
func (s *Set) RollAvailable() []int {
	var values []int
	for _, d := range s.dice {
		if !d.Kept() {
			values = append(values, d.Roll(s.src))
		}
	}
	if values == nil {
		s.logger.Debug("roll available skipped, all dice kept")
		return []int{}
	}
	s.logger.Debug("rolled available dice", zap.Ints("values", values))
	return values
}

// Keep marks the dice at the given positions as kept.
//
// All indices are validated before any mutation: the operation either keeps
// every requested die or none.
//
// Postcondition: Returns ErrIndexOutOfRange if any index is not in [0, Len),
// or ErrAlreadyKept if any targeted die is already kept; on error no die
// changes state.
func (s *Set) Keep(indices []int) error {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.dice) {
			return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
		}
		if s.dice[idx].Kept() || seen[idx] {
			return fmt.Errorf("%w: index %d", ErrAlreadyKept, idx)
		}
		seen[idx] = true
	}
	for _, idx := range indices {
		s.dice[idx].Keep()
	}
	s.logger.Debug("kept dice", zap.Ints("indices", indices))
	return nil
}

// KeepValue marks every available die showing value as kept and returns
// the positions that were newly kept.
//
// Postcondition: the returned indices are ascending; empty when no
// available die shows value.
func (s *Set) KeepValue(value int) []int {
	var kept []int
	for i, d := range s.dice {
		if !d.Kept() && d.Value() == value {
			d.Keep()
			kept = append(kept, i)
		}
	}
	if kept != nil {
		s.logger.Debug("kept dice by value", zap.Int("value", value), zap.Ints("indices", kept))
	}
	return kept
}

// ReleaseAll clears the kept flag on every die.
func (s *Set) ReleaseAll() {
	for _, d := range s.dice {
		d.Release()
	}
	s.logger.Debug("released all dice")
}

// AllKept reports whether every die in the set is kept (a full clear).
func (s *Set) AllKept() bool {
	for _, d := range s.dice {
		if !d.Kept() {
			return false
		}
	}
	return true
}
