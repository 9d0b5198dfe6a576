package engine

import "errors"

// ErrGameState is returned when an operation is invalid in the current
// lifecycle phase: no players yet, game already over, or turn not started.
var ErrGameState = errors.New("invalid game state")

// ErrGameRule is returned when an operation violates a turn rule despite
// being lifecycle-valid: turn already started, or banking with no kept dice.
var ErrGameRule = errors.New("game rule violation")

// ErrInvalidMove is returned when an operation references invalid dice:
// an empty selection, a bad index, an already-kept die, or a selection
// that does not score.
var ErrInvalidMove = errors.New("invalid move")

// ErrDuplicateName is returned when a player name is already taken.
var ErrDuplicateName = errors.New("duplicate player name")
