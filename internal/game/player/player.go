// Package player tracks per-player score state for the Farkle game.
package player

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultTargetScore is the banked total required to win a game.
const DefaultTargetScore = 5000

// ErrNegativeAmount is returned when a negative point amount is added to a
// turn score.
var ErrNegativeAmount = errors.New("cannot add negative points")

// Player holds one player's name and score state.
//
// Invariant: TurnScore() and TotalScore() are never negative. A Player is
// created before the game starts and never removed once added.
type Player struct {
	name       string
	turnScore  int
	totalScore int
	target     int
	logger     *zap.Logger
}

// New creates a player with the given name and win target.
//
// Precondition: name must be non-empty (enforced by the game roster);
// target must be > 0.
func New(name string, target int, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{name: name, target: target, logger: logger}
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// TurnScore returns the unbanked score accumulated this turn.
func (p *Player) TurnScore() int { return p.turnScore }

// TotalScore returns the banked total across all turns.
func (p *Player) TotalScore() int { return p.totalScore }

// Target returns the banked total required to win.
func (p *Player) Target() int { return p.target }

// AddToTurn adds points to the current turn score and returns the new
// turn score.
//
// Postcondition: Returns ErrNegativeAmount if points < 0; on error the
// turn score is unchanged.
func (p *Player) AddToTurn(points int) (int, error) {
	if points < 0 {
		return p.turnScore, fmt.Errorf("%w: %d", ErrNegativeAmount, points)
	}
	p.turnScore += points
	p.logger.Debug("added points to turn",
		zap.String("player", p.name),
		zap.Int("points", points),
		zap.Int("turn_score", p.turnScore),
	)
	return p.turnScore, nil
}

// BankPoints commits the turn score into the total and resets the turn
// score to zero, returning the new total.
//
// Postcondition: TurnScore() == 0; TotalScore() grew by the old turn score.
func (p *Player) BankPoints() int {
	banked := p.turnScore
	p.totalScore += banked
	p.turnScore = 0
	p.logger.Info("banked points",
		zap.String("player", p.name),
		zap.Int("banked", banked),
		zap.Int("total_score", p.totalScore),
	)
	return p.totalScore
}

// ResetTurn discards the unbanked turn score. Used on bust.
//
// Postcondition: TurnScore() == 0; TotalScore() is unchanged.
func (p *Player) ResetTurn() {
	lost := p.turnScore
	p.turnScore = 0
	if lost > 0 {
		p.logger.Info("turn score lost",
			zap.String("player", p.name),
			zap.Int("lost", lost),
		)
	}
}

// HasWon reports whether the banked total has reached the win target.
func (p *Player) HasWon() bool {
	return p.totalScore >= p.target
}

// String returns a human-readable representation of the player's scores.
func (p *Player) String() string {
	return fmt.Sprintf("%s (turn: %d, total: %d)", p.name, p.turnScore, p.totalScore)
}
