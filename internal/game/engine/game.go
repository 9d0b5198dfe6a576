// Package engine implements the Farkle turn state machine: player roster
// and rotation, the keep/roll loop, banking, and busting.
package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/farkle/internal/game/dice"
	"github.com/cory-johannsen/farkle/internal/game/player"
	"github.com/cory-johannsen/farkle/internal/game/scoring"
)

// Config holds the game parameters supplied by the caller. Zero fields are
// replaced with defaults, so an empty Config is a playable game.
type Config struct {
	// DiceCount is the number of dice in the set (default 6).
	DiceCount int
	// TargetScore is the banked total required to win (default 5000).
	TargetScore int
	// Rules are the scoring point values (default DefaultRules).
	Rules scoring.Rules
	// AllowJoinBetweenTurns permits AddPlayer between completed turns.
	// When false, joining is blocked once the first turn has begun.
	AllowJoinBetweenTurns bool
}

// withDefaults fills unset Config fields.
func (c Config) withDefaults() Config {
	if c.DiceCount <= 0 {
		c.DiceCount = dice.DefaultCount
	}
	if c.TargetScore <= 0 {
		c.TargetScore = player.DefaultTargetScore
	}
	if c.Rules.Triples == nil {
		c.Rules = scoring.DefaultRules()
	}
	return c
}

// Game is the turn state machine for a single Farkle session.
//
// Invariant: currentIdx is valid iff the roster is non-empty; no turn
// action is accepted once the game is over. Game is single-writer and not
// safe for concurrent use; callers needing concurrency must serialize
// externally (see session.Manager).
type Game struct {
	cfg     Config
	players []*player.Player
	// currentIdx is the roster position of the player whose turn it is.
	currentIdx int
	set        *dice.Set
	calc       *scoring.Calculator
	// started is true once any turn has begun in this game.
	started     bool
	turnStarted bool
	gameOver    bool
	// keptThisTurn is true once the current player has kept any dice.
	// Banking requires it; a full clear releases every die but the keep
	// still happened, so the dice set alone cannot answer this.
	keptThisTurn bool
	// fullClear is true when every die was kept and released; the dice
	// must be rerolled before anything can be kept again, otherwise the
	// same faces would score twice.
	fullClear bool
	logger    *zap.Logger
}

// NewGame creates a game with no players.
//
// Precondition: src must be non-nil.
// Postcondition: the game accepts AddPlayer; no turn is in progress.
func NewGame(cfg Config, src dice.Source, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()
	g := &Game{
		cfg:    cfg,
		set:    dice.NewSet(cfg.DiceCount, src, logger),
		calc:   scoring.NewCalculator(cfg.Rules),
		logger: logger,
	}
	g.logger.Info("new game initialized",
		zap.Int("dice_count", cfg.DiceCount),
		zap.Int("target_score", cfg.TargetScore),
	)
	return g
}

// Players returns the roster in turn order.
func (g *Game) Players() []*player.Player {
	out := make([]*player.Player, len(g.players))
	copy(out, g.players)
	return out
}

// CurrentPlayer returns the player whose turn it is, or nil when the
// roster is empty.
func (g *Game) CurrentPlayer() *player.Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.currentIdx]
}

// IsOver reports whether the game has been won.
func (g *Game) IsOver() bool { return g.gameOver }

// TurnStarted reports whether a turn is currently in progress.
func (g *Game) TurnStarted() bool { return g.turnStarted }

// AddPlayer adds a player with the given name to the roster.
//
// Joining is blocked while a turn is in progress, and once the first
// turn has begun unless AllowJoinBetweenTurns is set.
//
// Postcondition: Returns ErrGameState when joining is not allowed in the
// current phase, ErrDuplicateName on a case-sensitive name collision, or
// a validation error for an empty name.
func (g *Game) AddPlayer(name string) (*player.Player, error) {
	if name == "" {
		return nil, errors.New("player name must not be empty")
	}
	if g.gameOver {
		return nil, fmt.Errorf("%w: game is already over", ErrGameState)
	}
	if g.turnStarted {
		return nil, fmt.Errorf("%w: cannot add players while a turn is in progress", ErrGameState)
	}
	if g.started && !g.cfg.AllowJoinBetweenTurns {
		return nil, fmt.Errorf("%w: cannot add players after the game has started", ErrGameState)
	}
	for _, p := range g.players {
		if p.Name() == name {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	p := player.New(name, g.cfg.TargetScore, g.logger)
	g.players = append(g.players, p)
	g.logger.Info("player added", zap.String("player", name))
	return p, nil
}

// StartTurn begins a turn for the current player by rolling all dice.
// If the fresh roll contains no scoring dice the turn busts immediately
// and the rolled values are still returned.
//
// Postcondition: Returns ErrGameState when the roster is empty or the game
// is over, or ErrGameRule when a turn is already in progress.
func (g *Game) StartTurn() ([]int, error) {
	if len(g.players) == 0 {
		return nil, fmt.Errorf("%w: cannot start a turn with no players", ErrGameState)
	}
	if g.gameOver {
		return nil, fmt.Errorf("%w: game is already over", ErrGameState)
	}
	if g.turnStarted {
		return nil, fmt.Errorf("%w: turn has already started", ErrGameRule)
	}

	g.started = true
	g.turnStarted = true
	g.keptThisTurn = false
	g.fullClear = false
	values := g.set.RollAll()

	current := g.CurrentPlayer()
	if !g.calc.HasScoringDice(values) {
		g.logger.Info("player busted on initial roll",
			zap.String("player", current.Name()),
			zap.Ints("values", values),
		)
		g.bust()
		return values, nil
	}

	g.logger.Info("turn started",
		zap.String("player", current.Name()),
		zap.Ints("values", values),
	)
	return values, nil
}

// KeepDice sets aside the dice at the given positions, scores exactly the
// newly kept values, adds the score to the current player's turn score,
// and returns the increment. A keep that leaves every die kept is a full
// clear: all dice are released so the next roll uses the whole set, with
// the accumulated score preserved in the turn score.
//
// The whole selection is validated before any die changes state: every
// index must be in range, target an available die, and belong to a scoring
// combination among the currently-available values, and the selected
// values must score more than zero points.
//
// Postcondition: Returns ErrGameState when no turn is in progress or the
// game is over, or ErrInvalidMove when the selection is invalid; on error
// no state changes.
func (g *Game) KeepDice(indices []int) (int, error) {
	if !g.turnStarted {
		return 0, fmt.Errorf("%w: turn has not started", ErrGameState)
	}
	if g.gameOver {
		return 0, fmt.Errorf("%w: game is already over", ErrGameState)
	}
	if len(indices) == 0 {
		return 0, fmt.Errorf("%w: no dice selected to keep", ErrInvalidMove)
	}
	if g.fullClear {
		return 0, fmt.Errorf("%w: dice must be rerolled after a full clear", ErrInvalidMove)
	}

	// Map set positions to positions within the available-values list so
	// the selection can be checked against the calculator's scorable set.
	availableValues := g.set.AvailableValues()
	availablePos := make(map[int]int, len(availableValues))
	for pos, idx := range g.set.AvailableIndices() {
		availablePos[idx] = pos
	}
	scorable := g.calc.ScorableIndices(availableValues)

	selected := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		d, err := g.set.Die(idx)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidMove, err)
		}
		if d.Kept() || seen[idx] {
			return 0, fmt.Errorf("%w: die at index %d is already kept", ErrInvalidMove, idx)
		}
		seen[idx] = true
		if !scorable[availablePos[idx]] {
			return 0, fmt.Errorf("%w: die at index %d does not score", ErrInvalidMove, idx)
		}
		selected = append(selected, d.Value())
	}

	score := g.calc.Calculate(selected)
	if score == 0 {
		return 0, fmt.Errorf("%w: cannot keep non-scoring dice", ErrInvalidMove)
	}

	if err := g.set.Keep(indices); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}

	current := g.CurrentPlayer()
	if _, err := current.AddToTurn(score); err != nil {
		return 0, err
	}
	g.keptThisTurn = true

	g.logger.Info("dice kept",
		zap.String("player", current.Name()),
		zap.Ints("indices", indices),
		zap.Int("score", score),
	)

	if g.set.AllKept() {
		g.logger.Info("full clear, all dice released",
			zap.String("player", current.Name()),
		)
		g.set.ReleaseAll()
		g.fullClear = true
	}

	return score, nil
}

// RollAgain rolls the available dice. If a full clear left no available
// dice, every die is released first so the whole set rolls. If the
// resulting available values contain no scoring combination the turn
// busts, and the rolled values are returned as evidence.
//
// Postcondition: Returns ErrGameState when no turn is in progress or the
// game is over.
func (g *Game) RollAgain() ([]int, error) {
	if !g.turnStarted {
		return nil, fmt.Errorf("%w: turn has not started", ErrGameState)
	}
	if g.gameOver {
		return nil, fmt.Errorf("%w: game is already over", ErrGameState)
	}

	if g.set.AllKept() {
		g.set.ReleaseAll()
	}
	g.fullClear = false
	values := g.set.RollAvailable()

	current := g.CurrentPlayer()
	if !g.calc.HasScoringDice(g.set.AvailableValues()) {
		g.logger.Info("player busted on reroll",
			zap.String("player", current.Name()),
			zap.Ints("values", values),
		)
		g.bust()
		return values, nil
	}

	g.logger.Info("rolled again",
		zap.String("player", current.Name()),
		zap.Ints("values", values),
	)
	return values, nil
}

// Bank commits the current player's turn score into their total and ends
// the turn. A bank that reaches the target score ends the game with the
// winner left as the current player; otherwise the turn rotates to the
// next player.
//
// Postcondition: Returns ErrGameState when no turn is in progress or the
// game is over, or ErrGameRule when nothing has been kept this turn.
func (g *Game) Bank() (int, error) {
	if !g.turnStarted {
		return 0, fmt.Errorf("%w: turn has not started", ErrGameState)
	}
	if g.gameOver {
		return 0, fmt.Errorf("%w: game is already over", ErrGameState)
	}
	if !g.keptThisTurn {
		return 0, fmt.Errorf("%w: cannot bank without keeping any dice", ErrGameRule)
	}

	current := g.CurrentPlayer()
	total := current.BankPoints()

	if current.HasWon() {
		g.gameOver = true
		g.turnStarted = false
		g.keptThisTurn = false
		g.fullClear = false
		g.set.ReleaseAll()
		g.logger.Info("game over",
			zap.String("winner", current.Name()),
			zap.Int("total_score", total),
		)
		return total, nil
	}

	g.endTurn()
	return total, nil
}

// bust discards the current player's turn score and ends the turn.
// Triggered by StartTurn and RollAgain when a roll has no scoring dice;
// never invoked by external callers.
func (g *Game) bust() {
	if current := g.CurrentPlayer(); current != nil {
		current.ResetTurn()
	}
	g.endTurn()
}

// endTurn closes the current turn and rotates to the next player.
//
// Postcondition: turnStarted is false, every die is released, and the
// current player index has advanced by one modulo the roster size.
func (g *Game) endTurn() {
	g.turnStarted = false
	g.keptThisTurn = false
	g.fullClear = false
	g.set.ReleaseAll()
	if len(g.players) == 0 {
		return
	}
	g.currentIdx = (g.currentIdx + 1) % len(g.players)
	g.logger.Info("turn ended",
		zap.String("next_player", g.CurrentPlayer().Name()),
	)
}
