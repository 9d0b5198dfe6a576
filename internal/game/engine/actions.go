package engine

// Action names one operation a front end may legally invoke.
type Action string

// The full set of front-end actions.
const (
	ActionAddPlayer Action = "add_player"
	ActionStartTurn Action = "start_turn"
	ActionKeepDice  Action = "keep_dice"
	ActionRollAgain Action = "roll_again"
	ActionBank      Action = "bank"
	ActionNewGame   Action = "new_game"
)

// AvailableActions reports which actions are legal in the current state.
// It is purely derived: calling it never mutates the game.
//
// Postcondition: the result is non-empty (an empty roster allows
// add_player; a finished game allows new_game).
func (g *Game) AvailableActions() []Action {
	if len(g.players) == 0 {
		return []Action{ActionAddPlayer}
	}
	if g.gameOver {
		return []Action{ActionNewGame}
	}
	if !g.turnStarted {
		actions := []Action{ActionStartTurn}
		if !g.started || g.cfg.AllowJoinBetweenTurns {
			actions = append(actions, ActionAddPlayer)
		}
		return actions
	}

	var actions []Action
	available := g.set.AvailableValues()
	if !g.fullClear && len(available) > 0 && g.calc.HasScoringDice(available) {
		actions = append(actions, ActionKeepDice)
	}
	if g.keptThisTurn {
		actions = append(actions, ActionBank, ActionRollAgain)
	}
	return actions
}
