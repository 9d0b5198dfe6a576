package engine

// PlayerState is a read-only view of one player's scores.
type PlayerState struct {
	Name       string `json:"name"`
	TurnScore  int    `json:"turn_score"`
	TotalScore int    `json:"total_score"`
}

// DieState is a read-only view of one die.
type DieState struct {
	Value int  `json:"value"`
	Kept  bool `json:"kept"`
}

// Snapshot is a read-only copy of the full game state for rendering.
// Mutating a Snapshot has no effect on the game.
type Snapshot struct {
	Players       []PlayerState `json:"players"`
	CurrentPlayer string        `json:"current_player"`
	Dice          []DieState    `json:"dice"`
	TurnStarted   bool          `json:"turn_started"`
	GameOver      bool          `json:"game_over"`
}

// Snapshot returns the current game state for rendering.
//
// Postcondition: the returned value shares no mutable state with the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Players:     make([]PlayerState, len(g.players)),
		Dice:        make([]DieState, g.set.Len()),
		TurnStarted: g.turnStarted,
		GameOver:    g.gameOver,
	}
	for i, p := range g.players {
		snap.Players[i] = PlayerState{
			Name:       p.Name(),
			TurnScore:  p.TurnScore(),
			TotalScore: p.TotalScore(),
		}
	}
	if current := g.CurrentPlayer(); current != nil {
		snap.CurrentPlayer = current.Name()
	}
	for i := 0; i < g.set.Len(); i++ {
		d, _ := g.set.Die(i)
		snap.Dice[i] = DieState{Value: d.Value(), Kept: d.Kept()}
	}
	return snap
}
