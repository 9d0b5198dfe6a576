// Package command provides the command registry, parser, and built-in
// command definitions for the interactive dice game front end.
package command

// Handler identifiers mapping commands to front-end handlers.
const (
	HandlerAddPlayer = "add_player"
	HandlerStartTurn = "start_turn"
	HandlerKeepDice  = "keep_dice"
	HandlerRollAgain = "roll_again"
	HandlerBank      = "bank"
	HandlerState     = "state"
	HandlerActions   = "actions"
	HandlerScore     = "score"
	HandlerNewGame   = "new_game"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage is the argument signature shown in help, e.g. "keep <idx>...".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Handler maps to the front-end handler.
	Handler string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "add", Aliases: []string{"player"}, Usage: "add <name>", Help: "Add a player to the game", Handler: HandlerAddPlayer},
		{Name: "start", Aliases: []string{"turn"}, Usage: "start", Help: "Start the current player's turn", Handler: HandlerStartTurn},
		{Name: "keep", Aliases: []string{"k"}, Usage: "keep <idx>...", Help: "Set aside the dice at the given positions (0-based)", Handler: HandlerKeepDice},
		{Name: "roll", Aliases: []string{"r", "reroll"}, Usage: "roll", Help: "Reroll the available dice", Handler: HandlerRollAgain},
		{Name: "bank", Aliases: []string{"b"}, Usage: "bank", Help: "Bank the turn score and end the turn", Handler: HandlerBank},
		{Name: "state", Aliases: []string{"st", "show"}, Usage: "state", Help: "Show players, scores, and dice", Handler: HandlerState},
		{Name: "actions", Aliases: []string{"a"}, Usage: "actions", Help: "List the legal actions right now", Handler: HandlerActions},
		{Name: "score", Aliases: []string{"sc"}, Usage: "score <value>...", Help: "Explain what a set of dice values would score", Handler: HandlerScore},
		{Name: "new", Aliases: nil, Usage: "new", Help: "Start a new game after this one ends", Handler: HandlerNewGame},
		{Name: "help", Aliases: []string{"h", "?"}, Usage: "help", Help: "Show this help text", Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"q", "exit"}, Usage: "quit", Help: "Leave the game", Handler: HandlerQuit},
	}
}
