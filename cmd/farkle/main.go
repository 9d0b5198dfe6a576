// Package main provides the interactive command-line front end for the
// Farkle dice game. It is thin plumbing: every decision belongs to the
// game core, and every core error is reported and play continues.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/farkle/internal/config"
	"github.com/cory-johannsen/farkle/internal/game/command"
	"github.com/cory-johannsen/farkle/internal/game/dice"
	"github.com/cory-johannsen/farkle/internal/game/engine"
	"github.com/cory-johannsen/farkle/internal/game/scoring"
	"github.com/cory-johannsen/farkle/internal/game/session"
	"github.com/cory-johannsen/farkle/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (empty = defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	rules := cfg.Game.Rules()
	if cfg.Game.RulesPreset != "" {
		presets, err := scoring.LoadPresetsFromDir(cfg.Game.RulesDir)
		if err != nil {
			logger.Fatal("loading rules presets", zap.Error(err))
		}
		preset, ok := presets[cfg.Game.RulesPreset]
		if !ok {
			logger.Fatal("unknown rules preset", zap.String("preset", cfg.Game.RulesPreset))
		}
		rules = preset.Rules
		logger.Info("rules preset applied", zap.String("preset", preset.Name))
	}

	engineCfg := engine.Config{
		DiceCount:             cfg.Game.DiceCount,
		TargetScore:           cfg.Game.MaxScore,
		Rules:                 rules,
		AllowJoinBetweenTurns: cfg.Game.AllowJoinBetweenTurns,
	}

	manager := session.NewManager(engineCfg, dice.NewCryptoSource(), logger)
	sess := manager.Create()
	calc := scoring.NewCalculator(rules)
	registry := command.DefaultRegistry()

	fmt.Println("Farkle. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		parsed := command.Parse(scanner.Text())
		if parsed.Command == "" {
			continue
		}
		cmd, ok := registry.Resolve(parsed.Command)
		if !ok {
			fmt.Printf("unknown command %q, type 'help'\n", parsed.Command)
			continue
		}
		if cmd.Handler == command.HandlerQuit {
			fmt.Println("goodbye")
			return
		}
		if err := dispatch(cmd, parsed.Args, manager, sess, calc, registry); err != nil {
			fmt.Println("error:", err)
		}
	}
}

// dispatch maps a resolved command to a game operation and renders the
// result. Game errors are returned for display, never fatal.
func dispatch(cmd *command.Command, args []string, manager *session.Manager, sess *session.Session, calc *scoring.Calculator, registry *command.Registry) error {
	switch cmd.Handler {
	case command.HandlerAddPlayer:
		if len(args) != 1 {
			return fmt.Errorf("usage: %s", cmd.Usage)
		}
		return sess.Do(func(g *engine.Game) error {
			p, err := g.AddPlayer(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("added player %s\n", p.Name())
			return nil
		})

	case command.HandlerStartTurn:
		return sess.Do(func(g *engine.Game) error {
			values, err := g.StartTurn()
			if err != nil {
				return err
			}
			fmt.Printf("rolled %v\n", values)
			if !g.TurnStarted() {
				fmt.Println("bust! no scoring dice, turn passes")
			}
			return nil
		})

	case command.HandlerKeepDice:
		indices, err := command.IntArgs(args)
		if err != nil {
			return err
		}
		return sess.Do(func(g *engine.Game) error {
			score, err := g.KeepDice(indices)
			if err != nil {
				return err
			}
			fmt.Printf("+%d points (turn total %d)\n", score, g.CurrentPlayer().TurnScore())
			return nil
		})

	case command.HandlerRollAgain:
		return sess.Do(func(g *engine.Game) error {
			values, err := g.RollAgain()
			if err != nil {
				return err
			}
			fmt.Printf("rolled %v\n", values)
			if !g.TurnStarted() {
				fmt.Println("bust! no scoring dice, turn score lost")
			}
			return nil
		})

	case command.HandlerBank:
		return sess.Do(func(g *engine.Game) error {
			total, err := g.Bank()
			if err != nil {
				return err
			}
			fmt.Printf("banked: total %d\n", total)
			if g.IsOver() {
				fmt.Printf("game over! %s wins\n", g.CurrentPlayer().Name())
			}
			return nil
		})

	case command.HandlerState:
		return sess.Do(func(g *engine.Game) error {
			renderState(g.Snapshot())
			return nil
		})

	case command.HandlerActions:
		return sess.Do(func(g *engine.Game) error {
			actions := g.AvailableActions()
			names := make([]string, len(actions))
			for i, a := range actions {
				names[i] = string(a)
			}
			fmt.Println("available:", strings.Join(names, ", "))
			return nil
		})

	case command.HandlerScore:
		values, err := command.IntArgs(args)
		if err != nil {
			return err
		}
		combos := calc.Combinations(values)
		if len(combos) == 0 {
			fmt.Println("no scoring combinations")
			return nil
		}
		for _, combo := range combos {
			fmt.Printf("  %-16s %d\n", combo.Name, combo.Score)
		}
		fmt.Printf("total: %d\n", calc.Calculate(values))
		return nil

	case command.HandlerNewGame:
		if err := manager.Reset(sess.ID); err != nil {
			return err
		}
		fmt.Println("new game: add players to begin")
		return nil

	case command.HandlerHelp:
		for _, c := range registry.Commands() {
			alias := ""
			if len(c.Aliases) > 0 {
				alias = " (" + strings.Join(c.Aliases, ", ") + ")"
			}
			fmt.Printf("  %-18s %s%s\n", c.Usage, c.Help, alias)
		}
		return nil
	}
	return fmt.Errorf("unhandled command %q", cmd.Name)
}

// renderState prints a snapshot in a fixed-width layout.
func renderState(snap engine.Snapshot) {
	for _, p := range snap.Players {
		marker := "  "
		if p.Name == snap.CurrentPlayer {
			marker = "→ "
		}
		fmt.Printf("%s%-12s turn %5d  total %5d\n", marker, p.Name, p.TurnScore, p.TotalScore)
	}
	if len(snap.Dice) > 0 {
		fmt.Print("dice:")
		for i, d := range snap.Dice {
			kept := ""
			if d.Kept {
				kept = "*"
			}
			fmt.Printf("  [%d]=%d%s", i, d.Value, kept)
		}
		fmt.Println()
	}
	switch {
	case snap.GameOver:
		fmt.Println("game over")
	case snap.TurnStarted:
		fmt.Println("turn in progress (* = kept)")
	default:
		fmt.Println("waiting for start")
	}
}
