package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/farkle/internal/game/command"
)

func TestDefaultRegistry(t *testing.T) {
	r := command.DefaultRegistry()

	cmd, ok := r.Resolve("keep")
	require.True(t, ok)
	assert.Equal(t, command.HandlerKeepDice, cmd.Handler)

	// Every alias resolves to the same command as its canonical name.
	for _, c := range command.BuiltinCommands() {
		canonical, ok := r.Resolve(c.Name)
		require.True(t, ok, "command %q", c.Name)
		for _, alias := range c.Aliases {
			resolved, ok := r.Resolve(alias)
			require.True(t, ok, "alias %q", alias)
			assert.Same(t, canonical, resolved)
		}
	}

	_, ok = r.Resolve("frobnicate")
	assert.False(t, ok)
}

func TestRegistryCollisions(t *testing.T) {
	tests := []struct {
		name string
		cmds []command.Command
	}{
		{
			"duplicate name",
			[]command.Command{{Name: "bank"}, {Name: "bank"}},
		},
		{
			"duplicate alias",
			[]command.Command{
				{Name: "bank", Aliases: []string{"b"}},
				{Name: "bust", Aliases: []string{"b"}},
			},
		},
		{
			"alias shadows a name",
			[]command.Command{
				{Name: "bank"},
				{Name: "deposit", Aliases: []string{"bank"}},
			},
		},
		{
			"name shadows an alias",
			[]command.Command{
				{Name: "deposit", Aliases: []string{"bank"}},
				{Name: "bank"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := command.NewRegistry(tt.cmds)
			assert.Error(t, err)
		})
	}
}

func TestRegistryCommandsSorted(t *testing.T) {
	r := command.DefaultRegistry()
	cmds := r.Commands()
	require.Len(t, cmds, len(command.BuiltinCommands()))
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1].Name, cmds[i].Name)
	}
}
