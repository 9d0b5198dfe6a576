package scoring_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/farkle/internal/game/scoring"
)

const kcdPreset = `
rules:
  name: kcd
  straight: 1500
  three_pairs: 1000
  triples:
    1: 1000
    2: 200
`

// TestLoadPresetFromBytes verifies parsing, defaulting, and overrides.
func TestLoadPresetFromBytes(t *testing.T) {
	preset, err := scoring.LoadPresetFromBytes([]byte(kcdPreset))
	require.NoError(t, err)

	assert.Equal(t, "kcd", preset.Name)
	assert.Equal(t, 1500, preset.Rules.Straight)
	assert.Equal(t, 1000, preset.Rules.Triples[1])
	assert.Equal(t, 200, preset.Rules.Triples[2])
	// Unset fields fall back to defaults.
	assert.Equal(t, 100, preset.Rules.SingleOne)
	assert.Equal(t, 600, preset.Rules.Triples[6])
	assert.Equal(t, 4, preset.Rules.Multipliers[6])
}

// TestLoadPresetFromBytes_Invalid covers schema violations.
func TestLoadPresetFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "rules:\n  straight: 1500\n"},
		{"face out of range", "rules:\n  name: bad\n  triples:\n    7: 100\n"},
		{"negative triple", "rules:\n  name: bad\n  triples:\n    2: -5\n"},
		{"bad multiplier tier", "rules:\n  name: bad\n  multipliers:\n    3: 2\n"},
		{"zero multiplier", "rules:\n  name: bad\n  multipliers:\n    4: 0\n"},
		{"not yaml", "rules: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.LoadPresetFromBytes([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

// TestLoadPresetsFromDir verifies directory loading and duplicate names.
func TestLoadPresetsFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kcd.yaml"), []byte(kcdPreset), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.yml"),
		[]byte("rules:\n  name: short\n  straight: 500\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	presets, err := scoring.LoadPresetsFromDir(dir)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, 500, presets["short"].Rules.Straight)

	// A second file reusing a preset name is an error.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.yaml"),
		[]byte("rules:\n  name: short\n"), 0o644))
	_, err = scoring.LoadPresetsFromDir(dir)
	assert.ErrorContains(t, err, "duplicate rules preset")
}
