package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/farkle/internal/game/dice"
)

// scriptedSrc returns queued face values (1-based) and falls back to face
// 1 when the queue is empty. It lets tests drive exact rolls through the
// Source interface.
type scriptedSrc struct {
	faces []int
}

func (s *scriptedSrc) push(faces ...int) { s.faces = append(s.faces, faces...) }

func (s *scriptedSrc) Intn(n int) int {
	if len(s.faces) == 0 {
		return 0
	}
	f := s.faces[0]
	s.faces = s.faces[1:]
	return (f - 1) % n
}

// TestNewDieWithValue verifies the value range invariant on construction.
func TestNewDieWithValue(t *testing.T) {
	for v := 1; v <= 6; v++ {
		d, err := dice.NewDieWithValue(v)
		require.NoError(t, err)
		assert.Equal(t, v, d.Value())
		assert.False(t, d.Kept())
	}

	for _, v := range []int{0, -1, 7, 100} {
		_, err := dice.NewDieWithValue(v)
		assert.ErrorIs(t, err, dice.ErrValueOutOfRange, "value %d", v)
	}
}

// TestDie_KeepRelease verifies the kept flag toggles and is idempotent.
func TestDie_KeepRelease(t *testing.T) {
	d, err := dice.NewDieWithValue(3)
	require.NoError(t, err)

	d.Keep()
	assert.True(t, d.Kept())
	d.Keep()
	assert.True(t, d.Kept(), "Keep is idempotent")

	d.Release()
	assert.False(t, d.Kept())
	d.Release()
	assert.False(t, d.Kept(), "Release is idempotent")
}

// TestDie_Roll_Property verifies the value invariant holds for any Source.
func TestDie_Roll_Property(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		d := dice.NewDie(src)
		for i := rapid.IntRange(1, 20).Draw(rt, "rolls"); i > 0; i-- {
			v := d.Roll(src)
			assert.GreaterOrEqual(rt, v, 1, "die value below 1")
			assert.LessOrEqual(rt, v, dice.Sides, "die value above %d", dice.Sides)
			assert.Equal(rt, v, d.Value())
		}
	})
}

// TestDie_String covers both kept states.
func TestDie_String(t *testing.T) {
	d, err := dice.NewDieWithValue(5)
	require.NoError(t, err)
	assert.Equal(t, "5 (available)", d.String())
	d.Keep()
	assert.Equal(t, "5 (kept)", d.String())
}
