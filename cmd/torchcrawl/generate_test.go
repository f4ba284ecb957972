package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// execute runs the root command with fresh flag state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGeneratePrintsLevel(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "5", "--monsters", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, game.DefaultConfig().Height+1)
	for _, line := range lines[:len(lines)-1] {
		assert.Len(t, line, game.DefaultConfig().Width)
	}
	assert.Equal(t, 1, strings.Count(out, "@"))
	assert.Equal(t, "seed=5 monsters=0", lines[len(lines)-1])
}

func TestGenerateIsReproducible(t *testing.T) {
	first, err := execute(t, "generate", "--seed", "77")
	require.NoError(t, err)
	second, err := execute(t, "generate", "--seed", "77")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	_, err := execute(t, "generate", "--room-min", "2")
	assert.True(t, errors.Is(err, game.ErrInvalidConfig), "got %v", err)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TORCHCRAWL_TORCH_RADIUS", "3")
	t.Setenv("TORCHCRAWL_MAX_ROOMS", "9")

	_, err := execute(t, "generate", "--seed", "1", "--torch-radius", "6")
	require.NoError(t, err)

	cfg, err := loadConfig(generateCmd)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TorchRadius, "flag wins")
	assert.Equal(t, 9, cfg.MaxRooms, "environment beats defaults")
	assert.Equal(t, int64(1), cfg.Seed)
}

func TestGenerateRestrictsSpecies(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "11", "--species", "goblin")
	require.NoError(t, err)

	level := out[:strings.LastIndex(strings.TrimSuffix(out, "\n"), "\n")]
	assert.NotContains(t, level, "O", "orcs are filtered out")
	assert.NotContains(t, level, "P", "pyrefiends are filtered out")
	assert.Contains(t, level, "G")
}

func TestGenerateRejectsUnknownSpecies(t *testing.T) {
	_, err := execute(t, "generate", "--species", "orc,dragon")
	assert.True(t, errors.Is(err, gamedata.ErrUnknownMonster), "got %v", err)
}
