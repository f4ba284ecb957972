package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/logging"
)

// flagValues holds the raw command line values. A flag only overrides the
// environment when it was set explicitly.
var flagValues struct {
	seed        int64
	maxRooms    int
	roomMin     int
	roomMax     int
	monsters    int
	torchRadius int
	fov         string
	species     []string
	logFile     string
	logLevel    string
}

func registerConfigFlags(cmd *cobra.Command) {
	defaults := game.DefaultConfig()
	pf := cmd.PersistentFlags()
	pf.Int64Var(&flagValues.seed, "seed", 0, "random seed; 0 picks one from the clock")
	pf.IntVar(&flagValues.maxRooms, "max-rooms", defaults.MaxRooms, "room placement attempts")
	pf.IntVar(&flagValues.roomMin, "room-min", defaults.RoomMinSize, "minimum room size")
	pf.IntVar(&flagValues.roomMax, "room-max", defaults.RoomMaxSize, "maximum room size")
	pf.IntVar(&flagValues.monsters, "monsters", defaults.MaxRoomMonsters, "maximum monsters per room")
	pf.IntVar(&flagValues.torchRadius, "torch-radius", defaults.TorchRadius, "sight radius")
	pf.StringVar(&flagValues.fov, "fov", defaults.FOVAlgorithm, "field of view algorithm: basic or shadowcast")
	pf.StringSliceVar(&flagValues.species, "species", nil, "monster ids allowed to spawn; all when empty")
	pf.StringVar(&flagValues.logFile, "log-file", "", "log file; logs are discarded when empty")
	pf.StringVar(&flagValues.logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// loadConfig layers defaults, TORCHCRAWL_* variables and explicit flags.
func loadConfig(cmd *cobra.Command) (game.Config, error) {
	cfg, err := game.DefaultConfig().ApplyEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagValues.seed
	}
	if flags.Changed("max-rooms") {
		cfg.MaxRooms = flagValues.maxRooms
	}
	if flags.Changed("room-min") {
		cfg.RoomMinSize = flagValues.roomMin
	}
	if flags.Changed("room-max") {
		cfg.RoomMaxSize = flagValues.roomMax
	}
	if flags.Changed("monsters") {
		cfg.MaxRoomMonsters = flagValues.monsters
	}
	if flags.Changed("torch-radius") {
		cfg.TorchRadius = flagValues.torchRadius
	}
	if flags.Changed("fov") {
		cfg.FOVAlgorithm = flagValues.fov
	}

	return cfg, cfg.Validate()
}

// loadSpecies returns the monster table narrowed by --species, or nil for
// the full embedded table.
func loadSpecies(cmd *cobra.Command) (*gamedata.MonsterRegistry, error) {
	if !cmd.Flags().Changed("species") || len(flagValues.species) == 0 {
		return nil, nil
	}
	registry, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	return registry.Subset(flagValues.species)
}

// newLogger builds the logger from LOG_* variables and the log flags.
func newLogger(cmd *cobra.Command) (*logrus.Logger, func() error, error) {
	opts := logging.OptionsFromEnv()
	if cmd.Flags().Changed("log-file") {
		opts.File = flagValues.logFile
	}
	if cmd.Flags().Changed("log-level") {
		opts.Level = flagValues.logLevel
	}
	return logging.New(opts)
}
