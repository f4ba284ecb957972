package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated level as ASCII",
	Long:  `Generate a level with the current settings and print it without starting the terminal UI.`,
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	species, err := loadSpecies(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := game.New(cmd.Context(), cfg,
		game.WithLogger(log),
		game.WithTracer(telemetry.NoopTracer()),
		game.WithSpecies(species))
	if err != nil {
		return fmt.Errorf("failed to generate level: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, levelASCII(g))
	fmt.Fprintf(out, "seed=%d monsters=%d\n", g.Seed(), g.Arena().Len()-1)
	return nil
}

// levelASCII draws every tile with blocking entities on top of the rest.
func levelASCII(g *game.Game) string {
	grid := g.Grid()
	rows := make([][]rune, grid.Height())
	for y := range rows {
		rows[y] = make([]rune, grid.Width())
		for x := range rows[y] {
			rows[y][x] = grid.Get(x, y).Rune()
		}
	}

	entities := g.Arena().All()
	for _, blocking := range []bool{false, true} {
		for _, e := range entities {
			if e.Blocks == blocking {
				rows[e.Y][e.X] = e.Glyph
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
