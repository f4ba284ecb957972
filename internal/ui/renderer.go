package ui

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

var errIncompleteView = errors.New("incomplete view")

// panelWidth is the column count reserved for the detailed side panel.
const panelWidth = 28

// Renderer draws a game.View to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws explored tiles, visible entities, the status line and the
// message log.
func (r *Renderer) Render(view game.View) error {
	if view.Grid == nil || view.Visibility == nil {
		return errIncompleteView
	}
	r.screen.Clear()

	r.drawMap(view)
	r.drawEntities(view)
	r.drawStatus(view)
	if view.Mode == game.DisplayDetailed {
		r.drawPanel(view)
	}

	r.screen.Show()
	return nil
}

// tileBackground returns the palette color for an explored tile.
func (r *Renderer) tileBackground(view game.View, x, y int) tcell.Color {
	return r.palette.TileColor(view.Visibility.IsVisible(x, y), view.Grid.Get(x, y).IsWall())
}

// drawMap paints explored tiles only; lit when visible, dark otherwise.
func (r *Renderer) drawMap(view game.View) {
	grid := view.Grid
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if !grid.Get(x, y).Explored {
				continue
			}
			style := tcell.StyleDefault.Background(r.tileBackground(view, x, y))
			r.screen.SetContent(x, y, ' ', style)
		}
	}
}

// drawEntities draws visible entities, non-blocking ones first so blockers
// end up on top.
func (r *Renderer) drawEntities(view game.View) {
	for _, blocking := range []bool{false, true} {
		for i := range view.Entities {
			e := &view.Entities[i]
			if e.Blocks != blocking || !view.Visibility.IsVisible(e.X, e.Y) {
				continue
			}
			r.drawEntity(view, e)
		}
	}
}

func (r *Renderer) drawEntity(view game.View, e *entity.Entity) {
	style := tcell.StyleDefault.
		Foreground(e.Color).
		Background(r.tileBackground(view, e.X, e.Y))
	r.screen.SetContent(e.X, e.Y, e.Glyph, style)
}

// drawStatus writes hp and the message log below the map.
func (r *Renderer) drawStatus(view game.View) {
	y := view.Grid.Height()
	status := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	if f := view.Player.Fighter; f != nil {
		text := fmt.Sprintf("HP: %d/%d", f.HP, f.MaxHP)
		if !view.Player.Alive {
			text += "  (dead)"
		}
		r.screen.DrawText(1, y, text, status)
	}
	r.screen.DrawText(20, y, fmt.Sprintf("Turn: %d", view.Turn), status)

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for i, msg := range view.Messages {
		r.screen.DrawText(1, y+1+i, msg, msgStyle)
	}
}

// drawPanel lists the stats of every visible fighter beside the map,
// clipped to the terminal width.
func (r *Renderer) drawPanel(view game.View) {
	x := view.Grid.Width() + 1
	screenWidth, _ := r.screen.Size()
	width := min(panelWidth, screenWidth-x)
	if width <= 0 {
		return
	}
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.screen.DrawText(x, 0, truncate("In view", width), title)
	row := 1
	for i := range view.Entities {
		e := &view.Entities[i]
		if e.Fighter == nil || !view.Visibility.IsVisible(e.X, e.Y) {
			continue
		}
		line := fmt.Sprintf("%c %-10s %3d/%-3d d%d p%d", e.Glyph, e.Name, e.Fighter.HP, e.Fighter.MaxHP, e.Fighter.Defense, e.Fighter.Power)
		r.screen.DrawText(x, row, truncate(line, width), text)
		row++
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
