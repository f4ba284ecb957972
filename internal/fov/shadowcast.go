package fov

import "github.com/samdwyer/torchcrawl/internal/world"

// Octant transforms: world = (cx + dx*xx + dy*xy, cy + dx*yx + dy*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// castLight lights one octant row by row, recursing past each opaque run.
func (m *Map) castLight(grid *world.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, lightWalls bool) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy
			inBounds := grid.InBounds(wx, wy)
			opaque := !inBounds || grid.BlocksSight(wx, wy)

			if inBounds && dx*dx+dy*dy <= radiusSq && (lightWalls || !opaque) {
				m.visible.Put(world.Point{X: wx, Y: wy})
			}

			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				m.castLight(grid, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, lightWalls)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}
