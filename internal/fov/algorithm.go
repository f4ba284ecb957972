// Package fov computes which tiles are visible from a viewpoint and records
// exploration on the tile grid.
package fov

import (
	"fmt"
	"strings"
)

// Algorithm selects the line-of-sight computation.
type Algorithm int

const (
	// Basic casts Bresenham rays to every cell on the radius perimeter.
	Basic Algorithm = iota
	// Shadowcast is recursive shadowcasting over eight octants.
	Shadowcast
)

// String returns the algorithm's configuration name.
func (a Algorithm) String() string {
	switch a {
	case Basic:
		return "basic"
	case Shadowcast:
		return "shadowcast"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "basic", "":
		return Basic, nil
	case "shadowcast", "shadowcasting":
		return Shadowcast, nil
	default:
		return Basic, fmt.Errorf("unknown fov algorithm %q", name)
	}
}
