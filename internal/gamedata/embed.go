// Package gamedata holds the embedded species, player and palette tables and
// the helpers that decode them.
package gamedata

import "embed"

// tables holds monsters.json, player.json and palette.json.
//
//go:embed *.json
var tables embed.FS
