// Package leveldata reads level files into plain data for the simulation.
// It does not depend on ebitengine, donburi or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/tilebrawl/shared/tilemesh"
)

// WallLayer is the tile layer whose non-empty tiles are solid.
const WallLayer = "walls"

// SpawnGroup is the object group holding the player spawn point.
const SpawnGroup = "PlayerSpawn"

// ErrUnknownLevel is returned when a level id has no content.
var ErrUnknownLevel = errors.New("unknown level")

// Content is everything the simulation needs from one level file: its solid
// grid and where it sits in the world.
type Content struct {
	ID       string
	Path     string
	Width    int // cells
	Height   int // cells
	CellSize float64
	OriginX  float64
	OriginY  float64
	Solid    tilemesh.CellSet
	Spawn    *SpawnPoint // world space, nil when the level has none
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// Bounds returns the level's world-space rectangle.
func (c *Content) Bounds() (minX, minY, maxX, maxY float64) {
	return c.OriginX, c.OriginY,
		c.OriginX + float64(c.Width)*c.CellSize,
		c.OriginY + float64(c.Height)*c.CellSize
}

// Placement positions a level file in the world.
type Placement struct {
	ID   string  `yaml:"id"`
	File string  `yaml:"file"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// WorldLayout is the optional world.yaml next to the level files.
type WorldLayout struct {
	Levels []Placement `yaml:"levels"`
}
