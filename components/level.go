package components

import (
	"github.com/yohamta/donburi"
)

// LevelData is one loaded level region. The solid grid is not kept here; it is
// fetched from the level source whenever colliders are (re)built.
type LevelData struct {
	ID                     string
	MinX, MinY, MaxX, MaxY float64
	Walls                  []*donburi.Entry
	NeedsReload            bool
}

// Contains reports whether (x, y) lies strictly inside the level bounds.
func (l *LevelData) Contains(x, y float64) bool {
	return x > l.MinX && x < l.MaxX && y > l.MinY && y < l.MaxY
}

var Level = donburi.NewComponentType[LevelData]()

// LevelSelectionData names the level region the player is currently in.
type LevelSelectionData struct {
	Current string
}

var LevelSelection = donburi.NewComponentType[LevelSelectionData]()
