package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns a level region entry. Its colliders are built separately.
func CreateLevel(ecs *ecs.ECS, content *leveldata.Content) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	minX, minY, maxX, maxY := content.Bounds()
	components.Level.SetValue(level, components.LevelData{
		ID:   content.ID,
		MinX: minX,
		MinY: minY,
		MaxX: maxX,
		MaxY: maxY,
	})

	return level
}

// CreateLevelSelection spawns the singleton holding the active region.
func CreateLevelSelection(ecs *ecs.ECS, current string) *donburi.Entry {
	sel := archetypes.LevelSelection.Spawn(ecs)
	components.LevelSelection.SetValue(sel, components.LevelSelectionData{Current: current})
	return sel
}
