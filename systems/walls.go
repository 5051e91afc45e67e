package systems

import (
	"log"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/tilemesh"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevelColliders replaces the static colliders of a level region with the
// merged rectangles of content's solid grid. Calling it again with the same
// content produces the same collider set.
func BuildLevelColliders(ecs *ecs.ECS, levelEntry *donburi.Entry, content *leveldata.Content) int {
	level := components.Level.Get(levelEntry)
	for _, wall := range level.Walls {
		factory.Destroy(ecs, wall)
	}
	level.Walls = nil

	// Content may have been re-read with a different size.
	level.MinX, level.MinY, level.MaxX, level.MaxY = content.Bounds()

	colliders := tilemesh.Colliders(content.Solid, content.Width, content.Height,
		content.CellSize, content.OriginX, content.OriginY)
	for _, c := range colliders {
		level.Walls = append(level.Walls, factory.CreateWall(ecs, c))
	}

	log.Printf("Level %s: %d colliders from %d solid cells", content.ID, len(colliders), len(content.Solid))
	return len(colliders)
}
