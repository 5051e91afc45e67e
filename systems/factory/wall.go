package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/tilemesh"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall registers a static, immovable collider. Nothing ever moves a wall
// object after creation.
func CreateWall(ecs *ecs.ECS, c tilemesh.Collider) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	x, y, w, h := c.X(), c.Y(), c.W(), c.H()
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
