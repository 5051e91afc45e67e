package factory

import (
	"github.com/automoto/tilebrawl/archetypes"
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerName identifies the single actor in messages and logs.
const PlayerName = "player"

// CreatePlayer spawns the actor with its feet centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Name:   PlayerName,
		Facing: components.FacingLeft,
		Stance: components.StanceNormal,
		SpawnX: x,
		SpawnY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	cooldown := components.AttackCooldownData{Duration: cfg.Combat.AttackCooldown}
	cooldown.Finish()
	components.AttackCooldown.SetValue(player, cooldown)

	return player
}
