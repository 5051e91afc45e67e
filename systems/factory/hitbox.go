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

// CreateHitbox spawns an attack hitbox centered on (cx, cy).
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, cx, cy float64, tick uint64) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	hw, hh := cfg.Combat.HitboxHalfWidth, cfg.Combat.HitboxHalfHeight
	obj := resolv.NewObject(cx-hw, cy-hh, hw*2, hh*2, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, hw*2, hh*2))
	obj.Data = hitbox
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		OwnerEntity: owner.Entity(),
		Damage:      cfg.Combat.Damage,
		HalfW:       hw,
		HalfH:       hh,
		TTL:         cfg.Combat.HitboxLifetime,
		SpawnTick:   tick,
	})

	return hitbox
}
