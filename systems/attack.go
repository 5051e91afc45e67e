package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttacks advances every attack cooldown, spawns a hitbox for each ready
// actor holding Attack, then ages and removes expired hitboxes.
func UpdateAttacks(ecs *ecs.ECS, f Frame, tick uint64) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		cooldown := components.AttackCooldown.Get(e)
		cooldown.Advance(f.Delta)

		if !f.Intents.Has(intent.Attack) || !cooldown.Ready() {
			return
		}
		cooldown.Reset()

		cx, cy := HitboxCenter(e)
		factory.CreateHitbox(ecs, e, cx, cy, tick)
	})

	despawnHitboxes(ecs, f, tick)
}

// HitboxCenter returns where a hitbox spawned by actor e is centered: in front
// of the actor by facing, raised or lowered by stance.
func HitboxCenter(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e).Object
	player := components.Player.Get(e)

	cx := obj.X + obj.W/2 + player.Facing.Sign()*cfg.Combat.HitboxOffsetX
	cy := obj.Y + obj.H/2
	switch player.Stance {
	case components.StanceLow:
		cy += cfg.Combat.HitboxOffsetY
	case components.StanceHigh:
		cy -= cfg.Combat.HitboxOffsetY
	}
	return cx, cy
}

func despawnHitboxes(ecs *ecs.ECS, f Frame, tick uint64) {
	var expired []*donburi.Entry
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if hitbox.SpawnTick == tick {
			return
		}
		hitbox.TTL -= f.Delta
		if hitbox.TTL <= 0 {
			expired = append(expired, e)
		}
	})

	// Removal is deferred so Each never sees a mutated archetype.
	for _, e := range expired {
		factory.Destroy(ecs, e)
	}
}

// ClearHitboxes removes every live hitbox.
func ClearHitboxes(ecs *ecs.ECS) {
	var all []*donburi.Entry
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		factory.Destroy(ecs, e)
	}
}
