package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type HitboxData struct {
	OwnerEntity donburi.Entity // The actor that created this hitbox
	Damage      int
	HalfW       float64
	HalfH       float64
	TTL         time.Duration // Remaining time before removal
	SpawnTick   uint64        // Tick that created it; not aged on that tick
}

var Hitbox = donburi.NewComponentType[HitboxData]()
