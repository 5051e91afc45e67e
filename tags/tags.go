package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Hitbox = donburi.NewTag().SetName("Hitbox")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvHitbox = "Hitbox"
)
