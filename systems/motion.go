package systems

import (
	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateMotion integrates every player's velocity for the frame and stores the
// displacement the mover should apply.
func UpdateMotion(ecs *ecs.ECS, f Frame) {
	dt := f.Delta.Seconds()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		player := components.Player.Get(e)
		physics.Displacement = Integrate(physics, player, f.Intents, dt)
	})
}

// Integrate runs the four motion stages in order and returns velocity * dt.
// It reads the contacts reported for the previous displacement and never
// moves anything itself.
func Integrate(physics *components.PhysicsData, player *components.PlayerData, in intent.Set, dt float64) dmath.Vec2 {
	applyHorizontalInput(physics, player, in)
	applyStance(player, in)
	applyVertical(physics, in, dt)
	applyContacts(physics)

	return dmath.Vec2{X: physics.SpeedX * dt, Y: physics.SpeedY * dt}
}

func applyHorizontalInput(physics *components.PhysicsData, player *components.PlayerData, in intent.Set) {
	step := cfg.Player.Acceleration
	switch {
	case in.Has(intent.MoveLeft):
		physics.SpeedX = gamemath.Accelerate(physics.SpeedX, -step, physics.MaxSpeed)
		player.Facing = components.FacingLeft
	case in.Has(intent.MoveRight):
		physics.SpeedX = gamemath.Accelerate(physics.SpeedX, step, physics.MaxSpeed)
		player.Facing = components.FacingRight
	default:
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, step)
	}
}

// applyStance has no memory: the stance comes from this tick's intents only.
func applyStance(player *components.PlayerData, in intent.Set) {
	switch {
	case in.Has(intent.MoveDown):
		player.Stance = components.StanceLow
	case in.Has(intent.MoveUp):
		player.Stance = components.StanceHigh
	default:
		player.Stance = components.StanceNormal
	}
}

func applyVertical(physics *components.PhysicsData, in intent.Set, dt float64) {
	if physics.Grounded {
		if in.Has(intent.MoveUp) {
			physics.SpeedY = -cfg.Player.JumpSpeed
		}
		return
	}
	physics.SpeedY += cfg.Physics.Gravity * dt
}

// applyContacts corrects velocity against each reported contact in order.
// Later contacts overwrite earlier ones on the same axis; this is not a
// physical solver.
func applyContacts(physics *components.PhysicsData) {
	for _, n := range physics.Contacts {
		if n.Y <= -cfg.Physics.GroundNormal && physics.SpeedY > 0 {
			physics.SpeedY = 0 // landing
		} else if n.Y >= cfg.Physics.CeilingNormal && physics.SpeedY < 0 {
			physics.SpeedY = 0 // head bump
		}
		if n.X > cfg.Physics.WallNormal || n.X < -cfg.Physics.WallNormal {
			physics.SpeedX = 0
		}
	}
}

// isGround reports whether a contact normal is a floor beneath the actor.
func isGround(n dmath.Vec2) bool {
	return n.Y <= -cfg.Physics.GroundNormal
}
