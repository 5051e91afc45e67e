package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PhysicsData is an actor's kinematic state. SpeedX/SpeedY are world units per
// second with y growing downward.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	MaxSpeed float64

	// Contacts reported by the mover for the last applied displacement.
	// They are read by the next tick's motion update and then replaced.
	Contacts []dmath.Vec2
	Grounded bool

	// Displacement requested by the motion update for the mover.
	Displacement dmath.Vec2
}

var Physics = donburi.NewComponentType[PhysicsData]()
