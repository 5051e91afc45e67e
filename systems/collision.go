package systems

import (
	"math"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/gamemath"
	"github.com/automoto/tilebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCollisions applies each player's requested displacement through the
// collision space and records the contacts for the next tick.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		physics.Contacts = MoveAndCollide(obj, physics.Displacement.X, physics.Displacement.Y)
		physics.Grounded = false
		for _, n := range physics.Contacts {
			if isGround(n) {
				physics.Grounded = true
			}
		}
		physics.Displacement = dmath.Vec2{}
	})
}

// MoveAndCollide moves object by (dx, dy) against solid objects, horizontal
// axis first, stopping flush at the nearest blocker. It returns at most one
// normal per axis. When dy >= 0 and nothing was hit, the floor is probed
// slightly further so an actor resting on it keeps reporting it.
func MoveAndCollide(object *resolv.Object, dx, dy float64) []dmath.Vec2 {
	var contacts []dmath.Vec2

	if n, hit := moveAxis(object, dx, true); hit {
		contacts = append(contacts, n)
	}
	if n, hit := moveAxis(object, dy, false); hit {
		contacts = append(contacts, n)
	} else if dy >= 0 && settleOnFloor(object) {
		contacts = append(contacts, dmath.Vec2{X: 0, Y: -1})
	}

	object.Update()
	return contacts
}

// moveAxis moves along one axis in steps no longer than the object itself so
// the broadphase check cannot skip over a thin collider.
func moveAxis(object *resolv.Object, delta float64, horizontal bool) (dmath.Vec2, bool) {
	if delta == 0 {
		return dmath.Vec2{}, false
	}

	size := object.H
	if horizontal {
		size = object.W
	}
	steps := 1
	if size > 0 {
		steps = int(math.Ceil(math.Abs(delta) / size))
	}
	step := delta / float64(steps)

	for i := 0; i < steps; i++ {
		dx, dy := 0.0, step
		if horizontal {
			dx, dy = step, 0.0
		}

		if check := object.Check(dx, dy, tags.ResolvSolid); check != nil {
			if flush, hit := sweep(object, check.ObjectsByTags(tags.ResolvSolid), step, horizontal); hit {
				place(object, flush, horizontal)
				if horizontal {
					return dmath.Vec2{X: -gamemath.Sign(step), Y: 0}, true
				}
				return dmath.Vec2{X: 0, Y: -gamemath.Sign(step)}, true
			}
		}
		translate(object, step, horizontal)
	}
	return dmath.Vec2{}, false
}

// settleOnFloor snaps object down onto a floor within the ground probe
// distance and reports whether there was one.
func settleOnFloor(object *resolv.Object) bool {
	probe := cfg.Physics.GroundProbe
	check := object.Check(0, probe, tags.ResolvSolid)
	if check == nil {
		return false
	}
	flush, hit := sweep(object, check.ObjectsByTags(tags.ResolvSolid), probe, false)
	if hit {
		place(object, flush, false)
	}
	return hit
}

func translate(object *resolv.Object, d float64, horizontal bool) {
	if horizontal {
		place(object, object.X+d, horizontal)
	} else {
		place(object, object.Y+d, horizontal)
	}
}

func place(object *resolv.Object, pos float64, horizontal bool) {
	if horizontal {
		object.X = pos
	} else {
		object.Y = pos
	}
	object.Update()
}

// sweep finds the nearest of solids that object would reach moving delta
// along one axis. It returns the position that puts object flush against it
// and whether one was found. Solids that do not overlap object on the other
// axis are ignored.
func sweep(object *resolv.Object, solids []*resolv.Object, delta float64, horizontal bool) (float64, bool) {
	pos, size, lo, hi := object.Y, object.H, object.X, object.X+object.W
	if horizontal {
		pos, size, lo, hi = object.X, object.W, object.Y, object.Y+object.H
	}

	allowed := delta
	flush := 0.0
	hit := false
	for _, s := range solids {
		sPos, sSize, sLo, sHi := s.Y, s.H, s.X, s.X+s.W
		if horizontal {
			sPos, sSize, sLo, sHi = s.X, s.W, s.Y, s.Y+s.H
		}
		if lo >= sHi || hi <= sLo {
			continue
		}

		var gap float64
		if delta > 0 {
			gap = sPos - (pos + size)
			if gap < 0 || gap > allowed {
				continue
			}
			flush = sPos - size
		} else {
			gap = sPos + sSize - pos
			if gap > 0 || gap < allowed {
				continue
			}
			flush = sPos + sSize
		}
		allowed = gap
		hit = true
	}
	return flush, hit
}
