package systems

import (
	"testing"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	floor   = dmath.Vec2{X: 0, Y: -1}
	ceiling = dmath.Vec2{X: 0, Y: 1}
	wallL   = dmath.Vec2{X: 1, Y: 0}
	wallR   = dmath.Vec2{X: -1, Y: 0}
)

func newBody() (*components.PhysicsData, *components.PlayerData) {
	return &components.PhysicsData{MaxSpeed: cfg.Player.MaxSpeed}, &components.PlayerData{}
}

func TestIntegrateHorizontal(t *testing.T) {
	t.Run("accelerates and clamps", func(t *testing.T) {
		p, pl := newBody()
		for i := 0; i < 50; i++ {
			Integrate(p, pl, intent.Of(intent.MoveRight), tick.Seconds())
			assert.LessOrEqual(t, p.SpeedX, cfg.Player.MaxSpeed)
		}
		assert.Equal(t, cfg.Player.MaxSpeed, p.SpeedX)
		assert.Equal(t, components.FacingRight, pl.Facing)

		for i := 0; i < 50; i++ {
			Integrate(p, pl, intent.Of(intent.MoveLeft), tick.Seconds())
		}
		assert.Equal(t, -cfg.Player.MaxSpeed, p.SpeedX)
		assert.Equal(t, components.FacingLeft, pl.Facing)
	})

	t.Run("left wins over right", func(t *testing.T) {
		p, pl := newBody()
		Integrate(p, pl, intent.Of(intent.MoveLeft, intent.MoveRight), tick.Seconds())
		assert.Equal(t, -cfg.Player.Acceleration, p.SpeedX)
	})

	t.Run("decays without overshoot", func(t *testing.T) {
		p, pl := newBody()
		p.SpeedX = cfg.Player.Acceleration / 2
		Integrate(p, pl, 0, tick.Seconds())
		assert.Equal(t, 0.0, p.SpeedX)

		p.SpeedX = -cfg.Player.Acceleration * 3
		Integrate(p, pl, 0, tick.Seconds())
		assert.Equal(t, -cfg.Player.Acceleration*2, p.SpeedX)
	})
}

func TestIntegrateStance(t *testing.T) {
	cases := []struct {
		name string
		in   intent.Set
		want components.Stance
	}{
		{"none", 0, components.StanceNormal},
		{"down", intent.Of(intent.MoveDown), components.StanceLow},
		{"up", intent.Of(intent.MoveUp), components.StanceHigh},
		{"down beats up", intent.Of(intent.MoveUp, intent.MoveDown), components.StanceLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, pl := newBody()
			pl.Stance = components.StanceHigh
			Integrate(p, pl, tc.in, tick.Seconds())
			assert.Equal(t, tc.want, pl.Stance)
		})
	}
}

func TestIntegrateVertical(t *testing.T) {
	dt := tick.Seconds()

	t.Run("gravity while airborne", func(t *testing.T) {
		p, pl := newBody()
		d := Integrate(p, pl, 0, dt)
		assert.InDelta(t, cfg.Physics.Gravity*dt, p.SpeedY, 1e-9)
		assert.InDelta(t, p.SpeedY*dt, d.Y, 1e-9)
	})

	t.Run("jump when grounded", func(t *testing.T) {
		p, pl := newBody()
		p.Grounded = true
		p.Contacts = []dmath.Vec2{floor}
		d := Integrate(p, pl, intent.Of(intent.MoveUp), dt)
		assert.Equal(t, -cfg.Player.JumpSpeed, p.SpeedY)
		assert.InDelta(t, -cfg.Player.JumpSpeed*dt, d.Y, 1e-9)
	})

	t.Run("no jump in the air", func(t *testing.T) {
		p, pl := newBody()
		Integrate(p, pl, intent.Of(intent.MoveUp), dt)
		assert.Greater(t, p.SpeedY, 0.0)
	})

	t.Run("landing stops the fall", func(t *testing.T) {
		p, pl := newBody()
		p.SpeedY = 200
		p.Contacts = []dmath.Vec2{floor}
		d := Integrate(p, pl, 0, dt)
		assert.Equal(t, 0.0, p.SpeedY)
		assert.Equal(t, 0.0, d.Y)
	})

	t.Run("head bump stops the rise", func(t *testing.T) {
		p, pl := newBody()
		p.SpeedY = -200
		p.Contacts = []dmath.Vec2{ceiling}
		Integrate(p, pl, 0, dt)
		assert.Equal(t, 0.0, p.SpeedY)
	})

	t.Run("floor does not cancel a rise", func(t *testing.T) {
		p, pl := newBody()
		p.SpeedY = -200
		p.Contacts = []dmath.Vec2{floor}
		Integrate(p, pl, 0, dt)
		assert.Less(t, p.SpeedY, 0.0)
	})
}

func TestIntegrateWalls(t *testing.T) {
	for _, n := range []dmath.Vec2{wallL, wallR} {
		p, pl := newBody()
		p.SpeedX = 50
		d := Integrate(p, pl, intent.Of(intent.MoveRight), tick.Seconds())
		assert.NotZero(t, d.X)

		p.Contacts = []dmath.Vec2{n}
		d = Integrate(p, pl, intent.Of(intent.MoveRight), tick.Seconds())
		assert.Equal(t, 0.0, p.SpeedX)
		assert.Equal(t, 0.0, d.X)
	}

	// A steep but not vertical normal is not a wall.
	p, pl := newBody()
	p.SpeedX = 50
	p.Contacts = []dmath.Vec2{{X: 0.5, Y: -0.86}}
	Integrate(p, pl, intent.Of(intent.MoveRight), tick.Seconds())
	assert.Equal(t, 50+cfg.Player.Acceleration, p.SpeedX)
}

func TestIntegrateSeveralContacts(t *testing.T) {
	dt := tick.Seconds()
	rising := -200 + cfg.Physics.Gravity*dt

	cases := []struct {
		name         string
		vx, vy       float64
		contacts     []dmath.Vec2
		wantX, wantY float64
	}{
		{"floor and wall while falling", 50, 200, []dmath.Vec2{floor, wallR}, 0, 0},
		{"wall and floor while rising", 50, -200, []dmath.Vec2{wallL, floor}, 0, rising},
		{"ceiling then floor while falling", 0, 200, []dmath.Vec2{ceiling, floor}, 0, 0},
		{"floor then ceiling while falling", 0, 200, []dmath.Vec2{floor, ceiling}, 0, 0},
		{"ceiling then floor while rising", 0, -200, []dmath.Vec2{ceiling, floor}, 0, 0},
		{"floor then ceiling while rising", 0, -200, []dmath.Vec2{floor, ceiling}, 0, 0},
		{"floor only keeps horizontal speed", 50, 200, []dmath.Vec2{floor}, 50 + cfg.Player.Acceleration, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, pl := newBody()
			p.SpeedX, p.SpeedY = tc.vx, tc.vy
			p.Contacts = tc.contacts
			in := intent.Set(0)
			if tc.vx != 0 {
				in = intent.Of(intent.MoveRight)
			}

			d := Integrate(p, pl, in, dt)
			assert.Equal(t, tc.wantX, p.SpeedX)
			assert.InDelta(t, tc.wantY, p.SpeedY, 1e-9)
			assert.InDelta(t, tc.wantY*dt, d.Y, 1e-9)
		})
	}
}
