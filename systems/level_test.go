package systems

import (
	"testing"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/tilemesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestLevelContainsIsStrict(t *testing.T) {
	l := components.LevelData{MinX: 0, MinY: 0, MaxX: 160, MaxY: 96}
	assert.True(t, l.Contains(80, 48))
	assert.True(t, l.Contains(159.9, 0.1))
	assert.False(t, l.Contains(160, 48))
	assert.False(t, l.Contains(0, 48))
	assert.False(t, l.Contains(80, 96))
	assert.False(t, l.Contains(-1, 48))
}

func TestLoadLevelsBuildsColliders(t *testing.T) {
	sim, _ := newTestSimulation(t)
	e := sim.ECS()

	a := components.Level.Get(MustLevel(e, "a"))
	assert.Equal(t, [4]float64{0, 0, 160, 96}, [4]float64{a.MinX, a.MinY, a.MaxX, a.MaxY})
	assert.Equal(t, []box{{0, 0, 16, 80}, {0, 80, 160, 16}}, wallBoxes(e, "a"))

	b := components.Level.Get(MustLevel(e, "b"))
	assert.Equal(t, [4]float64{160, 0, 240, 96}, [4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY})
	assert.Equal(t, []box{{160, 0, 16, 80}, {160, 80, 80, 16}}, wallBoxes(e, "b"))
}

func TestBuildLevelCollidersIsIdempotent(t *testing.T) {
	sim, src := newTestSimulation(t)
	e := sim.ECS()
	entry := MustLevel(e, "a")
	before := wallBoxes(e, "a")
	solids := countSolids(e)
	var old []donburi.Entity
	for _, w := range components.Level.Get(entry).Walls {
		old = append(old, w.Entity())
	}

	for i := 0; i < 3; i++ {
		n := BuildLevelColliders(e, entry, src["a"])
		assert.Equal(t, len(before), n)
		assert.Equal(t, before, wallBoxes(e, "a"))
		assert.Equal(t, solids, countSolids(e))
	}
	for _, ent := range old {
		assert.False(t, e.World.Valid(ent), "previous colliders are removed")
	}
}

func TestReloadLevelPicksUpNewContent(t *testing.T) {
	sim, src := newTestSimulation(t)

	// Fill a 2x2 block in level b's interior.
	c := room("b", 160, 5)
	for _, cell := range []tilemesh.Cell{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		c.Solid.Add(cell)
	}
	src["b"] = c

	sim.ReloadLevel("b")
	// The block closes first, then the wall column, then the floor.
	assert.Equal(t, []box{{192, 16, 32, 32}, {160, 0, 16, 80}, {160, 80, 80, 16}}, wallBoxes(sim.ECS(), "b"))

	obj := components.Object.Get(sim.Player()).Object
	assert.Equal(t, 66.0, obj.X, "hot reload leaves the player alone")
}

func TestUpdateLevelSelection(t *testing.T) {
	sim, _ := newTestSimulation(t)
	e := sim.ECS()
	obj := components.Object.Get(sim.Player()).Object
	require.Equal(t, "a", sim.CurrentLevel())

	moveCenterTo := func(x, y float64) {
		obj.X, obj.Y = x-obj.W/2, y-obj.H/2
		obj.Update()
	}

	moveCenterTo(200, 60)
	UpdateLevelSelection(e)
	assert.Equal(t, "b", sim.CurrentLevel())

	// Exactly on the shared edge belongs to neither region.
	moveCenterTo(160, 60)
	UpdateLevelSelection(e)
	assert.Equal(t, "b", sim.CurrentLevel())

	moveCenterTo(159.5, 60)
	UpdateLevelSelection(e)
	assert.Equal(t, "a", sim.CurrentLevel())

	// Outside every region keeps the last one.
	moveCenterTo(500, -50)
	UpdateLevelSelection(e)
	assert.Equal(t, "a", sim.CurrentLevel())
}

func TestResetLevel(t *testing.T) {
	sim, _ := newTestSimulation(t)
	e := sim.ECS()
	p := sim.Player()
	before := map[string][]box{"a": wallBoxes(e, "a"), "b": wallBoxes(e, "b")}

	obj := components.Object.Get(p).Object
	obj.X, obj.Y = 100, 10
	obj.Update()
	physics := components.Physics.Get(p)
	physics.SpeedX, physics.SpeedY = 80, -200
	physics.Contacts = []dmath.Vec2{{X: -1, Y: 0}}
	UpdateAttacks(e, Frame{Intents: intent.Of(intent.Attack), Delta: tick}, 1)
	require.Equal(t, 1, countHitboxes(e))

	UpdateReset(e, Frame{Intents: intent.Of(intent.ResetLevel), Delta: tick}, sim.source)

	assert.Equal(t, before["a"], wallBoxes(e, "a"))
	assert.Equal(t, before["b"], wallBoxes(e, "b"))
	assert.Equal(t, 0, countHitboxes(e))
	assert.Equal(t, 66.0, obj.X)
	assert.Equal(t, 40.0, obj.Y)
	assert.Zero(t, physics.SpeedX)
	assert.Zero(t, physics.SpeedY)
	assert.Empty(t, physics.Contacts)
	assert.True(t, components.AttackCooldown.Get(p).Ready())
	assert.False(t, components.Level.Get(MustLevel(e, "a")).NeedsReload)
}

func TestResetWithoutIntentIsNoop(t *testing.T) {
	sim, _ := newTestSimulation(t)
	e := sim.ECS()
	walls := components.Level.Get(MustLevel(e, "a")).Walls

	UpdateReset(e, Frame{Delta: tick}, sim.source)
	assert.Equal(t, walls, components.Level.Get(MustLevel(e, "a")).Walls)
}

func TestMissingLevelPanics(t *testing.T) {
	sim, src := newTestSimulation(t)
	e := sim.ECS()

	assert.PanicsWithValue(t, `level "nope" is not loaded`, func() {
		MustLevel(e, "nope")
	})

	delete(src, "b")
	assert.Panics(t, func() {
		UpdateReset(e, Frame{Intents: intent.Of(intent.ResetLevel)}, src)
	})
}

func TestMissingActorPanics(t *testing.T) {
	sim, _ := newTestSimulation(t)
	e := sim.ECS()
	e.World.Remove(sim.Player().Entity())

	assert.PanicsWithValue(t, `actor "player" does not exist`, func() {
		sim.Player()
	})
	assert.PanicsWithValue(t, `actor "player" does not exist`, func() {
		UpdateLevelSelection(e)
	})
}

func TestNewSimulationErrors(t *testing.T) {
	_, err := NewSimulation(fakeSource{}, nil, "")
	assert.Error(t, err)

	_, err = NewSimulation(twoRooms(), []string{"a", "zzz"}, "a")
	assert.ErrorIs(t, err, leveldata.ErrUnknownLevel)

	_, err = NewSimulation(twoRooms(), []string{"a", "b"}, "c")
	assert.ErrorIs(t, err, leveldata.ErrUnknownLevel)

	negative := fakeSource{"n": room("n", -16, 4)}
	_, err = NewSimulation(negative, []string{"n"}, "n")
	assert.Error(t, err)
}
