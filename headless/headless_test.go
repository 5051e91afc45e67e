package headless

import (
	"testing"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkScript = `
steps:
  - ticks: 2
  - intents: [MoveRight]
    ticks: 60
  - intents: [moveright, Attack]
    ticks: 1
`

func TestScriptFrames(t *testing.T) {
	s, err := ParseScript([]byte(walkScript))
	require.NoError(t, err)

	frames, err := s.Frames()
	require.NoError(t, err)
	require.Len(t, frames, 63)
	assert.True(t, frames[0].Empty())
	assert.Equal(t, intent.Of(intent.MoveRight), frames[2])
	assert.Equal(t, intent.Of(intent.MoveRight, intent.Attack), frames[62])
}

func TestScriptErrors(t *testing.T) {
	_, err := ParseScript([]byte("steps: []"))
	assert.Error(t, err)

	_, err = ParseScript([]byte("steps: ["))
	assert.Error(t, err)

	s, err := ParseScript([]byte("steps:\n  - intents: [Fly]\n    ticks: 1\n"))
	require.NoError(t, err)
	_, err = s.Frames()
	assert.ErrorContains(t, err, "Fly")

	s, err = ParseScript([]byte("steps:\n  - ticks: 0\n"))
	require.NoError(t, err)
	_, err = s.Frames()
	assert.Error(t, err)
}

func newSim(t *testing.T) *systems.Simulation {
	t.Helper()
	src, err := leveldata.OpenSource(assets.Levels(), ".")
	require.NoError(t, err)
	sim, err := systems.NewSimulation(src, src.IDs(), "entrance")
	require.NoError(t, err)
	return sim
}

func TestRunFastWalksRight(t *testing.T) {
	sim := newSim(t)
	s, err := ParseScript([]byte(walkScript))
	require.NoError(t, err)
	frames, err := s.Frames()
	require.NoError(t, err)

	obj := components.Object.Get(sim.Player()).Object
	startX := obj.X

	n := NewLoop(sim, frames, 60).RunFast()
	assert.Equal(t, 63, n)
	assert.Equal(t, uint64(63), sim.Tick())
	assert.Greater(t, obj.X, startX+50)
	assert.True(t, components.Physics.Get(sim.Player()).Grounded)
	assert.Equal(t, "entrance", sim.CurrentLevel())
}

func TestRunPacedAndStop(t *testing.T) {
	sim := newSim(t)
	frames := make([]intent.Set, 5)

	assert.Equal(t, 5, NewLoop(sim, frames, 1000).Run())

	l := NewLoop(sim, make([]intent.Set, 1000), 1000)
	l.Stop()
	l.Stop()
	assert.Equal(t, 0, l.Run())
}
