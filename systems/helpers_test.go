package systems

import (
	"fmt"
	"testing"
	"time"

	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/shared/tilemesh"
	"github.com/automoto/tilebrawl/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tick = time.Second / 60

type fakeSource map[string]*leveldata.Content

func (s fakeSource) Content(id string) (*leveldata.Content, error) {
	c, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("level %q: %w", id, leveldata.ErrUnknownLevel)
	}
	return c, nil
}

// room is a level with a solid floor on its last row and a wall in its first
// column, 6 cells tall and 16 units per cell. The spawn is on the floor,
// five cells in.
func room(id string, originX float64, width int) *leveldata.Content {
	cells := tilemesh.NewCellSet()
	for x := 0; x < width; x++ {
		cells.Add(tilemesh.Cell{X: x, Y: 5})
	}
	for y := 0; y < 5; y++ {
		cells.Add(tilemesh.Cell{X: 0, Y: y})
	}
	return &leveldata.Content{
		ID:       id,
		Width:    width,
		Height:   6,
		CellSize: 16,
		OriginX:  originX,
		Solid:    cells,
		Spawn:    &leveldata.SpawnPoint{X: originX + 80, Y: 80},
	}
}

// twoRooms returns level "a" spanning x 0..160 and level "b" spanning
// x 160..240, both 96 units tall.
func twoRooms() fakeSource {
	return fakeSource{
		"a": room("a", 0, 10),
		"b": room("b", 160, 5),
	}
}

func newTestSimulation(t *testing.T) (*Simulation, fakeSource) {
	t.Helper()
	src := twoRooms()
	sim, err := NewSimulation(src, []string{"a", "b"}, "a")
	require.NoError(t, err)
	return sim, src
}

func countHitboxes(e *ecs.ECS) int {
	n := 0
	tags.Hitbox.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

type box struct{ X, Y, W, H float64 }

func wallBoxes(e *ecs.ECS, id string) []box {
	var out []box
	for _, w := range components.Level.Get(MustLevel(e, id)).Walls {
		obj := components.Object.Get(w).Object
		out = append(out, box{obj.X, obj.Y, obj.W, obj.H})
	}
	return out
}

// countSolids counts the wall objects registered in the collision space.
func countSolids(e *ecs.ECS) int {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return 0
	}
	n := 0
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		if obj.HasTags(tags.ResolvSolid) {
			n++
		}
	}
	return n
}
