package systems

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Frame is everything one tick reads from outside the world.
type Frame struct {
	Intents intent.Set
	Delta   time.Duration
}

// Simulation owns a world of level regions and a single player and advances
// it one tick at a time.
type Simulation struct {
	ecs    *ecs.ECS
	source LevelSource
	tick   uint64
}

// NewSimulation loads the levels named by ids and spawns the player in the
// start level. Level origins must not be negative.
func NewSimulation(source LevelSource, ids []string, start string) (*Simulation, error) {
	if len(ids) == 0 {
		return nil, errors.New("new simulation: no levels")
	}
	if !slices.Contains(ids, start) {
		return nil, fmt.Errorf("new simulation: start level %q: %w", start, leveldata.ErrUnknownLevel)
	}

	var width, height float64
	for _, id := range ids {
		content, err := source.Content(id)
		if err != nil {
			return nil, fmt.Errorf("new simulation: %w", err)
		}
		minX, minY, maxX, maxY := content.Bounds()
		if minX < 0 || minY < 0 {
			return nil, fmt.Errorf("new simulation: level %q has a negative origin", id)
		}
		width = math.Max(width, maxX)
		height = math.Max(height, maxY)
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Pad the space so an actor leaving the bottom edge still registers.
	cell := cfg.Level.SpaceCellSize
	factory.CreateSpace(e, int(width)+cell*4, int(height)+cell*4, cell, cell)

	if err := LoadLevels(e, source, ids); err != nil {
		return nil, err
	}

	x, y := spawnPoint(e, source, start)
	factory.CreatePlayer(e, x, y)
	factory.CreateLevelSelection(e, start)

	return &Simulation{ecs: e, source: source}, nil
}

// spawnPoint returns the start level's spawn point, or the top middle of the
// level when it has none.
func spawnPoint(e *ecs.ECS, source LevelSource, start string) (float64, float64) {
	MustLevel(e, start)
	content := mustContent(source, start)
	if content.Spawn != nil {
		return content.Spawn.X, content.Spawn.Y
	}
	minX, minY, maxX, _ := content.Bounds()
	return (minX + maxX) / 2, minY + cfg.Player.CollisionHeight
}

// Step advances the world by one tick: motion, movement, attacks, then level
// tracking and resets.
func (s *Simulation) Step(f Frame) {
	s.tick++

	UpdateMotion(s.ecs, f)
	UpdateCollisions(s.ecs)
	UpdateAttacks(s.ecs, f, s.tick)
	UpdateLevelSelection(s.ecs)
	UpdateReset(s.ecs, f, s.source)
}

// ReloadLevel swaps in new content for one region.
func (s *Simulation) ReloadLevel(id string) {
	ReloadLevel(s.ecs, mustContent(s.source, id))
}

func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Player returns the player entry.
func (s *Simulation) Player() *donburi.Entry {
	return mustPlayer(s.ecs)
}

// CurrentLevel returns the id of the region the player is in.
func (s *Simulation) CurrentLevel() string {
	sel, ok := components.LevelSelection.First(s.ecs.World)
	if !ok {
		return ""
	}
	return components.LevelSelection.Get(sel).Current
}
