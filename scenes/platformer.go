package scenes

import (
	"errors"
	"image/color"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/automoto/tilebrawl/assets"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/input"
	"github.com/automoto/tilebrawl/render"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlatformerScene runs the simulation at a fixed tick and draws it.
type PlatformerScene struct {
	levelsDir string
	progress  *systems.Progress

	sim     *systems.Simulation
	source  *leveldata.Source
	watcher *leveldata.Watcher
	mapper  *input.Mapper
	camera  render.Camera

	intents intent.Set
	level   string
	once    sync.Once
}

// NewPlatformerScene creates a scene over the levels in levelsDir, or over the
// embedded levels when levelsDir is empty. progress may be nil, in which case
// nothing is saved.
func NewPlatformerScene(levelsDir string, progress *systems.Progress) *PlatformerScene {
	return &PlatformerScene{levelsDir: levelsDir, progress: progress}
}

func (ps *PlatformerScene) configure() {
	var fsys fs.FS = assets.Levels()
	if ps.levelsDir != "" {
		fsys = os.DirFS(ps.levelsDir)
	}
	source, err := leveldata.OpenSource(fsys, ".")
	if err != nil {
		panic("failed to load levels: " + err.Error())
	}
	ids := source.IDs()
	if len(ids) == 0 {
		panic("No levels found in " + ps.levelsDir)
	}

	saved, err := ps.progress.Load()
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
	}
	start := systems.StartLevel(saved, ids)

	sim, err := systems.NewSimulation(source, ids, start)
	if err != nil {
		panic("failed to start simulation: " + err.Error())
	}

	ps.source = source
	ps.sim = sim
	ps.level = start
	ps.mapper = input.NewMapper(input.DefaultConfig())

	// Only files on disk can change under us.
	if cfg.Debug.WatchLevels && ps.levelsDir != "" {
		w, err := leveldata.NewWatcher(ps.levelsDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", ps.levelsDir, err)
		} else {
			ps.watcher = w
			log.Printf("Watching %s for level changes", ps.levelsDir)
		}
	}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)

	ps.reloadChangedLevels()

	delta := time.Second / time.Duration(cfg.C.TickRate)
	ps.intents = ps.mapper.Poll()
	ps.sim.Step(systems.Frame{Intents: ps.intents, Delta: delta})

	if current := ps.sim.CurrentLevel(); current != ps.level {
		ps.level = current
		if err := ps.progress.Save(systems.SavedProgress{LevelID: current}); err != nil {
			log.Printf("Warning: Could not save progress: %v", err)
		}
	}
	ps.camera.Update(ps.sim.ECS(), ps.level, delta)
	return nil
}

// reloadChangedLevels applies level files changed on disk since the last
// tick. It runs between ticks, never during one.
func (ps *PlatformerScene) reloadChangedLevels() {
	if ps.watcher == nil {
		return
	}
	for _, err := range ps.watcher.DrainErrors() {
		log.Printf("Warning: Level watcher error: %v", err)
	}
	for _, name := range ps.watcher.Drain() {
		id, ok := ps.source.IDForFile(name)
		if !ok {
			continue
		}
		if _, err := ps.source.Reload(id); err != nil {
			// A half-written file is common while saving; keep the old content.
			if !errors.Is(err, leveldata.ErrUnknownLevel) {
				log.Printf("Warning: Could not reload level %s: %v", id, err)
			}
			continue
		}
		ps.sim.ReloadLevel(id)
		log.Printf("Reloaded level %s from %s", id, name)
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.sim == nil {
		return
	}
	render.DrawWorld(ps.sim.ECS(), screen, &ps.camera)
	render.DrawHUD(ps.sim.ECS(), screen, ps.level, ps.sim.Tick(), ps.intents)
}

// Close stops the level watcher, if any.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	return ps.watcher.Close()
}
