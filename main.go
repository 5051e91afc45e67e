package main

import (
	"flag"
	"log"

	"github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/scenes"
	"github.com/automoto/tilebrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.PlatformerScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file overriding player, physics and combat values")
	levels := flag.String("levels", "", "directory holding the .tmx level files (default: built-in levels)")
	flag.BoolVar(&config.Debug.DrawColliders, "debug", false, "outline colliders and show contacts")
	flag.BoolVar(&config.Debug.WatchLevels, "watch", false, "reload level files from -levels when they change on disk")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		log.Printf("Loaded tuning from %s", *tuning)
	}

	progress, err := systems.OpenProgress("tilebrawl")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tilebrawl")
	ebiten.SetTPS(config.C.TickRate)

	scene := scenes.NewPlatformerScene(*levels, progress)
	defer scene.Close()

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
