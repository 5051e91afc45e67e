package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tilebrawl/assets"
	"github.com/automoto/tilebrawl/components"
	"github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/headless"
	"github.com/automoto/tilebrawl/shared/leveldata"
	"github.com/automoto/tilebrawl/systems"
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script to play (required)")
	levels := flag.String("levels", "", "directory holding the .tmx level files (default: built-in levels)")
	start := flag.String("start", "", "level to start in (default: first level)")
	tuning := flag.String("tuning", "", "YAML file overriding player, physics and combat values")
	tickRate := flag.Int("tickrate", config.C.TickRate, "Simulation tick rate (updates per second)")
	fast := flag.Bool("fast", false, "Run ticks back to back instead of in real time")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}
	if *tickRate <= 0 {
		log.Fatalf("-tickrate must be positive, got %d", *tickRate)
	}
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	script, err := headless.LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}
	frames, err := script.Frames()
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	var fsys fs.FS = assets.Levels()
	if *levels != "" {
		fsys = os.DirFS(*levels)
	}
	source, err := leveldata.OpenSource(fsys, ".")
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	ids := source.IDs()
	startID := *start
	if startID == "" {
		startID = ids[0]
	}
	if _, err := source.Content(startID); err != nil {
		log.Fatalf("Bad -start: %v", err)
	}

	sim, err := systems.NewSimulation(source, ids, startID)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	loop := headless.NewLoop(sim, frames, *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	var ticks int
	if *fast {
		ticks = loop.RunFast()
	} else {
		ticks = loop.Run()
	}

	obj := components.Object.Get(sim.Player()).Object
	physics := components.Physics.Get(sim.Player())
	log.Printf("After %d ticks: level=%s pos=(%.2f, %.2f) speed=(%.2f, %.2f) grounded=%v",
		ticks, sim.CurrentLevel(), obj.X, obj.Y, physics.SpeedX, physics.SpeedY, physics.Grounded)
}
