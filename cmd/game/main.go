package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/artillery/internal/application/game"
	"github.com/younwookim/artillery/internal/application/replay"
	"github.com/younwookim/artillery/internal/application/scene/playing"
	"github.com/younwookim/artillery/internal/application/system"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	headless := flag.Bool("headless", false, "With -replay: simulate without a window and print a JSON summary")
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded set")
	arenaName := flag.String("arena", "range", "Arena layout to load")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "artillery",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(*configDir, *arenaName)
	if err != nil {
		logger.Fatal("Failed to load config", "err", err)
	}
	arena := system.LoadArena(cfg.Arena)
	logger.Info("Config loaded", "arena", arena.Name, "obstacles", len(arena.Boxes), "dt", cfg.Physics.TimeStep())

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			logger.Fatal("Failed to load replay", "file", *replayFlag, "err", err)
		}
	}

	if *headless {
		if data == nil {
			logger.Fatal("-headless requires -replay")
		}
		if err := runHeadless(os.Stdout, cfg, arena, *data, logger); err != nil {
			logger.Fatal("Headless replay failed", "err", err)
		}
		return
	}

	scene := playing.New(cfg, arena, playing.Options{
		RecordPath: *recordFlag,
		Replay:     data,
		Logger:     logger,
	})

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, cfg.Physics.TimeStep(), logger)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Artillery Range - " + arena.Name)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		logger.Fatal("Game loop failed", "err", err)
	}
}
