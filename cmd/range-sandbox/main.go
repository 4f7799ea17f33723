package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/artillery/configs"
	"github.com/younwookim/artillery/internal/application/system"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded set")
	arenaName := flag.String("arena", "range", "Arena layout to load")
	mute := flag.Bool("mute", false, "Disable fire and impact tones")
	logFile := flag.String("log", "", "Write logs to a file (the terminal is in use)")
	flag.Parse()

	logger := log.New(os.Stderr)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			logger.Fatal("Failed to open log file", "err", err)
		}
		defer func() { _ = f.Close() }()
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Level: log.DebugLevel})
	}

	loader := config.NewFSLoader(configs.FS, "configs")
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	}
	cfg, err := loader.LoadAll(*arenaName)
	if err != nil {
		logger.Fatal("Failed to load config", "err", err)
	}
	if *mute {
		cfg.Physics.Feedback.Sound.Enabled = false
	}

	tones, err := newTonePlayer(cfg.Physics.Feedback.Sound)
	if err != nil {
		// Non-fatal, the sandbox runs without sound
		logger.Warn("Audio initialization failed", "err", err)
	}
	defer tones.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("Failed to create screen", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("Failed to init screen", "err", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Silence stderr logging while the terminal is owned by tcell
	if *logFile == "" {
		logger.SetLevel(log.FatalLevel)
	}

	sb := NewSandbox(screen, cfg, system.LoadArena(cfg.Arena), logger)
	sb.PlayTone = tones.Play
	run(screen, sb, cfg.Physics.Display.Framerate)
}

// run drives the sandbox at framerate ticks per second until quit
func run(screen tcell.Screen, sb *Sandbox, framerate int) {
	if framerate <= 0 {
		framerate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(framerate))
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	for {
		select {
		case ev := <-eventCh:
			if !sb.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			sb.Tick()
			sb.Draw()
		}
	}
}
