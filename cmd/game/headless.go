package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/artillery/configs"
	"github.com/younwookim/artillery/internal/application/replay"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// loadConfig reads physics and the named arena from dir, or from the
// embedded configs when dir is empty
func loadConfig(dir, arenaName string) (*config.GameConfig, error) {
	loader := config.NewFSLoader(configs.FS, "configs")
	if dir != "" {
		loader = config.NewLoader(dir)
	}
	return loader.LoadAll(arenaName)
}

// runHeadless replays data without a window and writes the summary as JSON
func runHeadless(w io.Writer, cfg *config.GameConfig, a *arena.Arena, data replay.ReplayData, logger *log.Logger) error {
	summary, err := replay.Run(cfg.Physics, a, data, logger)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}
