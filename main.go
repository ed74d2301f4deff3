// roguelike3d is a terminal viewer for generated dungeon levels. Build:
//
//	go build -o roguelike3d .
//
// Usage:
//
//	./roguelike3d [-config r3d.yaml] [-seed 42]
//
// Settings can also be overridden with R3D_* environment variables, for
// example R3D_LEVEL_KIND=static.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"roguelike3d/assets"
	"roguelike3d/internal/config"
	"roguelike3d/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML, TOML or JSON config file")
	seed := flag.Int64("seed", 0, "Level seed (0 picks one from the clock)")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Level.Seed = seed
	}
	if cfg.Level.Seed == 0 {
		cfg.Level.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(assets.Biomes().Names()...); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "seed", cfg.Level.Seed, "kind", cfg.Level.Kind, "biome", cfg.Level.Biome)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g, err := game.New(screen, cfg, logger)
	if err != nil {
		screen.Fini()
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// newLogger writes JSON logs to a rotating file, since the viewer owns the
// terminal.
func newLogger(c config.LogConfig) (*slog.Logger, func() error, error) {
	lvl, err := c.SlogLevel()
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	w := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), w.Close, nil
}
