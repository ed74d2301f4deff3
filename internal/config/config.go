// Package config loads viewer and generator settings from a file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override: level.width is
// read from R3D_LEVEL_WIDTH.
const EnvPrefix = "R3D"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Level  LevelConfig  `mapstructure:"level"`
	View   ViewConfig   `mapstructure:"view"`
	Frame  FrameConfig  `mapstructure:"frame"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

type LevelConfig struct {
	Width       int      `mapstructure:"width"`
	Height      int      `mapstructure:"height"`
	Depth       int      `mapstructure:"depth"`
	Kind        string   `mapstructure:"kind"`
	Seed        int64    `mapstructure:"seed"`
	Biome       string   `mapstructure:"biome"`
	HasRoof     bool     `mapstructure:"has_roof"`
	FloorHeight float64  `mapstructure:"floor_height"`
	RoofHeight  float64  `mapstructure:"roof_height"`
	RoomTypes   []string `mapstructure:"room_types"`

	// Solids and Opaques list the tile symbols that block movement and
	// sight, one rune each. Void always blocks both.
	Solids  string `mapstructure:"solids"`
	Opaques string `mapstructure:"opaques"`
}

type ViewConfig struct {
	// Distance is how far sightlines reach, in world units.
	Distance     float64 `mapstructure:"distance"`
	PlayerRadius float64 `mapstructure:"player_radius"`
	MoveStep     float64 `mapstructure:"move_step"`
	TurnDegrees  float64 `mapstructure:"turn_degrees"`
}

// FrameConfig sets the frame rate and how much world building each frame
// may do.
type FrameConfig struct {
	Rate           int `mapstructure:"rate"`
	RoomsPerFrame  int `mapstructure:"rooms_per_frame"`
	RowsPerFrame   int `mapstructure:"rows_per_frame"`
	ChunksPerFrame int `mapstructure:"chunks_per_frame"`
}

type RenderConfig struct {
	DrawRoofs    bool   `mapstructure:"draw_roofs"`
	MinimapScale int    `mapstructure:"minimap_scale"`
	MinimapPath  string `mapstructure:"minimap_path"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("level.width", 64)
	v.SetDefault("level.height", 40)
	v.SetDefault("level.depth", 1)
	v.SetDefault("level.kind", "bsp")
	v.SetDefault("level.seed", 0)
	v.SetDefault("level.biome", "crypt")
	v.SetDefault("level.has_roof", true)
	v.SetDefault("level.floor_height", 0.0)
	v.SetDefault("level.roof_height", 20.0)
	v.SetDefault("level.room_types", []string{"library", "barracks", "lair", "shrine"})
	v.SetDefault("level.solids", "#")
	v.SetDefault("level.opaques", "#")

	v.SetDefault("view.distance", 200.0)
	v.SetDefault("view.player_radius", 3.0)
	v.SetDefault("view.move_step", 5.0)
	v.SetDefault("view.turn_degrees", 45.0)

	v.SetDefault("frame.rate", 30)
	v.SetDefault("frame.rooms_per_frame", 1)
	v.SetDefault("frame.rows_per_frame", 4)
	v.SetDefault("frame.chunks_per_frame", 1)

	v.SetDefault("render.draw_roofs", true)
	v.SetDefault("render.minimap_scale", 10)
	v.SetDefault("render.minimap_path", "minimap.png")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "roguelike3d.log")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Load reads the config file at path (YAML, TOML or JSON by extension) over
// the defaults, then applies R3D_* environment overrides. An empty path
// loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &c, nil
}

// Validate checks the config. When biomes is non-empty the level biome
// must be one of them.
func (c *Config) Validate(biomes ...string) error {
	invalid := func(key string, value any) error {
		return fmt.Errorf("%s = %v: %w", key, value, ErrInvalid)
	}
	switch {
	case c.Level.Width <= 0:
		return invalid("level.width", c.Level.Width)
	case c.Level.Height <= 0:
		return invalid("level.height", c.Level.Height)
	case c.Level.Depth < 0:
		return invalid("level.depth", c.Level.Depth)
	case c.Level.RoofHeight < c.Level.FloorHeight:
		return invalid("level.roof_height", c.Level.RoofHeight)
	case c.View.Distance <= 0:
		return invalid("view.distance", c.View.Distance)
	case c.View.PlayerRadius <= 0:
		return invalid("view.player_radius", c.View.PlayerRadius)
	case c.View.MoveStep <= 0:
		return invalid("view.move_step", c.View.MoveStep)
	case c.Frame.Rate <= 0:
		return invalid("frame.rate", c.Frame.Rate)
	case c.Frame.RoomsPerFrame <= 0:
		return invalid("frame.rooms_per_frame", c.Frame.RoomsPerFrame)
	case c.Frame.RowsPerFrame <= 0:
		return invalid("frame.rows_per_frame", c.Frame.RowsPerFrame)
	case c.Frame.ChunksPerFrame <= 0:
		return invalid("frame.chunks_per_frame", c.Frame.ChunksPerFrame)
	case c.Render.MinimapScale <= 0:
		return invalid("render.minimap_scale", c.Render.MinimapScale)
	}
	switch strings.ToLower(c.Level.Kind) {
	case "bsp", "static":
	default:
		return invalid("level.kind", c.Level.Kind)
	}
	if len(biomes) > 0 && !slices.ContainsFunc(biomes, func(b string) bool {
		return strings.EqualFold(b, c.Level.Biome)
	}) {
		return invalid("level.biome", c.Level.Biome)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return invalid("log.level", c.Log.Level)
	}
	return nil
}

// SlogLevel parses Level as a slog level name ("debug", "info", ...).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}
