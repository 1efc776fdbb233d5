// Package config holds the runtime tunables for both games: built-in defaults,
// an optional TOML file, environment overrides, and validation.
package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/lixenwraith/grid-arcade/blocks"
	"github.com/lixenwraith/grid-arcade/constants"
	"github.com/lixenwraith/grid-arcade/grid"
	"github.com/lixenwraith/grid-arcade/input"
	"github.com/lixenwraith/grid-arcade/snake"
)

// Game names accepted by the -game flag and the config file
const (
	GameSnake  = "snake"
	GameBlocks = "blocks"
)

// Config is the full runtime configuration
type Config struct {
	// Game is empty to show the picker
	Game  string `toml:"game"`
	Seed  uint64 `toml:"seed"`
	Debug bool   `toml:"debug"`

	Audio  AudioConfig  `toml:"audio"`
	Snake  SnakeConfig  `toml:"snake"`
	Blocks BlocksConfig `toml:"blocks"`
	Keys   KeysConfig   `toml:"keys"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// SnakeConfig holds snake field geometry and pacing. Zero MaxRow or MaxCol
// sizes that axis to the terminal.
type SnakeConfig struct {
	MaxRow          int           `toml:"max_row"`
	MaxCol          int           `toml:"max_col"`
	InitialInterval time.Duration `toml:"initial_interval"`
	MinInterval     time.Duration `toml:"min_interval"`
	SpeedFactor     float64       `toml:"speed_factor"`
	FoodScore       int           `toml:"food_score"`
}

// BlocksConfig holds board geometry and level pacing
type BlocksConfig struct {
	Width         int           `toml:"width"`
	Height        int           `toml:"height"`
	BaseFall      time.Duration `toml:"base_fall"`
	FallStep      time.Duration `toml:"fall_step"`
	MinFall       time.Duration `toml:"min_fall"`
	LinesPerLevel int           `toml:"lines_per_level"`
	LineScore     int           `toml:"line_score"`
	PaletteSize   int           `toml:"palette_size"`
}

// KeysConfig maps key names to action names per game, layered over the defaults
type KeysConfig struct {
	Snake  map[string]string `toml:"snake"`
	Blocks map[string]string `toml:"blocks"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constants.AudioDefaultVolume,
		},
		Snake: SnakeConfig{
			InitialInterval: constants.SnakeInitialInterval,
			MinInterval:     constants.SnakeMinInterval,
			SpeedFactor:     constants.SnakeSpeedFactor,
			FoodScore:       constants.SnakeFoodScore,
		},
		Blocks: BlocksConfig{
			Width:         constants.BlocksWidth,
			Height:        constants.BlocksHeight,
			BaseFall:      constants.BlocksBaseFall,
			FallStep:      constants.BlocksFallStep,
			MinFall:       constants.BlocksMinFall,
			LinesPerLevel: constants.BlocksLinesPerLevel,
			LineScore:     constants.BlocksLineScore,
			PaletteSize:   constants.BlocksPaletteSize,
		},
	}
}

// Validate reports every invalid setting, not just the first
func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	switch c.Game {
	case "", GameSnake, GameBlocks:
	default:
		add("game: unknown game %q (want %q or %q)", c.Game, GameSnake, GameBlocks)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio.volume: %v outside [0, 1]", c.Audio.Volume)
	}

	s := c.Snake
	// A field needs at least a 2x2 interior to hold the snake and its food
	if s.MaxRow != 0 && s.MaxRow < 3 {
		add("snake.max_row: %d too small (min 3)", s.MaxRow)
	}
	if s.MaxCol != 0 && s.MaxCol < 3 {
		add("snake.max_col: %d too small (min 3)", s.MaxCol)
	}
	if s.MaxRow < 0 || s.MaxCol < 0 {
		add("snake: negative field size")
	}
	if s.InitialInterval <= 0 {
		add("snake.initial_interval: must be positive")
	}
	if s.MinInterval <= 0 {
		add("snake.min_interval: must be positive")
	}
	if s.MinInterval > s.InitialInterval {
		add("snake.min_interval: %v exceeds initial_interval %v", s.MinInterval, s.InitialInterval)
	}
	if s.SpeedFactor <= 0 || s.SpeedFactor > 1 {
		add("snake.speed_factor: %v outside (0, 1]", s.SpeedFactor)
	}
	if s.FoodScore < 0 {
		add("snake.food_score: must not be negative")
	}

	b := c.Blocks
	// Four columns fit the widest piece; the spawn anchor sits at width/2-2
	if b.Width < 4 {
		add("blocks.width: %d too small (min 4)", b.Width)
	}
	if b.Height < 4 {
		add("blocks.height: %d too small (min 4)", b.Height)
	}
	if b.BaseFall <= 0 || b.MinFall <= 0 {
		add("blocks: fall intervals must be positive")
	}
	if b.FallStep < 0 {
		add("blocks.fall_step: must not be negative")
	}
	if b.MinFall > b.BaseFall {
		add("blocks.min_fall: %v exceeds base_fall %v", b.MinFall, b.BaseFall)
	}
	if b.LinesPerLevel <= 0 {
		add("blocks.lines_per_level: must be positive")
	}
	if b.LineScore < 0 {
		add("blocks.line_score: must not be negative")
	}
	if b.PaletteSize < 1 {
		add("blocks.palette_size: must be at least 1")
	}

	if _, err := input.ParseBindings(c.Keys.Snake); err != nil {
		result = multierror.Append(result, fmt.Errorf("keys.snake: %w", err))
	}
	if _, err := input.ParseBindings(c.Keys.Blocks); err != nil {
		result = multierror.Append(result, fmt.Errorf("keys.blocks: %w", err))
	}

	return result.ErrorOrNil()
}

// SnakeEngine builds engine rules for a field walled at the given size.
// Configured dimensions take precedence over the terminal-derived ones.
func (c *Config) SnakeEngine(maxRow, maxCol int) snake.Config {
	if c.Snake.MaxRow > 0 {
		maxRow = c.Snake.MaxRow
	}
	if c.Snake.MaxCol > 0 {
		maxCol = c.Snake.MaxCol
	}
	return snake.Config{
		Bounds:          grid.Bounds{MaxRow: maxRow, MaxCol: maxCol},
		InitialInterval: c.Snake.InitialInterval,
		MinInterval:     c.Snake.MinInterval,
		SpeedFactor:     c.Snake.SpeedFactor,
		FoodScore:       c.Snake.FoodScore,
	}
}

// BlocksEngine builds engine rules for the falling-block game
func (c *Config) BlocksEngine() blocks.Config {
	return blocks.Config{
		Width:         c.Blocks.Width,
		Height:        c.Blocks.Height,
		BaseFall:      c.Blocks.BaseFall,
		FallStep:      c.Blocks.FallStep,
		MinFall:       c.Blocks.MinFall,
		LinesPerLevel: c.Blocks.LinesPerLevel,
		LineScore:     c.Blocks.LineScore,
		PaletteSize:   c.Blocks.PaletteSize,
	}
}

// KeyTable returns the default bindings for game with configured overrides applied
func (c *Config) KeyTable(game string) (*input.KeyTable, error) {
	var kt *input.KeyTable
	var overrides map[string]string
	switch game {
	case GameSnake:
		kt, overrides = input.DefaultSnakeKeys(), c.Keys.Snake
	case GameBlocks:
		kt, overrides = input.DefaultBlocksKeys(), c.Keys.Blocks
	default:
		return nil, fmt.Errorf("unknown game %q", game)
	}

	override, err := input.ParseBindings(overrides)
	if err != nil {
		return nil, fmt.Errorf("keys.%s: %w", game, err)
	}
	kt.Merge(override)
	return kt, nil
}
