package app

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/session"
	"gridsnake/internal/store"
	"gridsnake/pkg/snake"
)

// Config represents the command-line parameters shared by the snake hosts.
type Config struct {
	Preset      string
	Width       int
	Height      int
	Foods       int
	Interval    time.Duration
	InstantTurn bool
	Scale       int
	Seed        int64
	DataDir     string
	NoSave      bool
	Remote      string
	ASCII       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:      "classic",
		Foods:       -1,
		Interval:    500 * time.Millisecond,
		InstantTurn: true,
		Scale:       24,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "board preset ("+strings.Join(core.PresetNames(), ", ")+")")
	fs.IntVar(&c.Width, "width", c.Width, "grid width, overrides the preset")
	fs.IntVar(&c.Height, "height", c.Height, "grid height, overrides the preset")
	fs.IntVar(&c.Foods, "foods", c.Foods, "food items kept on the board, overrides the preset when not negative")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between ticks")
	fs.BoolVar(&c.InstantTurn, "instant-turn", c.InstantTurn, "move immediately on an accepted turn and restart the tick timer")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 picks one from the clock)")
	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory holding the high score (default: user config dir)")
	fs.BoolVar(&c.NoSave, "no-save", c.NoSave, "keep the high score in memory only")
	fs.StringVar(&c.Remote, "remote", c.Remote, "serve the websocket pad on this address, e.g. :8080")
	fs.BoolVar(&c.ASCII, "ascii", c.ASCII, "draw with ASCII instead of emoji")
}

// Board resolves the preset and any explicit overrides into grid dimensions
// and a food count.
func (c *Config) Board() (core.Preset, error) {
	p := core.Preset{}
	if c.Preset != "" {
		found, ok := core.Presets()[c.Preset]
		if !ok {
			return core.Preset{}, fmt.Errorf("%w: unknown preset %q", snake.ErrInvalidConfiguration, c.Preset)
		}
		p = found
	}
	if c.Width > 0 {
		p.Size.W = c.Width
	}
	if c.Height > 0 {
		p.Size.H = c.Height
	}
	if c.Foods >= 0 {
		p.Foods = c.Foods
	}
	if p.Size.W <= 0 || p.Size.H <= 0 {
		return core.Preset{}, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", snake.ErrInvalidConfiguration, p.Size.W, p.Size.H)
	}
	return p, nil
}

// Options resolves the configuration into session options. A zero seed is
// replaced with one derived from the clock.
func (c *Config) Options(logger *log.Logger) (session.Options, error) {
	board, err := c.Board()
	if err != nil {
		return session.Options{}, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return session.Options{
		Width:       board.Size.W,
		Height:      board.Size.H,
		Foods:       board.Foods,
		Interval:    c.Interval,
		InstantTurn: c.InstantTurn,
		Seed:        seed,
		Logger:      logger,
	}, nil
}

// Store opens the high-score store the configuration asks for.
func (c *Config) Store() (store.Store, error) {
	if c.NoSave {
		return &store.MemoryStore{}, nil
	}
	dir := c.DataDir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("locating data dir: %w", err)
		}
		dir = d
	}
	return store.NewFileStore(dir), nil
}

// NewSession builds a session from the configuration, logging to stderr.
func (c *Config) NewSession() (*session.Session, error) {
	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)
	opts, err := c.Options(logger)
	if err != nil {
		return nil, err
	}
	st, err := c.Store()
	if err != nil {
		return nil, err
	}
	return session.New(opts, st)
}
