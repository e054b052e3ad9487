// Package config loads the game tuning file. The file is TOML and only needs
// to name the values it changes; everything else keeps its default.
//
//	crates = 5
//
//	[player.sound]
//	start = 40.0
//	stop = 20.0
//
//	[crate.bounds]
//	max_x = 1000.0
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"code.rocketnine.space/tslocum/skyraid/internal/entity"
)

var ErrInvalid = errors.New("invalid config")

// Window is the playfield and window setup.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Config is the complete game configuration.
type Config struct {
	Window Window  `toml:"window"`
	Crates int     `toml:"crates"`
	Volume float64 `toml:"volume"`

	Player entity.Tuning `toml:"player"`
	Crate  entity.Tuning `toml:"crate"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:  "Sky Raid",
			Width:  800,
			Height: 600,
		},
		Crates: 3,
		Volume: 0.8,
		Player: entity.DefaultPlayerTuning(),
		Crate:  entity.DefaultCrateTuning(),
	}
}

// Load reads name from fsys on top of the defaults.
func Load(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// LoadFile reads the configuration file at path.
func LoadFile(path string) (*Config, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Parse decodes a TOML document on top of the defaults. Unknown keys are
// rejected so typos do not go unnoticed.
func Parse(data string) (*Config, error) {
	c := Default()
	md, err := toml.Decode(data, c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the values can drive the game.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Crates < 0 {
		return fmt.Errorf("%w: crates %d", ErrInvalid, c.Crates)
	}
	if c.Volume < 0 {
		return fmt.Errorf("%w: volume %v", ErrInvalid, c.Volume)
	}
	if err := validateTuning("player", c.Player); err != nil {
		return err
	}
	if c.Player.BulletSpeed <= 0 {
		return fmt.Errorf("%w: player.bullet_speed %v", ErrInvalid, c.Player.BulletSpeed)
	}
	return validateTuning("crate", c.Crate)
}

func validateTuning(section string, t entity.Tuning) error {
	switch {
	case t.Sound.Stop > t.Sound.Start:
		return fmt.Errorf("%w: %s.sound.stop %v above start %v", ErrInvalid, section, t.Sound.Stop, t.Sound.Start)
	case t.Sound.LoopInterval <= 0:
		return fmt.Errorf("%w: %s.sound.loop_interval %v", ErrInvalid, section, t.Sound.LoopInterval)
	case t.Bounds.MinX >= t.Bounds.MaxX || t.Bounds.MinY >= t.Bounds.MaxY:
		return fmt.Errorf("%w: %s.bounds %+v", ErrInvalid, section, t.Bounds)
	case t.Nudge < 0:
		return fmt.Errorf("%w: %s.nudge %v", ErrInvalid, section, t.Nudge)
	case t.Explosion.Frames <= 0 || t.Explosion.FrameWidth <= 0 || t.Explosion.FrameHeight <= 0:
		return fmt.Errorf("%w: %s.explosion %d frames of %dx%d", ErrInvalid, section,
			t.Explosion.Frames, t.Explosion.FrameWidth, t.Explosion.FrameHeight)
	case t.ExplosionFrameDelay < 0:
		return fmt.Errorf("%w: %s.explosion_frame_delay %v", ErrInvalid, section, t.ExplosionFrameDelay)
	}
	return nil
}

// Cues returns every sound cue referenced by the configuration.
func (c *Config) Cues() []string {
	seen := make(map[string]bool)
	var cues []string
	for _, t := range []entity.Tuning{c.Player, c.Crate} {
		for _, cue := range []string{t.Cues.Start, t.Cues.Stop, t.Cues.Loop, t.Cues.Explosion} {
			if cue == "" || seen[cue] {
				continue
			}
			seen[cue] = true
			cues = append(cues, cue)
		}
	}
	return cues
}
