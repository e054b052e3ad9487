package config

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"code.rocketnine.space/tslocum/skyraid/internal/entity"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Player.Explosion.Frames != entity.PlayerExplosionFrames || c.Crate.Explosion.Frames != entity.CrateExplosionFrames {
		t.Fatalf("explosion frames = %d/%d", c.Player.Explosion.Frames, c.Crate.Explosion.Frames)
	}
}

func TestParseOverlay(t *testing.T) {
	c, err := Parse(`
crates = 5

[player.sound]
start = 40.0

[crate.bounds]
max_x = 1000.0

[crate.cues]
loop = ""
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Crates != 5 {
		t.Fatalf("crates = %d, want 5", c.Crates)
	}
	if c.Player.Sound.Start != 40 || c.Player.Sound.Stop != entity.StopSpeed {
		t.Fatalf("player sound = %+v, want start 40 and default stop", c.Player.Sound)
	}
	if c.Crate.Bounds.MaxX != 1000 || c.Crate.Bounds.MinX != entity.BoundsMinX {
		t.Fatalf("crate bounds = %+v", c.Crate.Bounds)
	}
	if c.Crate.Cues.Loop != "" || c.Crate.Cues.Start == "" {
		t.Fatalf("crate cues = %+v", c.Crate.Cues)
	}
	if c.Window.Width != 800 {
		t.Fatalf("window width = %d, want default 800", c.Window.Width)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown key", doc: "[player]\nnuge = 0.2\n"},
		{name: "inverted hysteresis", doc: "[crate.sound]\nstop = 50.0\n"},
		{name: "no loop interval", doc: "[player.sound]\nloop_interval = 0.0\n"},
		{name: "empty bounds", doc: "[player.bounds]\nmin_x = 800.0\n"},
		{name: "no explosion frames", doc: "[crate.explosion]\nframes = 0\n"},
		{name: "negative crates", doc: "crates = -1\n"},
		{name: "no bullet speed", doc: "[player]\nbullet_speed = 0.0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.doc); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse() error = %v, want %v", err, ErrInvalid)
			}
		})
	}

	if _, err := Parse("crates = "); err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse(syntax error) = %v, want a parse error", err)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"skyraid.toml": {Data: []byte("volume = 0.5\n")}}

	c, err := Load(fsys, "skyraid.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Volume != 0.5 {
		t.Fatalf("volume = %v, want 0.5", c.Volume)
	}

	if _, err := Load(fsys, "missing.toml"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestCues(t *testing.T) {
	c := Default()
	c.Crate.Cues.Explosion = "data/crate-explosion.wav"

	got := c.Cues()
	want := []string{"data/jet-start.wav", "data/jet-stop.wav", "data/jet-cabin.wav", "data/explosion.wav", "data/crate-explosion.wav"}
	if len(got) != len(want) {
		t.Fatalf("Cues() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Cues()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
