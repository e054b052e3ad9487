package main

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"os"
	"path"
	"runtime/pprof"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"code.rocketnine.space/tslocum/skyraid/internal/config"
	"code.rocketnine.space/tslocum/skyraid/internal/entity"
	"code.rocketnine.space/tslocum/skyraid/internal/sound"
	"code.rocketnine.space/tslocum/skyraid/internal/sprite"
)

var numberPrinter = message.NewPrinter(language.English)

const (
	ticksPerSecond = 60

	crateSpacing = 260
)

// game is a top-down aircraft shooter.
type game struct {
	w, h int
	cfg  *config.Config

	buffer   *sprite.BackBuffer
	backdrop *Backdrop
	assets   spriteAssets

	player *entity.Player
	crates []*entity.Crate

	cues       *sound.Switchboard
	closeAudio func()

	overlayImg *ebiten.Image
	op         *ebiten.DrawImageOptions

	tick int

	flashMessageText  string
	flashMessageUntil time.Time

	debugMode  bool
	cpuProfile *os.File

	quit atomic.Bool
}

// NewGame loads the configuration and every asset the level needs.
func NewGame(opts *options) (*game, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.LoadFile(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.crates >= 0 {
		cfg.Crates = opts.crates
	}

	fsys := os.DirFS(opts.dataDir)

	backend, closeAudio, err := newAudio(opts.audio, fsys, cfg.Volume, cfg.Cues())
	if err != nil {
		return nil, err
	}

	g := &game{
		w:          cfg.Window.Width,
		h:          cfg.Window.Height,
		cfg:        cfg,
		cues:       sound.NewSwitchboard(backend),
		closeAudio: closeAudio,
		debugMode:  opts.debugMode,

		op: &ebiten.DrawImageOptions{},
	}
	g.cues.SetMuted(opts.muteAudio)

	g.buffer = sprite.NewBackBuffer(g.w, g.h)
	g.backdrop = NewBackdrop(g.w, g.h)
	g.assets = spriteAssets{loader: &sprite.Loader{
		FS:              fsys,
		Target:          g.buffer,
		Placeholders:    opts.placeholders,
		PlaceholderSize: placeholderSize,
	}}

	debugBox := image.NewRGBA(image.Rect(0, 0, g.w, 200))
	g.overlayImg = ebiten.NewImageFromImage(debugBox)

	err = g.reset()
	if err != nil {
		return nil, err
	}

	return g, nil
}

func (g *game) flashMessage(message string) {
	log.Println(message)

	g.flashMessageText = message
	g.flashMessageUntil = time.Now().Add(3 * time.Second)
}

// reset releases the current level and builds a new one.
func (g *game) reset() error {
	log.Println("Starting a new game")

	g.release()
	g.tick = 0

	var err error
	g.player, err = entity.NewPlayer(g.assets, g.cues, g.cfg.Player)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	g.player.SetPosition(float64(g.w)/2, g.cfg.Player.Bounds.MaxY)

	for i := 0; i < g.cfg.Crates; i++ {
		c, err := entity.NewCrate(g.assets, g.cues, g.cfg.Crate)
		if err != nil {
			return fmt.Errorf("failed to create crate: %w", err)
		}
		c.SetPosition(float64(g.w+i*crateSpacing), g.cfg.Crate.Bounds.SpawnY(rand.Float64()))
		g.crates = append(g.crates, c)
	}
	return nil
}

func (g *game) release() {
	if g.player != nil {
		g.player.Close()
		g.player = nil
	}
	for _, c := range g.crates {
		c.Close()
	}
	g.crates = nil
}

// Layout is called when the game's layout changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// steering returns the direction bitmask of the held keys.
func steering() entity.Direction {
	var mask entity.Direction
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		mask |= entity.Left
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		mask |= entity.Right
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		mask |= entity.Forward
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		mask |= entity.Backward
	}
	return mask
}

// Update reads current user input and updates the game state.
func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() || g.quit.Load() {
		g.exit()
		return nil
	}

	dt := 1 / float64(ebiten.MaxTPS())

	// Move also pulls the aircraft back inside the playfield, so it runs
	// every tick even without input.
	g.player.Move(steering())

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if err := g.player.RotateLeft(); err != nil {
			g.flashMessage(fmt.Sprintf("ROTATION FAILED: %s", err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := g.player.RotateRight(); err != nil {
			g.flashMessage(fmt.Sprintf("ROTATION FAILED: %s", err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.Shoot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.player.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) && !g.player.Exploded() {
		g.player.Explode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		for _, c := range g.crates {
			if !c.Exploded() {
				c.Explode()
			}
		}
	}

	g.backdrop.Update(dt)
	for _, c := range g.crates {
		c.Drift()
		c.Update(dt)
	}
	g.player.Update(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		err := g.reset()
		if err != nil {
			return err
		}
		g.flashMessage("LEVEL RESTARTED")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.cues.SetMuted(!g.cues.Muted())
		if g.cues.Muted() {
			g.flashMessage("AUDIO MUTED")
		} else {
			g.flashMessage("AUDIO UNMUTED")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.debugMode = !g.debugMode
		if g.debugMode {
			g.flashMessage("DEBUG MODE ACTIVATED")
		} else {
			g.flashMessage("DEBUG MODE DEACTIVATED")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.cpuProfile == nil {
			g.flashMessage("CPU PROFILING STARTED")

			homeDir, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			g.cpuProfile, err = os.Create(path.Join(homeDir, "skyraid.prof"))
			if err != nil {
				return err
			}
			if err := pprof.StartCPUProfile(g.cpuProfile); err != nil {
				return err
			}
		} else {
			g.flashMessage("CPU PROFILING STOPPED")

			pprof.StopCPUProfile()
			g.cpuProfile.Close()
			g.cpuProfile = nil
		}
	}

	g.tick++
	return nil
}

func (g *game) drawText(target *ebiten.Image, y float64, scale float64, alpha float64, text string) {
	g.overlayImg.Clear()
	ebitenutil.DebugPrint(g.overlayImg, text)
	g.op.GeoM.Reset()
	g.op.GeoM.Scale(scale, scale)
	g.op.GeoM.Translate(float64(g.w/2)-(float64(len(text))*3*scale), y)
	g.op.ColorM.Scale(1, 1, 1, alpha)
	target.DrawImage(g.overlayImg, g.op)
	g.op.ColorM.Reset()
}

// Draw draws the game on the screen.
func (g *game) Draw(screen *ebiten.Image) {
	g.buffer.Clear()
	g.backdrop.Draw(g.buffer.Image())
	for _, c := range g.crates {
		c.Draw()
	}
	g.player.Draw()

	g.op.GeoM.Reset()
	screen.DrawImage(g.buffer.Image(), g.op)

	cueLabel := numberPrinter.Sprintf("%d", g.cues.Total())
	g.drawText(screen, 8, 3, 1.0, cueLabel)

	flashTime := g.flashMessageUntil.Sub(time.Now())
	if flashTime > 0 {
		alpha := flashTime.Seconds() * 4
		if alpha > 1 {
			alpha = 1
		}
		g.drawText(screen, float64(g.h-40), 2, alpha, g.flashMessageText)
	}

	if !g.debugMode {
		return
	}

	// Print game info.
	pos, vel := g.player.Position(), g.player.Velocity()
	g.overlayImg.Clear()
	ebitenutil.DebugPrint(g.overlayImg, fmt.Sprintf("POS  %.0f,%.0f\nVEL  %.1f\nSND  %s\nDIR  %s\nBOOM %t\nTPS  %0.0f\nFPS  %0.0f",
		pos.X, pos.Y, vel.Magnitude(), g.player.SoundState(), g.player.Facing(), g.player.Exploded(), ebiten.CurrentTPS(), ebiten.CurrentFPS()))
	g.op.GeoM.Reset()
	g.op.GeoM.Translate(3, 0)
	g.op.GeoM.Scale(2, 2)
	screen.DrawImage(g.overlayImg, g.op)
}

// requestExit asks the game loop to shut down on its next Update. It is safe
// to call from any goroutine.
func (g *game) requestExit() {
	g.quit.Store(true)
}

// exit releases everything and ends the process. Only the game loop calls it.
func (g *game) exit() {
	if g.cpuProfile != nil {
		pprof.StopCPUProfile()
		g.cpuProfile.Close()
	}
	g.release()
	g.closeAudio()
	os.Exit(0)
}
