package main

import (
	"image"
	"image/color"

	"github.com/Meshiest/go-dungeon/dungeon"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const (
	backdropTileSize = 16
	backdropRooms    = 60
	backdropSpeed    = 40 // pixels per second
)

var (
	colorSea   = colornames.Steelblue
	colorShore = colornames.Tan
	colorLand  = colornames.Darkolivegreen
)

// Backdrop is the terrain scrolling under the aircraft. The islands are the
// rooms of a generated dungeon seen from above.
type Backdrop struct {
	img    *ebiten.Image
	offset float64
	op     *ebiten.DrawImageOptions
}

// NewBackdrop generates a w×h tileable terrain image.
func NewBackdrop(w, h int) *Backdrop {
	size := h / backdropTileSize
	if w > h {
		size = w / backdropTileSize
	}
	d := dungeon.NewDungeon(size, backdropRooms)

	terrain := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			terrain.Set(x, y, terrainColor(d.Grid, x/backdropTileSize, y/backdropTileSize))
		}
	}

	return &Backdrop{
		img: ebiten.NewImageFromImage(terrain),
		op:  &ebiten.DrawImageOptions{},
	}
}

func terrainColor(grid [][]int, x, y int) color.Color {
	if !isLand(grid, x, y) {
		return colorSea
	}
	for _, n := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if !isLand(grid, x+n[0], y+n[1]) {
			return colorShore
		}
	}
	return colorLand
}

func isLand(grid [][]int, x, y int) bool {
	if x < 0 || x >= len(grid) || y < 0 || y >= len(grid[x]) {
		return false
	}
	return grid[x][y] != 0
}

// Update scrolls the terrain by dt seconds.
func (b *Backdrop) Update(dt float64) {
	_, h := b.img.Size()
	b.offset += backdropSpeed * dt
	for b.offset >= float64(h) {
		b.offset -= float64(h)
	}
}

// Draw renders the terrain into target, wrapping vertically.
func (b *Backdrop) Draw(target *ebiten.Image) {
	_, h := b.img.Size()

	b.op.GeoM.Reset()
	b.op.GeoM.Translate(0, b.offset)
	target.DrawImage(b.img, b.op)

	b.op.GeoM.Reset()
	b.op.GeoM.Translate(0, b.offset-float64(h))
	target.DrawImage(b.img, b.op)
}
