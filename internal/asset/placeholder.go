package asset

import (
	"hash/fnv"
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// PlaceholderColor picks a stable named colour for an asset path.
func PlaceholderColor(name string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	return colornames.Map[colornames.Names[int(h.Sum32()%uint32(len(colornames.Names)))]]
}

// Placeholder draws a w×h diamond of c, used when an asset file is absent.
func Placeholder(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / cx
			dy := (float64(y) + 0.5 - cy) / cy
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx+dy <= 1 {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// PlaceholderStrip lays out n placeholder frames in one row. Each frame is a
// little smaller than the previous one so the animation is visible.
func PlaceholderStrip(w, h, n int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w*n, h))
	for i := 0; i < n; i++ {
		fw := w - i*w/(n+1)
		fh := h - i*h/(n+1)
		frame := Placeholder(fw, fh, c)
		ox := i*w + (w-fw)/2
		oy := (h - fh) / 2
		for y := 0; y < fh; y++ {
			for x := 0; x < fw; x++ {
				img.Set(ox+x, oy+y, frame.At(x, y))
			}
		}
	}
	return img
}
