// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize fills the outline into a w by h alpha mask. Path coordinates are
// scaled from the layout size to the image, with y = 0 on the middle row and
// positive levels drawn above it.
func (p Path) Rasterize(w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(p.Segments) == 0 || p.Width <= 0 || p.Height <= 0 || w <= 0 || h <= 0 {
		return dst
	}

	sx := float32(float64(w) / p.Width)
	sy := float32(float64(h) / p.Height)
	mid := float32(h) / 2

	tx := func(pt Point) (float32, float32) {
		return float32(pt.X) * sx, mid - float32(pt.Y)*sy
	}

	z := vector.NewRasterizer(w, h)
	z.MoveTo(tx(Point{}))
	for _, s := range p.Segments {
		cx, cy := tx(s.Control)
		ex, ey := tx(s.End)
		z.QuadTo(cx, cy, ex, ey)
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return dst
}
