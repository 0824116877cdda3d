// Package logo rasterizes the brand mark: a shield carrying a ruled document,
// a padlock and a verification check.
package logo

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// DesignSize is the edge length of the grid all shape coordinates are
// expressed in. Output is scaled by size/DesignSize.
const DesignSize = 512

// Palette holds the brand colors.
type Palette struct {
	Primary color.RGBA
	Success color.RGBA
}

// DefaultPalette is the brand palette: primary #1e40af, success #10b981.
var DefaultPalette = Palette{
	Primary: color.RGBA{0x1e, 0x40, 0xaf, 0xff},
	Success: color.RGBA{0x10, 0xb9, 0x81, 0xff},
}

const (
	discAlpha     = 25  // ~10% opacity
	documentAlpha = 240 // white, slightly translucent
)

// Draw renders the logo into a new size×size image. size must be positive.
func Draw(size int, p Palette) *image.NRGBA {
	dc := gg.NewContext(size, size)
	scale := float64(size) / DesignSize
	center := float64(size) / 2
	// px truncates like integer pixel arithmetic on the design grid.
	px := func(v float64) float64 { return math.Trunc(v * scale) }
	stroke := func(v float64) float64 { return math.Max(px(v), 1) }

	primary := opaque(p.Primary, 0xff)

	// background disc
	r := px(240)
	dc.DrawCircle(center, center, r)
	dc.SetColor(opaque(p.Primary, discAlpha))
	dc.Fill()

	// shield
	shieldW := px(152)
	shieldH := px(250)
	shieldX := center - math.Floor(shieldW/2)
	shieldY := center - math.Floor(shieldH/2) + px(20)
	shield := []gg.Point{
		{X: shieldX + px(76), Y: shieldY},
		{X: shieldX, Y: shieldY + px(30)},
		{X: shieldX, Y: shieldY + shieldH - px(140)},
		{X: shieldX, Y: shieldY + shieldH - px(40)},
		{X: shieldX + math.Floor(shieldW/2), Y: shieldY + shieldH},
		{X: shieldX + shieldW, Y: shieldY + shieldH - px(40)},
		{X: shieldX + shieldW, Y: shieldY + shieldH - px(140)},
		{X: shieldX + shieldW, Y: shieldY + px(30)},
	}
	for i, pt := range shield {
		if i == 0 {
			dc.MoveTo(pt.X, pt.Y)
		} else {
			dc.LineTo(pt.X, pt.Y)
		}
	}
	dc.ClosePath()
	dc.SetColor(primary)
	dc.Fill()

	// document panel
	docX := shieldX + px(40)
	docY := shieldY + px(120)
	docW := px(72)
	docH := px(96)
	dc.DrawRoundedRectangle(docX, docY, docW, docH, px(4))
	dc.SetColor(color.NRGBA{255, 255, 255, documentAlpha})
	dc.Fill()

	// ruled lines
	lineStart := docX + px(20)
	lineEnd := docX + docW - px(20)
	lineMid := docX + px(60)
	dc.SetColor(primary)
	dc.SetLineCapButt()
	for _, l := range []struct {
		y, x2, w float64
	}{
		{docY + px(20), lineEnd, stroke(3)},
		{docY + px(40), lineEnd, stroke(2)},
		{docY + px(60), lineMid, stroke(2)},
	} {
		dc.SetLineWidth(l.w)
		dc.DrawLine(lineStart, l.y, l.x2, l.y)
		dc.Stroke()
	}

	// lock body
	lockX := docX + px(36)
	lockY := docY + px(80)
	lockW := px(40)
	lockH := px(32)
	dc.DrawRoundedRectangle(lockX, lockY, lockW, lockH, px(2))
	dc.Fill()

	// shackle: upper half of an ellipse above the body
	shackleR := px(8)
	shackleY := lockY - px(12)
	left := lockX + px(12)
	right := lockX + lockW - px(12)
	dc.NewSubPath()
	dc.DrawEllipticalArc((left+right)/2, shackleY, (right-left)/2, shackleR, math.Pi, 2*math.Pi)
	dc.SetLineWidth(stroke(4))
	dc.Stroke()

	// checkmark
	x1, y1 := shieldX+px(20), shieldY+shieldH-px(40)
	x2, y2 := shieldX+px(40), shieldY+shieldH-px(20)
	x3, y3 := shieldX+shieldW-px(20), shieldY+shieldH-px(80)
	dc.SetColor(opaque(p.Success, 0xff))
	dc.SetLineWidth(stroke(12))
	dc.MoveTo(x1, y1)
	dc.LineTo(x2, y2)
	dc.LineTo(x3, y3)
	dc.Stroke()

	return ToNRGBA(dc.Image())
}

func opaque(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, a}
}

// ToNRGBA returns img as straight-alpha RGBA, converting when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
