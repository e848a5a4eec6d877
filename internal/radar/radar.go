// Package radar rasterizes the competency radar to a bitmap for embedding
// into generated dossier pages.
package radar

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/jonathan/dossier-builder/internal/types"
)

const (
	// DefaultSize is the canvas edge length in pixels
	DefaultSize = 512

	outerRadiusRatio = 0.35
	innerRadiusRatio = 0.10
	labelOffset      = 18

	minAlpha   = 0.15
	alphaRange = 0.65
)

// Options controls rasterization
type Options struct {
	Size int // canvas edge length in pixels; DefaultSize when zero
}

// Render draws the ring radar for the given categories: one equal angular
// wedge per category, outer radius scaled by the category's average level,
// fill opacity rising with the level. An empty category list yields a blank
// canvas.
func Render(categories []types.CompetencyCategory, opts Options) image.Image {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	dc := gg.NewContext(size, size)
	center := float64(size) / 2
	outer := float64(size) * outerRadiusRatio
	inner := float64(size) * innerRadiusRatio

	if len(categories) == 0 {
		return dc.Image()
	}

	wedgeAngle := 2 * math.Pi / float64(len(categories))
	angle := -math.Pi / 2

	for _, cat := range categories {
		start := angle
		end := angle + wedgeAngle
		avg := cat.AverageLevel()
		segment := wedgeRadius(avg, inner, outer)

		dc.NewSubPath()
		dc.DrawArc(center, center, segment, start, end)
		dc.DrawArc(center, center, inner, end, start)
		dc.ClosePath()

		if avg > 0 {
			r, g, b, ok := parseHexColor(cat.Color)
			if ok {
				dc.SetRGBA(r, g, b, wedgeAlpha(avg))
			} else {
				dc.SetRGBA(0.2, 0.2, 0.2, wedgeAlpha(avg))
			}
			dc.FillPreserve()
			if ok {
				dc.SetRGB(r, g, b)
			}
			dc.SetLineWidth(1.5)
			dc.Stroke()
		} else {
			dc.SetHexColor("#F8FAFC")
			dc.Fill()
		}
		angle = end
	}

	// Grid rings at each quarter level
	dc.SetHexColor("#E2E8F0")
	dc.SetLineWidth(1)
	for i := 1; i <= types.MaxCompetencyLevel; i++ {
		r := inner + (outer-inner)*float64(i)/float64(types.MaxCompetencyLevel)
		dc.DrawCircle(center, center, r)
		dc.Stroke()
	}

	// Spokes at category boundaries
	angle = -math.Pi / 2
	for range categories {
		dc.DrawLine(
			center+math.Cos(angle)*inner,
			center+math.Sin(angle)*inner,
			center+math.Cos(angle)*outer,
			center+math.Sin(angle)*outer,
		)
		dc.Stroke()
		angle += wedgeAngle
	}

	// Hub disc punched out on top
	dc.DrawCircle(center, center, inner)
	dc.SetHexColor("#FFFFFF")
	dc.FillPreserve()
	dc.SetHexColor("#CBD5E1")
	dc.SetLineWidth(1)
	dc.Stroke()

	// Category labels at each wedge's angular midpoint
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetHexColor("#334155")
	angle = -math.Pi/2 + wedgeAngle/2
	for _, cat := range categories {
		labelRadius := outer + labelOffset
		x := center + math.Cos(angle)*labelRadius
		y := center + math.Sin(angle)*labelRadius
		dc.DrawStringAnchored(cat.Name, x, y, 0.5, 0.5)
		angle += wedgeAngle
	}

	return dc.Image()
}

// RenderPNG renders the radar and encodes it as PNG bytes.
func RenderPNG(categories []types.CompetencyCategory, opts Options) ([]byte, error) {
	img := Render(categories, opts)
	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding radar png: %w", err)
	}
	return buf.Bytes(), nil
}

// wedgeRadius interpolates the wedge's outer edge between the inner and
// outer radius bounds. Level 0 stays at the inner bound, the maximum level
// reaches the outer bound.
func wedgeRadius(avgLevel, inner, outer float64) float64 {
	if avgLevel < 0 {
		avgLevel = 0
	}
	if avgLevel > types.MaxCompetencyLevel {
		avgLevel = types.MaxCompetencyLevel
	}
	return inner + (outer-inner)*(avgLevel/types.MaxCompetencyLevel)
}

// wedgeAlpha maps the average level to fill opacity.
func wedgeAlpha(avgLevel float64) float64 {
	return minAlpha + (avgLevel/types.MaxCompetencyLevel)*alphaRange
}

// parseHexColor parses a #RRGGBB color into 0..1 components.
func parseHexColor(s string) (r, g, b float64, ok bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	var ri, gi, bi int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return 0, 0, 0, false
	}
	return float64(ri) / 255, float64(gi) / 255, float64(bi) / 255, true
}
