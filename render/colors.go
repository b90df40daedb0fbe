package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arclight-dev/mindmesh/vmath"
)

// RgbBackground is the field background. Near-black blue so effect glows
// stay readable in both truecolor and 256-color terminals.
var RgbBackground = tcell.NewRGBColor(8, 10, 16)

// RgbGridDot is the faint resting color of unperturbed field samples.
var RgbGridDot = tcell.NewRGBColor(34, 38, 48)

// RgbFlow is the base color of inter-agent flow lines.
var RgbFlow = tcell.NewRGBColor(70, 86, 110)

// Scale multiplies a color's channels by f (clamped to [0,1] upward so hot
// spots can still saturate to white via Brighten).
func Scale(c tcell.Color, f float64) tcell.Color {
	f = vmath.Clamp01(f)
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*f),
		int32(float64(g)*f),
		int32(float64(b)*f),
	)
}

// Brighten pushes a color toward white by f in [0,1].
func Brighten(c tcell.Color, f float64) tcell.Color {
	f = vmath.Clamp01(f)
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(vmath.Lerp(float64(r), 255, f)),
		int32(vmath.Lerp(float64(g), 255, f)),
		int32(vmath.Lerp(float64(b), 255, f)),
	)
}

// BlendTint mixes a colorful tint into a base terminal color. weight 0
// leaves the base untouched, 1 replaces it.
func BlendTint(base tcell.Color, tint colorful.Color, weight float64) tcell.Color {
	weight = vmath.Clamp01(weight)
	if weight == 0 {
		return base
	}
	r, g, b := base.RGB()
	bc := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	mixed := bc.BlendRgb(tint, weight).Clamped()
	mr, mg, mb := mixed.RGB255()
	return tcell.NewRGBColor(int32(mr), int32(mg), int32(mb))
}
