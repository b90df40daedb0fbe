package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arclight-dev/mindmesh/effects"
	"github.com/arclight-dev/mindmesh/vmath"
)

// heightGlyphs ramp from a resting dot to a full block as the surface rises.
var heightGlyphs = [...]rune{'·', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// dipGlyph marks cells pushed below the resting surface.
const dipGlyph = '▿'

const (
	// turbulenceNoiseFreq is the spatial frequency of the jitter field
	turbulenceNoiseFreq = 0.7

	// turbulenceTimeScale animates the jitter field over time
	turbulenceTimeScale = 3.0

	// heightGlyphStep is the height covered by one glyph level
	heightGlyphStep = 0.25
)

// FieldRenderer samples the ground plane through the camera and draws the
// aggregated effect influence: height as block glyphs, intensity as
// brightness, washes as tint, turbulence as positional jitter.
type FieldRenderer struct {
	Camera  vmath.Camera
	Extent  float64 // Half-width of the sampled square, world units
	Step    float64 // Sample spacing, world units
	GridDot int     // Draw a resting dot every Nth sample (0 = never)
}

// NewFieldRenderer returns a field renderer over a 2*extent square plane.
func NewFieldRenderer(extent float64) *FieldRenderer {
	return &FieldRenderer{
		Camera:  vmath.NewCamera(),
		Extent:  extent,
		Step:    1.0,
		GridDot: 2,
	}
}

// Render draws one frame of the field into buf. now is the animation clock
// in seconds, used only to scroll the turbulence noise.
func (f *FieldRenderer) Render(buf *Buffer, mgr *effects.Manager, now float64) {
	if f.Step <= 0 {
		return
	}
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	i := 0
	for x := -f.Extent; x <= f.Extent; x += f.Step {
		for z := -f.Extent; z <= f.Extent; z += f.Step {
			i++
			in := mgr.InfluenceAt(x, z)
			if in.IsNone() {
				// Sparse resting grid keeps the plane legible when idle
				if f.GridDot > 0 && i%f.GridDot == 0 {
					col, row, _, ok := f.Camera.Project(vmath.Vec3F{X: x, Z: z}, buf.Width(), buf.Height())
					if ok {
						buf.Set(col, row, '·', defaultStyle.Foreground(RgbGridDot))
					}
				}
				continue
			}

			f.drawSample(buf, x, z, in, now, defaultStyle)
		}
	}
}

func (f *FieldRenderer) drawSample(buf *Buffer, x, z float64, in effects.Influence, now float64, defaultStyle tcell.Style) {
	// Turbulence displaces the sample before projection, so jittered cells
	// wander around their true position frame to frame
	px, pz := x, z
	if in.Turbulence > 0 {
		n := vmath.ValueNoise2(
			x*turbulenceNoiseFreq+now*turbulenceTimeScale,
			z*turbulenceNoiseFreq-now*turbulenceTimeScale,
		)
		offset := (n - 0.5) * 2 * in.Turbulence
		px += offset
		pz -= offset
	}

	col, row, _, ok := f.Camera.Project(vmath.Vec3F{X: px, Y: in.Height, Z: pz}, buf.Width(), buf.Height())
	if !ok {
		return
	}

	glyph := glyphForHeight(in.Height)

	// Intensity lifts brightness from the resting dot color toward white
	color := Brighten(RgbGridDot, vmath.Clamp01(in.Intensity))
	if tint, hasTint := in.Tint(); hasTint {
		color = BlendTint(color, tint, vmath.Clamp01(in.ColorWeight))
	}

	buf.Set(col, row, glyph, defaultStyle.Foreground(color))
}

// glyphForHeight picks the block glyph for a surface displacement.
func glyphForHeight(h float64) rune {
	if h < 0 {
		return dipGlyph
	}
	level := int(h / heightGlyphStep)
	if level >= len(heightGlyphs) {
		level = len(heightGlyphs) - 1
	}
	return heightGlyphs[level]
}
