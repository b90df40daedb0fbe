package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/arclight-dev/mindmesh/agent"
	"github.com/arclight-dev/mindmesh/vmath"
)

// AgentRenderer draws agents as phase-colored glyphs with uncertainty halos,
// flow lines between linked agents, and the status bar.
type AgentRenderer struct {
	Camera     vmath.Camera
	ShowLabels bool
}

// NewAgentRenderer returns an agent renderer sharing the field camera.
func NewAgentRenderer(cam vmath.Camera) *AgentRenderer {
	return &AgentRenderer{Camera: cam, ShowLabels: true}
}

// Render draws flows first, then agents on top.
func (r *AgentRenderer) Render(buf *Buffer, agents []*agent.Agent) {
	byID := make(map[uuid.UUID]*agent.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	for _, a := range agents {
		r.drawFlows(buf, a, byID, defaultStyle)
	}
	for _, a := range agents {
		r.drawAgent(buf, a, defaultStyle)
	}
}

func (r *AgentRenderer) drawAgent(buf *Buffer, a *agent.Agent, defaultStyle tcell.Style) {
	col, row, _, ok := r.Camera.Project(a.Pos, buf.Width(), buf.Height())
	if !ok {
		return
	}

	// Halo sits around the glyph when uncertainty is high
	if halo := agent.HaloGlyph(a.Uncertainty); halo != ' ' {
		haloColor := Scale(agent.ColorForPhase(a.Phase), 0.4)
		haloStyle := defaultStyle.Foreground(haloColor)
		buf.Set(col-1, row, halo, haloStyle)
		buf.Set(col+1, row, halo, haloStyle)
	}

	color := agent.ColorForPhase(a.Phase)
	// Idle agents sit dim; busy agents glow with their activity
	brightness := 0.55 + 0.45*vmath.Clamp01(a.Activity)
	style := defaultStyle.Foreground(Scale(color, brightness))
	if a.Working() {
		style = style.Bold(true)
	}
	buf.Set(col, row, agent.GlyphForPhase(a.Phase), style)

	if r.ShowLabels && a.Name != "" {
		label := runewidth.Truncate(a.Name, 10, "…")
		labelStyle := defaultStyle.Foreground(Scale(color, 0.6))
		x := col + 2
		for _, ch := range label {
			buf.Set(x, row, ch, labelStyle)
			x += runewidth.RuneWidth(ch)
		}
	}
}

// drawFlows draws a dotted line from a to each linked agent.
func (r *AgentRenderer) drawFlows(buf *Buffer, a *agent.Agent, byID map[uuid.UUID]*agent.Agent, defaultStyle tcell.Style) {
	c0, r0, _, ok0 := r.Camera.Project(a.Pos, buf.Width(), buf.Height())
	if !ok0 {
		return
	}
	for _, id := range a.Links {
		target, ok := byID[id]
		if !ok {
			continue
		}
		c1, r1, _, ok1 := r.Camera.Project(target.Pos, buf.Width(), buf.Height())
		if !ok1 {
			continue
		}
		drawDottedLine(buf, c0, r0, c1, r1, defaultStyle.Foreground(RgbFlow))
	}
}

// drawDottedLine plots every second point of a Bresenham line, skipping the
// endpoints so it never overwrites an agent glyph.
func drawDottedLine(buf *Buffer, x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	step := 0
	for {
		if x == x1 && y == y1 {
			break
		}
		if step > 0 && step%2 == 0 {
			buf.Set(x, y, '∙', style)
		}
		step++
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// RenderStatusBar draws the bottom diagnostic row.
func RenderStatusBar(buf *Buffer, agents, activeEffects int, fps float64) {
	row := buf.Height() - 1
	if row < 0 {
		return
	}
	text := fmt.Sprintf(" agents %d │ effects %d │ %.0f fps ", agents, activeEffects, fps)
	style := tcell.StyleDefault.
		Background(tcell.NewRGBColor(20, 24, 34)).
		Foreground(tcell.NewRGBColor(140, 150, 170))

	x := 0
	for _, ch := range text {
		if x >= buf.Width() {
			break
		}
		buf.Set(x, row, ch, style)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < buf.Width(); x++ {
		buf.Set(x, row, ' ', style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
