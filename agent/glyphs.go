package agent

import (
	"github.com/gdamore/tcell/v2"

	"github.com/arclight-dev/mindmesh/cognition"
)

// phaseGlyphs maps each cognitive phase to the rune drawn for the agent.
var phaseGlyphs = map[cognition.Phase]rune{
	cognition.PhaseNone:     '·',
	cognition.PhasePerceive: '◈',
	cognition.PhaseRecall:   '◇',
	cognition.PhasePlan:     '◆',
	cognition.PhaseExecute:  '◉',
	cognition.PhaseEvaluate: '◎',
	cognition.PhaseLoop:     '↻',
}

// phaseColors maps each cognitive phase to the agent's base color. Kept in
// step with the wash ramps in the effects package so an agent and its wash
// read as the same hue.
var phaseColors = map[cognition.Phase]tcell.Color{
	cognition.PhaseNone:     tcell.NewRGBColor(110, 110, 118),
	cognition.PhasePerceive: tcell.NewRGBColor(51, 217, 242),
	cognition.PhaseRecall:   tcell.NewRGBColor(166, 115, 242),
	cognition.PhasePlan:     tcell.NewRGBColor(250, 191, 64),
	cognition.PhaseExecute:  tcell.NewRGBColor(77, 242, 115),
	cognition.PhaseEvaluate: tcell.NewRGBColor(89, 140, 250),
	cognition.PhaseLoop:     tcell.NewRGBColor(242, 102, 204),
}

// haloGlyphs index by uncertainty band, faint to loud.
var haloGlyphs = [...]rune{' ', '░', '▒', '▓'}

// GlyphForPhase returns the agent rune for a phase, idle dot for unknowns.
func GlyphForPhase(p cognition.Phase) rune {
	if g, ok := phaseGlyphs[p]; ok {
		return g
	}
	return phaseGlyphs[cognition.PhaseNone]
}

// ColorForPhase returns the base agent color for a phase, idle gray for
// unknowns.
func ColorForPhase(p cognition.Phase) tcell.Color {
	if c, ok := phaseColors[p]; ok {
		return c
	}
	return phaseColors[cognition.PhaseNone]
}

// HaloGlyph returns the uncertainty halo rune for a level in [0,1].
// Levels at or below 0.25 draw no halo.
func HaloGlyph(level float64) rune {
	switch {
	case level <= 0.25:
		return haloGlyphs[0]
	case level <= 0.5:
		return haloGlyphs[1]
	case level <= 0.75:
		return haloGlyphs[2]
	default:
		return haloGlyphs[3]
	}
}
