package effects

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNoneIsIdentityForAdd(t *testing.T) {
	in := Influence{Intensity: 0.5, Height: -0.2, Turbulence: 1.1}
	if got := in.Add(None); got != in {
		t.Errorf("None must be the identity: %+v", got)
	}
	if got := None.Add(in); got != in {
		t.Errorf("None must be the identity from the left: %+v", got)
	}
}

func TestAddIsCommutative(t *testing.T) {
	a := Influence{Intensity: 0.3, Height: 0.7, ColorR: 0.2, ColorWeight: 0.5}
	b := Influence{Intensity: 0.1, Turbulence: 0.4, ColorG: 0.6, ColorWeight: 0.2}
	if a.Add(b) != b.Add(a) {
		t.Errorf("Add must commute")
	}
}

func TestAddSumsChannels(t *testing.T) {
	a := Influence{Intensity: 1, Height: 2, Turbulence: 3}
	b := Influence{Intensity: 0.5, Height: -1, Turbulence: 0.25}
	got := a.Add(b)
	if got.Intensity != 1.5 || got.Height != 1 || got.Turbulence != 3.25 {
		t.Errorf("channel-wise sum wrong: %+v", got)
	}
}

func TestIsNone(t *testing.T) {
	if !None.IsNone() {
		t.Errorf("None must report IsNone")
	}
	if (Influence{}).IsNone() != true {
		t.Errorf("zero value must equal None structurally")
	}
	if (Influence{Intensity: 1e-12}).IsNone() {
		t.Errorf("nonzero influence must not be None")
	}
}

func TestTintNormalizes(t *testing.T) {
	in := tinted(None, colorful.Color{R: 1, G: 0.5, B: 0}, 2)
	c, ok := in.Tint()
	if !ok {
		t.Fatalf("expected a tint")
	}
	if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-0.5) > 1e-9 || math.Abs(c.B) > 1e-9 {
		t.Errorf("tint should normalize by weight, got %+v", c)
	}

	if _, ok := None.Tint(); ok {
		t.Errorf("None has no tint")
	}
}

func TestTintedIgnoresNonPositiveWeight(t *testing.T) {
	in := tinted(None, colorful.Color{R: 1}, 0)
	if !in.IsNone() {
		t.Errorf("zero-weight tint must contribute nothing, got %+v", in)
	}
}
