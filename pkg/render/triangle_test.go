package render

import (
	"math"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
)

func TestRenderModeRoundTrip(t *testing.T) {
	for m := Inherit; m <= TexturedOutline; m++ {
		got, err := ParseRenderMode(m.String())
		if err != nil {
			t.Fatalf("ParseRenderMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("got %v, want %v", got, m)
		}
	}

	if _, err := ParseRenderMode("phong"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if got := RenderMode(42).String(); got != "RenderMode(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRenderModePredicates(t *testing.T) {
	tests := []struct {
		mode                    RenderMode
		wire, textured, outline bool
	}{
		{GreyFilled, false, false, false},
		{GreyFilledOutline, false, false, true},
		{Wireframe, true, false, false},
		{WireframeRGB, true, false, false},
		{Textured, false, true, false},
		{TexturedOutline, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if tt.mode.IsWireframe() != tt.wire || tt.mode.IsTextured() != tt.textured || tt.mode.HasOutline() != tt.outline {
				t.Errorf("predicates = %v %v %v, want %v %v %v",
					tt.mode.IsWireframe(), tt.mode.IsTextured(), tt.mode.HasOutline(),
					tt.wire, tt.textured, tt.outline)
			}
		})
	}
}

func TestTriangleGeometry(t *testing.T) {
	tri := Tri(math3d.P(0, 0, 1), math3d.P(0, 1, 2), math3d.P(1, 1, 3))

	if got := tri.Depth(); math.Abs(got-2) > tol {
		t.Errorf("Depth() = %v, want 2", got)
	}
	if got := tri.Normal(); math.Abs(got.Len()-1) > tol {
		t.Errorf("Normal() = %v, want unit length", got)
	}
	if got := tri.SignedArea(); got != -1 {
		t.Errorf("SignedArea() = %v, want -1", got)
	}

	moved := tri.Transform(math3d.Translate(math3d.V3(1, 0, 0)))
	if moved.P[0] != math3d.P(1, 0, 1) || tri.P[0] != math3d.P(0, 0, 1) {
		t.Errorf("Transform mutated input or missed: %v / %v", moved.P[0], tri.P[0])
	}
}
