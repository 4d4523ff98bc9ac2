package raster

import "testing"

func TestExtrapolatePlaneConstantAttributeHasZeroGradient(t *testing.T) {
	origin, dx, dy := extrapolatePlane(0, 0, 10, 0, 0, 10, 5, 5, 5)
	if dx != 0 || dy != 0 {
		t.Fatalf("constant attribute should have zero gradient, got dx=%v dy=%v", dx, dy)
	}
	if origin != 5 {
		t.Fatalf("constant attribute's origin should equal its value everywhere, got %v", origin)
	}
}

func TestExtrapolatePlaneRecoversLinearRamp(t *testing.T) {
	// a(x,y) = x: attribute values at (0,0),(10,0),(0,10) are 0,10,0.
	origin, dx, dy := extrapolatePlane(0, 0, 10, 0, 0, 10, 0, 10, 0)
	if dx < 0.999 || dx > 1.001 {
		t.Fatalf("expected dx=1 for a(x,y)=x, got %v", dx)
	}
	if dy < -0.001 || dy > 0.001 {
		t.Fatalf("expected dy=0 for a(x,y)=x, got %v", dy)
	}
	// Sample the plane back at (4,6) and compare to x==4.
	got := origin + dx*4 + dy*6
	if got < 3.999 || got > 4.001 {
		t.Fatalf("plane should reproduce a(4,6)=4, got %v", got)
	}
}

func TestExtrapolatePlaneDegenerateTriangleReturnsBaseValue(t *testing.T) {
	// Three collinear points: zero determinant.
	origin, dx, dy := extrapolatePlane(0, 0, 1, 0, 2, 0, 3, 4, 5)
	if dx != 0 || dy != 0 {
		t.Fatalf("degenerate triangle should yield a zero gradient, got dx=%v dy=%v", dx, dy)
	}
	if origin != 3 {
		t.Fatalf("degenerate triangle should fall back to the first vertex's value, got %v", origin)
	}
}
