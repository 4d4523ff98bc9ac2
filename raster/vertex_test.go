package raster

import "testing"

func TestVertexLerpAtZeroAndOne(t *testing.T) {
	a := Vertex{Position: [4]float32{0, 0, 0, 1}, TexCoord: [2]float32{0, 0}}
	b := Vertex{Position: [4]float32{10, 20, 0, 1}, TexCoord: [2]float32{1, 1}}

	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp at t=0 should equal a, got %+v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp at t=1 should equal b, got %+v", got)
	}
	mid := a.Lerp(b, 0.5)
	if mid.Position[0] != 5 || mid.Position[1] != 10 {
		t.Fatalf("Lerp at t=0.5 should be the midpoint, got %+v", mid.Position)
	}
}

func TestVertexNormalizeNormalUnitLength(t *testing.T) {
	v := Vertex{Normal: [3]float32{3, 4, 0}}
	got := v.NormalizeNormal()
	lenSq := got.Normal[0]*got.Normal[0] + got.Normal[1]*got.Normal[1] + got.Normal[2]*got.Normal[2]
	if lenSq < 0.999 || lenSq > 1.001 {
		t.Fatalf("expected unit-length normal, got lenSq=%v", lenSq)
	}
}

func TestVertexNormalizeNormalLeavesZeroUnchanged(t *testing.T) {
	v := Vertex{Normal: [3]float32{0, 0, 0}}
	got := v.NormalizeNormal()
	if got.Normal != v.Normal {
		t.Fatalf("zero-length normal should be left unchanged, got %+v", got.Normal)
	}
}

func TestVertexAddSubRoundTrip(t *testing.T) {
	a := Vertex{Position: [4]float32{1, 2, 3, 4}}
	b := Vertex{Position: [4]float32{5, 6, 7, 8}}
	sum := a.Add(b)
	back := sum.Sub(b)
	if back != a {
		t.Fatalf("Add then Sub should round-trip, got %+v want %+v", back, a)
	}
}
