package raster

import "testing"

func TestClipNearFarPassesFullyInsideTriangle(t *testing.T) {
	poly := []Vertex{
		{Position: [4]float32{-0.5, -0.5, 0.5, 1}},
		{Position: [4]float32{0.5, -0.5, 0.5, 1}},
		{Position: [4]float32{0, 0.5, 0.5, 1}},
	}
	out := ClipNearFar(poly)
	if len(out) != 3 {
		t.Fatalf("fully inside triangle should survive unchanged, got %d vertices", len(out))
	}
}

func TestClipNearFarDiscardsFullyBehindNear(t *testing.T) {
	poly := []Vertex{
		{Position: [4]float32{-0.5, -0.5, -1, 1}},
		{Position: [4]float32{0.5, -0.5, -1, 1}},
		{Position: [4]float32{0, 0.5, -1, 1}},
	}
	out := ClipNearFar(poly)
	if len(out) != 0 {
		t.Fatalf("triangle entirely behind the near plane should be fully clipped, got %d vertices", len(out))
	}
}

func TestClipNearFarSplitsStraddlingTriangle(t *testing.T) {
	// One vertex behind the near plane (z<0), two in front: expect a
	// quad (4 vertices) after near-clipping.
	poly := []Vertex{
		{Position: [4]float32{-0.5, -0.5, 0.5, 1}},
		{Position: [4]float32{0.5, -0.5, 0.5, 1}},
		{Position: [4]float32{0, 0.5, -0.5, 1}},
	}
	out := ClipNearFar(poly)
	if len(out) != 4 {
		t.Fatalf("straddling triangle should clip to a quad, got %d vertices", len(out))
	}
	for _, v := range out {
		if v.Position[2] < -1e-5 {
			t.Fatalf("clipped vertex still behind near plane: z=%v", v.Position[2])
		}
	}
}

func TestClipScreenTotalityInsideViewport(t *testing.T) {
	poly := []Vertex{
		{Position: [4]float32{10, 10, 0, 1}},
		{Position: [4]float32{100, 10, 0, 1}},
		{Position: [4]float32{50, 100, 0, 1}},
	}
	out := ClipScreen(poly, 640, 480)
	if len(out) != 3 {
		t.Fatalf("fully inside-viewport triangle should survive unchanged, got %d vertices", len(out))
	}
}

func TestClipScreenDiscardsFullyOutside(t *testing.T) {
	poly := []Vertex{
		{Position: [4]float32{-100, -100, 0, 1}},
		{Position: [4]float32{-50, -100, 0, 1}},
		{Position: [4]float32{-75, -50, 0, 1}},
	}
	out := ClipScreen(poly, 640, 480)
	if len(out) != 0 {
		t.Fatalf("fully outside viewport triangle should be fully clipped, got %d vertices", len(out))
	}
}

func TestClipScreenSnapsToExactBoundary(t *testing.T) {
	poly := []Vertex{
		{Position: [4]float32{-10, 100, 0, 1}},
		{Position: [4]float32{10, 100, 0, 1}},
		{Position: [4]float32{10, 120, 0, 1}},
	}
	out := ClipScreen(poly, 640, 480)
	for _, v := range out {
		if v.Position[0] == 0 {
			return
		}
	}
	t.Fatalf("expected an introduced vertex snapped exactly to x=0, got %+v", out)
}
