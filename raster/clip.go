package raster

// clipCapacity is the maximum polygon size the clippers ever produce: 3
// input vertices plus up to 6 intersection splits across all passes.
const clipCapacity = 9

// clipPolygon runs one Sutherland-Hodgman pass against a half-space
// defined by inside(v), using t(v0,v1) to find the crossing parameter for
// edges that change sign. The output replaces the input; both near/far
// and screen-edge clipping are built from this same routine.
func clipPolygon(poly []Vertex, inside func(Vertex) bool, t func(v0, v1 Vertex) float32) []Vertex {
	n := len(poly)
	if n == 0 {
		return poly
	}
	out := make([]Vertex, 0, clipCapacity)
	for i := 0; i < n; i++ {
		prev := poly[(i-1+n)%n]
		cur := poly[i]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn != prevIn {
			out = append(out, prev.Lerp(cur, t(prev, cur)))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

// ClipNearFar clips a triangle (or already-clipped polygon) against the
// homogeneous-space near plane (z >= 0) then far plane (z <= w), per
// §4.4.1. The result has at most 9 vertices.
func ClipNearFar(poly []Vertex) []Vertex {
	poly = clipPolygon(poly,
		func(v Vertex) bool { return v.Position[2] >= 0 },
		func(v0, v1 Vertex) float32 {
			z0 := v0.Position[2]
			z1 := v1.Position[2]
			return -z0 / (z1 - z0)
		},
	)
	poly = clipPolygon(poly,
		func(v Vertex) bool { return v.Position[2] <= v.Position[3] },
		func(v0, v1 Vertex) float32 {
			z0, w0 := v0.Position[2], v0.Position[3]
			z1, w1 := v1.Position[2], v1.Position[3]
			return (w0 - z0) / ((z1 - z0) - (w1 - w0))
		},
	)
	return poly
}

// ClipScreen runs the four Sutherland-Hodgman passes against the viewport
// rectangle [0,renderW] x [0,renderH], snapping every introduced vertex
// exactly onto the boundary it crossed to avoid reintroducing out-of-range
// coordinates via round-off, per §4.4.2.
func ClipScreen(poly []Vertex, renderW, renderH float32) []Vertex {
	poly = clipAxis(poly, 0, func(x float32) bool { return x >= 0 }, 0)
	poly = clipAxis(poly, 0, func(x float32) bool { return x <= renderW }, renderW)
	poly = clipAxis(poly, 1, func(y float32) bool { return y >= 0 }, 0)
	poly = clipAxis(poly, 1, func(y float32) bool { return y <= renderH }, renderH)
	return poly
}

// clipAxis clips against one boundary of a screen axis (0=x, 1=y),
// snapping the introduced vertex's coordinate exactly to boundary.
func clipAxis(poly []Vertex, axis int, inside func(c float32) bool, boundary float32) []Vertex {
	out := clipPolygon(poly,
		func(v Vertex) bool { return inside(v.Position[axis]) },
		func(v0, v1 Vertex) float32 {
			c0 := v0.Position[axis]
			c1 := v1.Position[axis]
			return (boundary - c0) / (c1 - c0)
		},
	)
	for i := range out {
		// Snap every output vertex whose coordinate lies within
		// almostEqual's tolerance of the boundary. This covers every vertex
		// introduced by this pass; an input vertex already that close is
		// snapped too, which is harmless and removes any round-off drift.
		if almostEqual(out[i].Position[axis], boundary) {
			out[i].Position[axis] = boundary
		}
	}
	return out
}

func almostEqual(a, b float32) bool {
	const eps = 1e-3
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
