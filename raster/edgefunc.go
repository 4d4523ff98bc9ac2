package raster

// fillRuleEpsilon is the small constant added to an edge function's
// constant term to realize the top-left fill rule without a tie.
const fillRuleEpsilon = 1e-5

// edge holds one of a triangle's three edge functions E(p) = A*p.x +
// B*p.y + C, in both raw form (for barycentric weights) and front/back
// forms adjusted for the top-left fill rule (for the inside test).
type edge struct {
	A, B   float32
	C      float32
	CFront float32
	CBack  float32
}

// newEdge builds the edge function for the directed edge (va -> vb),
// applying the top-left fill-rule bump: a small positive epsilon is added
// to the front-facing constant term exactly when the edge is strictly
// non-top-left (dy>0, or dy==0 && dx<0), and twice that epsilon is
// subtracted from the bumped constant for the back-facing test, so the two
// tests sit at +eps and -eps, symmetric about the raw edge value.
func newEdge(vax, vay, vbx, vby float32) edge {
	dx := vbx - vax
	dy := vby - vay
	a := dy
	b := -dx
	c := dx*vay - dy*vax

	eps := float32(0)
	if dy > 0 || (dy == 0 && dx < 0) {
		eps = fillRuleEpsilon
	}
	return edge{A: a, B: b, C: c, CFront: c + eps, CBack: c + eps - 2*eps}
}

func (e edge) raw(px, py float32) float32 {
	return e.A*px + e.B*py + e.C
}

func (e edge) front(px, py float32) float32 {
	return e.A*px + e.B*py + e.CFront
}

func (e edge) back(px, py float32) float32 {
	return e.A*px + e.B*py + e.CBack
}

// triangleEdges returns the three cyclic edge functions of (v0,v1,v2):
// edge 0 over (v0,v1), edge 1 over (v1,v2), edge 2 over (v2,v0).
func triangleEdges(v0, v1, v2 Vertex) [3]edge {
	return [3]edge{
		newEdge(v0.Position[0], v0.Position[1], v1.Position[0], v1.Position[1]),
		newEdge(v1.Position[0], v1.Position[1], v2.Position[0], v2.Position[1]),
		newEdge(v2.Position[0], v2.Position[1], v0.Position[0], v0.Position[1]),
	}
}

// coverage evaluates the three edges at (px,py) per the triangle's cull
// mode and returns the barycentric weights (w0,w1,w2) and whether the
// point is covered. Weights are derived from the raw (unbumped) edge
// values so interpolation stays exactly barycentric; only the inside
// test uses the fill-rule-adjusted front/back values.
func coverage(edges [3]edge, cull CullMode, px, py float32) (w0, w1, w2 float32, ok bool) {
	frontIn := edges[0].front(px, py) > 0 && edges[1].front(px, py) > 0 && edges[2].front(px, py) > 0
	backIn := edges[0].back(px, py) < 0 && edges[1].back(px, py) < 0 && edges[2].back(px, py) < 0

	switch cull {
	case CullBack:
		ok = frontIn
	case CullFront:
		ok = backIn
	default:
		ok = frontIn || backIn
	}
	if !ok {
		return 0, 0, 0, false
	}

	// edge1 at (px,py) is proportional to the weight of v0 (the vertex
	// opposite edge 1, over v1->v2), edge2 to the weight of v1, edge0 to
	// the weight of v2, by construction of the cyclic edge order.
	raw0 := edges[1].raw(px, py)
	raw1 := edges[2].raw(px, py)
	raw2 := edges[0].raw(px, py)

	total := raw0 + raw1 + raw2
	if total == 0 {
		return 0, 0, 0, false
	}
	invTotal := 1 / total
	return raw0 * invTotal, raw1 * invTotal, raw2 * invTotal, true
}
