package raster

// extrapolatePlane solves the 2D barycentric system for one scalar vertex
// attribute component across a screen-space triangle (x0,y0),(x1,y1),
// (x2,y2) with per-vertex values a0,a1,a2, via Cramer's rule on the two
// edge vectors from v0. Because every predivided vertex attribute is
// affine over the triangle, the result is a plane: origin is the value at
// screen coordinate (0,0), and (dx,dy) is the constant per-pixel gradient.
// sampleMipLevel solves it for each shaded pixel to get exact per-pixel
// attribute derivatives for mip-level selection without recomputing
// barycentric weights at every neighbor sample.
func extrapolatePlane(x0, y0, x1, y1, x2, y2, a0, a1, a2 float32) (origin, dx, dy float32) {
	e1x, e1y := x1-x0, y1-y0
	e2x, e2y := x2-x0, y2-y0
	da1 := a1 - a0
	da2 := a2 - a0

	det := e1x*e2y - e1y*e2x
	if det == 0 {
		return a0, 0, 0
	}
	invDet := 1 / det
	dx = (da1*e2y - da2*e1y) * invDet
	dy = (da2*e1x - da1*e2x) * invDet
	origin = a0 - dx*x0 - dy*y0
	return origin, dx, dy
}
