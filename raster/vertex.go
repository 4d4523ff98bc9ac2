// Package raster implements the vertex pipeline and the three rasterizer
// modes (scanline, halfspace, halfspace-MSAA) that turn a transformed,
// clipped triangle stream into shaded framebuffer samples.
package raster

// Vertex is the one algebraic entity that flows through the whole pipeline:
// a position in 4D homogeneous clip space, a 3D normal, a 2D texture
// coordinate, and a 3D world-space position carried for lighting. Every
// arithmetic operator below is defined componentwise across all four
// attributes, so any affine combination of vertices (clip intersection,
// barycentric blend, scanline lerp) is itself a well-formed Vertex.
type Vertex struct {
	Position [4]float32
	Normal   [3]float32
	TexCoord [2]float32
	WorldPos [3]float32
}

// Add returns the componentwise sum of two vertices.
func (v Vertex) Add(o Vertex) Vertex {
	var r Vertex
	for i := range v.Position {
		r.Position[i] = v.Position[i] + o.Position[i]
	}
	for i := range v.Normal {
		r.Normal[i] = v.Normal[i] + o.Normal[i]
	}
	for i := range v.TexCoord {
		r.TexCoord[i] = v.TexCoord[i] + o.TexCoord[i]
	}
	for i := range v.WorldPos {
		r.WorldPos[i] = v.WorldPos[i] + o.WorldPos[i]
	}
	return r
}

// Sub returns the componentwise difference v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	var r Vertex
	for i := range v.Position {
		r.Position[i] = v.Position[i] - o.Position[i]
	}
	for i := range v.Normal {
		r.Normal[i] = v.Normal[i] - o.Normal[i]
	}
	for i := range v.TexCoord {
		r.TexCoord[i] = v.TexCoord[i] - o.TexCoord[i]
	}
	for i := range v.WorldPos {
		r.WorldPos[i] = v.WorldPos[i] - o.WorldPos[i]
	}
	return r
}

// Scale returns v with every attribute multiplied by s.
func (v Vertex) Scale(s float32) Vertex {
	var r Vertex
	for i := range v.Position {
		r.Position[i] = v.Position[i] * s
	}
	for i := range v.Normal {
		r.Normal[i] = v.Normal[i] * s
	}
	for i := range v.TexCoord {
		r.TexCoord[i] = v.TexCoord[i] * s
	}
	for i := range v.WorldPos {
		r.WorldPos[i] = v.WorldPos[i] * s
	}
	return r
}

// Lerp returns the affine combination v + (o-v)*t, the basis for every
// clip-plane intersection and scanline edge interpolation in the pipeline.
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	return v.Add(o.Sub(v).Scale(t))
}

// NormalizeNormal returns v with its Normal attribute rescaled to unit
// length. A zero-length normal is left unchanged. Used once per fragment,
// after perspective postdivide, at the pixel-shader boundary.
func (v Vertex) NormalizeNormal() Vertex {
	n := v.Normal
	lenSq := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
	if lenSq == 0 {
		return v
	}
	inv := invSqrt(lenSq)
	v.Normal = [3]float32{n[0] * inv, n[1] * inv, n[2] * inv}
	return v
}
