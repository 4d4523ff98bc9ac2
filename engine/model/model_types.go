package model

// BoundingSphere describes a conservative bounding volume for a mesh in
// object space, used by the frustum cull step of the vertex pipeline after
// being transformed into world space by the owning drawable's model matrix.
type BoundingSphere struct {
	// CenterX, CenterY, CenterZ is the sphere center in object space.
	CenterX, CenterY, CenterZ float32

	// Radius is the sphere radius in object space.
	Radius float32
}
