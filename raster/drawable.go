package raster

// Drawable is the minimal read-only view of one scene object the vertex
// pipeline needs: its world transform (via ObjectView), a triangle mesh
// of vertices, a texture reference, a shader reference, a cull mode, and
// a world-space bounding sphere for frustum culling.
type Drawable interface {
	ObjectView

	// Mesh returns the object's vertex buffer and triangle index list
	// (every three consecutive indices form one triangle).
	Mesh() (vertices []Vertex, indices []uint32)

	// WorldBoundingSphere returns the object's bounding sphere already
	// transformed into world space.
	WorldBoundingSphere() (cx, cy, cz, radius float32)

	// Shader returns the shader program bound to this object.
	Shader() Shader

	// Texture returns the texture bound to this object, or nil.
	Texture() Texture

	// CullMode returns the cull mode to apply to this object's triangles.
	CullMode() CullMode
}
