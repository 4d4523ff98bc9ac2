package raster

import "github.com/oxy-go/swrast/shadercontract"

// FrustumTester reports whether a world-space bounding sphere is at least
// partially inside a camera's view frustum. The camera package's Camera
// satisfies this via CanSee.
type FrustumTester interface {
	CanSee(cx, cy, cz, radius float32) bool
}

// BuildFrame runs the vertex pipeline over every drawable in submission
// order: frustum-cull, invoke the vertex shader, near/far clip, perspective
// divide and viewport transform, screen-edge clip, fan-triangulate, and
// capture one shader instance and DrawCall per object that emitted at
// least one triangle. It implements spec §4.4 steps 1-4.
//
// Parameters:
//   - scene: the read-only scene view passed to every shader's Prepare
//   - frustum: the camera's current frustum tester
//   - drawables: the scene's drawables, in submission order
//   - renderW, renderH: the render target dimensions in pixels
//   - arena: the per-frame shader capture arena; reset by the caller
//
// Returns:
//   - clipped: the flat, append-only clipped vertex stream (every three
//     consecutive vertices form one screen-space triangle)
//   - drawCalls: one DrawCall per drawable that survived culling and
//     clipping, in submission order
func BuildFrame(scene SceneView, frustum FrustumTester, drawables []Drawable, renderW, renderH float32, arena *shadercontract.Arena) (clipped []Vertex, drawCalls []DrawCall) {
	for _, obj := range drawables {
		cx, cy, cz, radius := obj.WorldBoundingSphere()
		if !frustum.CanSee(cx, cy, cz, radius) {
			continue
		}

		shader := obj.Shader()
		shader.Prepare(scene, obj)

		verts, indices := obj.Mesh()
		transformed := make([]Vertex, len(verts))
		for i, v := range verts {
			transformed[i] = shader.ProcessVertex(v)
		}

		start := len(clipped)
		var poly [clipCapacity]Vertex
		for i := 0; i+2 < len(indices); i += 3 {
			tri := poly[:0]
			tri = append(tri, transformed[indices[i]], transformed[indices[i+1]], transformed[indices[i+2]])

			tri = ClipNearFar(tri)
			if len(tri) < 3 {
				continue
			}
			for j := range tri {
				tri[j] = perspectiveDivideAndViewport(tri[j], renderW, renderH)
			}
			tri = ClipScreen(tri, renderW, renderH)
			if len(tri) < 3 {
				continue
			}
			clipped = appendFan(clipped, tri)
		}

		if len(clipped) > start {
			handle := shader.CaptureInto(arena)
			drawCalls = append(drawCalls, DrawCall{
				Start:   start,
				End:     len(clipped),
				Cull:    obj.CullMode(),
				Texture: obj.Texture(),
				Shader:  handle,
			})
		}
	}
	return clipped, drawCalls
}

// perspectiveDivideAndViewport implements spec §4.4 step b: divide every
// attribute by w (storing 1/w back into w), then map NDC (x,y) in
// [-1,1] to pixel space.
func perspectiveDivideAndViewport(v Vertex, renderW, renderH float32) Vertex {
	w := v.Position[3]
	zr := float32(1) / w
	v = v.Scale(zr)
	v.Position[3] = zr
	v.Position[0] = (v.Position[0] + 1) * 0.5 * renderW
	v.Position[1] = renderH - (v.Position[1]+1)*0.5*renderH
	return v
}

// appendFan fan-triangulates a convex polygon of up to 9 vertices into
// (v0, v_i, v_{i+1}) triangles and appends them to the clipped stream.
func appendFan(clipped []Vertex, poly []Vertex) []Vertex {
	for i := 1; i+1 < len(poly); i++ {
		clipped = append(clipped, poly[0], poly[i], poly[i+1])
	}
	return clipped
}
