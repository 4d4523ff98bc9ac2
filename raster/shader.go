package raster

import (
	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/shadercontract"
)

// SceneView is the minimal read-only scene context a shader's Prepare
// method needs. Concrete scene implementations outside this package satisfy
// it structurally.
type SceneView interface {
	// ViewProjectionMatrix returns the camera's combined view-projection
	// matrix, column-major.
	ViewProjectionMatrix() [16]float32

	// EyePosition returns the camera's world-space position.
	EyePosition() (x, y, z float32)

	// Lights returns every light source registered for this frame; a
	// disabled light is included and contributes zero from Apply.
	Lights() []LightSource
}

// LightSource is the minimal read-only lighting contribution a SceneView
// exposes to a shader's per-pixel shading step. The light package's Light
// satisfies it structurally.
type LightSource interface {
	// Apply returns this light's additive color contribution at one
	// surface point, given its world position, unit-length normal, and
	// the camera's world-space position.
	Apply(surfPos, surfNormal, eyePos [3]float32) (r, g, b float32)
}

// ObjectView is the minimal read-only per-object context a shader's
// Prepare method needs.
type ObjectView interface {
	// ModelMatrix returns the object's world model matrix, column-major.
	ModelMatrix() [16]float32

	// Texture returns the texture bound to this object, or nil, so a
	// shader's Prepare step can bind it for per-pixel sampling.
	Texture() Texture
}

// Shader is polymorphic over the four operations of the shader contract:
// bind per-object state, transform vertices, shade pixels, and capture a
// per-draw-call copy of itself for safe concurrent consumption by workers.
type Shader interface {
	shadercontract.Capturable

	// Prepare binds this frame's per-object state (matrices, eye position,
	// texture reference). Called on the main thread, before capture.
	Prepare(scene SceneView, object ObjectView)

	// ProcessVertex transforms an input vertex into clip space.
	ProcessVertex(in Vertex) Vertex

	// ProcessPixel shades one fragment. mipLevel is the derivative-based
	// mip level already selected by the rasterizer. Returning discard=true
	// skips the depth/color write for this sample entirely.
	ProcessPixel(in Vertex, mipLevel float32) (out colorformat.Color, discard bool)
}

// CullMode selects which winding(s) of a triangle's edge functions are
// considered front-facing and therefore rasterized.
type CullMode int

const (
	// CullBack discards triangles whose edge functions are all negative
	// (back-facing under the rasterizer's front-facing convention).
	CullBack CullMode = iota
	// CullFront discards triangles whose edge functions are all positive.
	CullFront
	// CullNone rasterizes triangles of either winding.
	CullNone
)

// DrawCall is the unit of work handed to the tile scheduler: a contiguous
// range in the clipped vertex stream, the cull mode and texture to apply,
// and a handle to the shader instance captured for this draw call. Built
// during the transform/clip pass, consumed read-only by every worker
// during the rasterize pass, and discarded at the end of the frame.
type DrawCall struct {
	Start, End int
	Cull       CullMode
	Texture    Texture
	Shader     shadercontract.Handle
}

// Texture is the minimal read-only sampling surface the rasterizer needs;
// the texture package's concrete Texture type satisfies it.
type Texture interface {
	// Sample returns the color at (u,v) using the texture's configured
	// filter mode, selecting mip level based on the supplied derivative
	// hint (0 if mipmaps are disabled or unavailable).
	Sample(u, v, mipLevel float32) colorformat.Color

	// MipCount returns the number of mip levels in the chain (at least 1).
	MipCount() int

	// Width returns the level-0 width in texels, used to scale texture
	// coordinate derivatives into texel units for mip selection.
	Width() int

	// Height returns the level-0 height in texels.
	Height() int
}
