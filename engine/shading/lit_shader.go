// Package shading holds the concrete per-object Shader implementations
// used by the demo scene: a lit shader that samples a texture and sums
// every scene light's contribution, and an unlit shader for
// self-illuminated geometry such as a sky dome.
package shading

import (
	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/common"
	"github.com/oxy-go/swrast/raster"
	"github.com/oxy-go/swrast/shadercontract"
)

// LitShader transforms vertices by the object's model-view-projection
// matrix, transforms normals by the inverse-transpose model matrix, and
// sums every scene light's Apply contribution against the sampled texture
// color during pixel shading.
type LitShader struct {
	mtxMVP    [16]float32
	mtxModel  [16]float32
	mtxNormal [16]float32
	eyePos    [3]float32
	lights    []raster.LightSource

	tex            raster.Texture
	enableLighting bool
}

var _ raster.Shader = &LitShader{}

// NewLitShader returns a LitShader with lighting enabled by default.
func NewLitShader() *LitShader {
	return &LitShader{enableLighting: true}
}

// SetLightingEnabled toggles whether ProcessPixel sums light contributions
// or returns the raw texture sample.
func (s *LitShader) SetLightingEnabled(enabled bool) {
	s.enableLighting = enabled
}

func (s *LitShader) Prepare(scene raster.SceneView, object raster.ObjectView) {
	s.mtxModel = object.ModelMatrix()
	vp := scene.ViewProjectionMatrix()
	common.Mul4(s.mtxMVP[:], vp[:], s.mtxModel[:])

	var inv [16]float32
	if !common.Invert4(inv[:], s.mtxModel[:]) {
		common.Identity(inv[:])
	}
	s.mtxNormal = transpose3(inv)

	ex, ey, ez := scene.EyePosition()
	s.eyePos = [3]float32{ex, ey, ez}
	s.lights = scene.Lights()
	s.tex = object.Texture()
}

func (s *LitShader) ProcessVertex(in raster.Vertex) raster.Vertex {
	var out raster.Vertex
	out.Position = transformPoint4(s.mtxMVP, [3]float32{in.Position[0], in.Position[1], in.Position[2]})
	out.Normal = transformDir3(s.mtxNormal, in.Normal)
	out.TexCoord = in.TexCoord
	wp := transformPoint4(s.mtxModel, [3]float32{in.Position[0], in.Position[1], in.Position[2]})
	out.WorldPos = [3]float32{wp[0] / wp[3], wp[1] / wp[3], wp[2] / wp[3]}
	return out
}

func (s *LitShader) ProcessPixel(in raster.Vertex, mipLevel float32) (colorformat.Color, bool) {
	var tex colorformat.Color
	if s.tex != nil {
		tex = s.tex.Sample(in.TexCoord[0], in.TexCoord[1], mipLevel)
	} else {
		tex = colorformat.Color{R: 1, G: 1, B: 1, A: 1}
	}

	if !s.enableLighting {
		return tex, false
	}

	var lr, lg, lb float32
	for _, lt := range s.lights {
		r, g, b := lt.Apply(in.WorldPos, in.Normal, s.eyePos)
		lr += r
		lg += g
		lb += b
	}
	return colorformat.Color{R: tex.R * lr, G: tex.G * lg, B: tex.B * lb, A: tex.A}, false
}

// CaptureInto value-copies the shader (every field is a plain value or
// slice header) into the frame's arena. Every tile worker reads the copy
// for its own band, so ProcessPixel leaves the shader's fields unchanged.
func (s *LitShader) CaptureInto(a *shadercontract.Arena) shadercontract.Handle {
	copy := *s
	return a.Put(&copy)
}

func transpose3(m [16]float32) [16]float32 {
	var out [16]float32
	out[0], out[1], out[2] = m[0], m[4], m[8]
	out[4], out[5], out[6] = m[1], m[5], m[9]
	out[8], out[9], out[10] = m[2], m[6], m[10]
	out[15] = 1
	return out
}

func transformPoint4(m [16]float32, p [3]float32) [4]float32 {
	return [4]float32{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
		m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15],
	}
}

func transformDir3(m [16]float32, v [3]float32) [3]float32 {
	return [3]float32{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2],
	}
}
