package shading

import (
	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/common"
	"github.com/oxy-go/swrast/raster"
	"github.com/oxy-go/swrast/shadercontract"
)

// UnlitShader transforms vertices by the object's model-view-projection
// matrix and samples the bound texture directly, with no lighting
// contribution. Used for self-illuminated geometry such as a sky dome.
type UnlitShader struct {
	mtxMVP [16]float32
	tex    raster.Texture
}

var _ raster.Shader = &UnlitShader{}

func NewUnlitShader() *UnlitShader {
	return &UnlitShader{}
}

func (s *UnlitShader) Prepare(scene raster.SceneView, object raster.ObjectView) {
	model := object.ModelMatrix()
	vp := scene.ViewProjectionMatrix()
	common.Mul4(s.mtxMVP[:], vp[:], model[:])
	s.tex = object.Texture()
}

func (s *UnlitShader) ProcessVertex(in raster.Vertex) raster.Vertex {
	var out raster.Vertex
	out.Position = transformPoint4(s.mtxMVP, [3]float32{in.Position[0], in.Position[1], in.Position[2]})
	out.TexCoord = in.TexCoord
	return out
}

func (s *UnlitShader) ProcessPixel(in raster.Vertex, mipLevel float32) (colorformat.Color, bool) {
	if s.tex == nil {
		return colorformat.Color{R: 1, G: 1, B: 1, A: 1}, false
	}
	return s.tex.Sample(in.TexCoord[0], in.TexCoord[1], mipLevel), false
}

func (s *UnlitShader) CaptureInto(a *shadercontract.Arena) shadercontract.Handle {
	copy := *s
	return a.Put(&copy)
}
