package shading

import (
	"testing"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/raster"
)

type fakeScene struct {
	lights []raster.LightSource
}

func (fakeScene) ViewProjectionMatrix() [16]float32 {
	return [16]float32{0: 1, 5: 1, 10: 1, 15: 1}
}
func (fakeScene) EyePosition() (float32, float32, float32) { return 0, 0, 5 }
func (s fakeScene) Lights() []raster.LightSource           { return s.lights }

type fakeObject struct {
	tex raster.Texture
}

func (fakeObject) ModelMatrix() [16]float32  { return [16]float32{0: 1, 5: 1, 10: 1, 15: 1} }
func (o fakeObject) Texture() raster.Texture { return o.tex }

type flatLight struct{ r, g, b float32 }

func (l flatLight) Apply(surfPos, surfNormal, eyePos [3]float32) (float32, float32, float32) {
	return l.r, l.g, l.b
}

type constTexture struct{ c colorformat.Color }

func (t constTexture) Sample(u, v, mipLevel float32) colorformat.Color { return t.c }
func (constTexture) MipCount() int                                    { return 1 }
func (constTexture) Width() int                                       { return 4 }
func (constTexture) Height() int                                      { return 4 }

func TestLitShaderSumsLightContributionsAgainstTexture(t *testing.T) {
	s := NewLitShader()
	tex := constTexture{c: colorformat.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}}
	obj := fakeObject{tex: tex}
	scene := fakeScene{lights: []raster.LightSource{flatLight{1, 1, 1}, flatLight{0.5, 0.5, 0.5}}}

	s.Prepare(scene, obj)
	out, discard := s.ProcessPixel(raster.Vertex{}, 0)
	if discard {
		t.Fatalf("lit shader should never discard")
	}
	if out.R < 0.74 || out.R > 0.76 {
		t.Fatalf("expected tex*sum(lights) == 0.5*1.5 == 0.75, got %v", out.R)
	}
}

func TestLitShaderWithLightingDisabledReturnsRawTexture(t *testing.T) {
	s := NewLitShader()
	s.SetLightingEnabled(false)
	tex := constTexture{c: colorformat.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}}
	obj := fakeObject{tex: tex}
	s.Prepare(fakeScene{}, obj)

	out, _ := s.ProcessPixel(raster.Vertex{}, 0)
	if out.R != 0.25 || out.G != 0.5 || out.B != 0.75 {
		t.Fatalf("disabled lighting should pass the texture sample through unchanged, got %v", out)
	}
}

func TestLitShaderProcessVertexAppliesMVP(t *testing.T) {
	s := NewLitShader()
	s.Prepare(fakeScene{}, fakeObject{})

	out := s.ProcessVertex(raster.Vertex{Position: [4]float32{1, 2, 3, 1}})
	if out.Position != [4]float32{1, 2, 3, 1} {
		t.Fatalf("identity MVP should leave position unchanged, got %v", out.Position)
	}
}

func TestUnlitShaderIgnoresLightsAndSamplesTextureDirectly(t *testing.T) {
	s := NewUnlitShader()
	tex := constTexture{c: colorformat.Color{R: 1, G: 0, B: 0, A: 1}}
	s.Prepare(fakeScene{}, fakeObject{tex: tex})

	out, discard := s.ProcessPixel(raster.Vertex{}, 0)
	if discard {
		t.Fatalf("unlit shader should never discard")
	}
	if out.R != 1 || out.G != 0 || out.B != 0 {
		t.Fatalf("unlit shader should return the raw texture sample, got %v", out)
	}
}

func TestUnlitShaderProcessVertexCarriesTexCoord(t *testing.T) {
	s := NewUnlitShader()
	s.Prepare(fakeScene{}, fakeObject{})

	in := raster.Vertex{Position: [4]float32{0, 0, 0, 1}, TexCoord: [2]float32{0.3, 0.7}}
	out := s.ProcessVertex(in)
	if out.TexCoord != [2]float32{0.3, 0.7} {
		t.Fatalf("texcoord should pass through unchanged, got %v", out.TexCoord)
	}
}
