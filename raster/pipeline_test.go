package raster

import (
	"testing"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/shadercontract"
)

type fakeScene struct{}

func (fakeScene) ViewProjectionMatrix() [16]float32 { return [16]float32{1: 1, 5: 1, 10: 1, 15: 1} }
func (fakeScene) EyePosition() (float32, float32, float32) { return 0, 0, 0 }
func (fakeScene) Lights() []LightSource { return nil }

type fakeObject struct{}

func (fakeObject) ModelMatrix() [16]float32 { return [16]float32{1: 1, 5: 1, 10: 1, 15: 1} }
func (fakeObject) Texture() Texture         { return nil }

type passThroughShader struct{}

func (passThroughShader) CaptureInto(a *shadercontract.Arena) shadercontract.Handle {
	return a.Put(passThroughShader{})
}
func (passThroughShader) Prepare(SceneView, ObjectView)  {}
func (passThroughShader) ProcessVertex(in Vertex) Vertex { return in }
func (passThroughShader) ProcessPixel(Vertex, float32) (colorformat.Color, bool) {
	return colorformat.Color{}, false
}

type fakeDrawable struct {
	verts   []Vertex
	indices []uint32
}

func (fakeDrawable) ModelMatrix() [16]float32 { return [16]float32{1: 1, 5: 1, 10: 1, 15: 1} }
func (d fakeDrawable) Mesh() ([]Vertex, []uint32) { return d.verts, d.indices }
func (fakeDrawable) WorldBoundingSphere() (float32, float32, float32, float32) {
	return 0, 0, 0, 1
}
func (fakeDrawable) Shader() Shader          { return passThroughShader{} }
func (fakeDrawable) Texture() Texture        { return nil }
func (fakeDrawable) CullMode() CullMode      { return CullNone }

var _ Drawable = fakeDrawable{}

type alwaysVisible struct{}

func (alwaysVisible) CanSee(float32, float32, float32, float32) bool { return true }

type alwaysHidden struct{}

func (alwaysHidden) CanSee(float32, float32, float32, float32) bool { return false }

func triangleInClipSpace() []Vertex {
	return []Vertex{
		{Position: [4]float32{-0.5, -0.5, 0.5, 1}},
		{Position: [4]float32{0.5, -0.5, 0.5, 1}},
		{Position: [4]float32{0, 0.5, 0.5, 1}},
	}
}

func TestBuildFrameEmitsTriangleForVisibleDrawable(t *testing.T) {
	verts := triangleInClipSpace()
	d := fakeDrawable{verts: verts, indices: []uint32{0, 1, 2}}
	arena := &shadercontract.Arena{}

	clipped, calls := BuildFrame(fakeScene{}, alwaysVisible{}, []Drawable{d}, 640, 480, arena)

	if len(calls) != 1 {
		t.Fatalf("expected exactly one draw call, got %d", len(calls))
	}
	if len(clipped) != 3 {
		t.Fatalf("expected exactly one triangle (3 vertices) in the clipped stream, got %d", len(clipped))
	}
	call := calls[0]
	if call.Start != 0 || call.End != 3 {
		t.Fatalf("draw call range should span the emitted triangle, got [%d,%d)", call.Start, call.End)
	}
}

func TestBuildFrameSkipsFrustumCulledDrawable(t *testing.T) {
	verts := triangleInClipSpace()
	d := fakeDrawable{verts: verts, indices: []uint32{0, 1, 2}}
	arena := &shadercontract.Arena{}

	clipped, calls := BuildFrame(fakeScene{}, alwaysHidden{}, []Drawable{d}, 640, 480, arena)

	if len(calls) != 0 || len(clipped) != 0 {
		t.Fatalf("culled drawable should emit nothing, got %d calls, %d vertices", len(calls), len(clipped))
	}
}

func TestPerspectiveDivideAndViewportMapsNDCCenterToScreenCenter(t *testing.T) {
	v := Vertex{Position: [4]float32{0, 0, 0, 1}}
	got := perspectiveDivideAndViewport(v, 640, 480)
	if got.Position[0] != 320 || got.Position[1] != 240 {
		t.Fatalf("NDC origin should map to screen center, got (%v,%v)", got.Position[0], got.Position[1])
	}
	if got.Position[3] != 1 {
		t.Fatalf("w=1 should leave 1/w == 1, got %v", got.Position[3])
	}
}
