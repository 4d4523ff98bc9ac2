package raster

import (
	"math"
	"testing"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/shadercontract"
)

// constColorShader is a minimal Shader that ignores every input and always
// emits a fixed color, used to isolate coverage/depth/fill-rule behavior
// from any real vertex/pixel transform.
type constColorShader struct {
	color colorformat.Color
}

func (s constColorShader) CaptureInto(a *shadercontract.Arena) shadercontract.Handle {
	return a.Put(s)
}
func (s constColorShader) Prepare(SceneView, ObjectView)   {}
func (s constColorShader) ProcessVertex(in Vertex) Vertex  { return in }
func (s constColorShader) ProcessPixel(Vertex, float32) (colorformat.Color, bool) {
	return s.color, false
}

var _ Shader = constColorShader{}

func newBuffers(w, h, samples int) (*framebuffer.RenderBuffer[colorformat.Color32], *framebuffer.RenderBuffer[float32]) {
	color := &framebuffer.RenderBuffer[colorformat.Color32]{}
	color.Resize(w, h, samples)
	depth := &framebuffer.RenderBuffer[float32]{}
	depth.Resize(w, h, samples)
	depth.Clear(0)
	return color, depth
}

func screenVertex(x, y, invW float32) Vertex {
	return Vertex{Position: [4]float32{x, y, 0, invW}}
}

// magenta is the spec's literal boundary-scenario triangle: (160,120),
// (480,120), (320,360), all w=1, magenta, in a 640x480 buffer.
func magentaTriangle() (Vertex, Vertex, Vertex) {
	return screenVertex(160, 120, 1), screenVertex(480, 120, 1), screenVertex(320, 360, 1)
}

func TestHalfspaceMagentaTriangleFillsInteriorOnly(t *testing.T) {
	v0, v1, v2 := magentaTriangle()
	arena := &shadercontract.Arena{}
	handle := constColorShader{color: colorformat.Color{R: 1, G: 0, B: 1, A: 1}}.CaptureInto(arena)

	color, depth := newBuffers(640, 480, 1)
	// In y-down screen space this vertex order makes every edge function
	// negative inside (back-facing), so CullFront is the mode that keeps it.
	call := DrawCall{Start: 0, End: 3, Cull: CullFront, Shader: handle}
	clipped := []Vertex{v0, v1, v2}

	RasterizeHalfspace(clipped, call, arena, Rect{0, 0, 640, 480}, true, color, depth)

	// The triangle's own centroid must be filled.
	cx, cy := 320, 200
	got := color.Data()[color.SampleOffset(cx, cy, 0)]
	if got.R != 255 || got.G != 0 || got.B != 255 {
		t.Fatalf("centroid not filled magenta: got %+v", got)
	}

	// A point well outside the triangle must remain clear (zero value).
	got = color.Data()[color.SampleOffset(10, 10, 0)]
	if got != (colorformat.Color32{}) {
		t.Fatalf("exterior point unexpectedly filled: got %+v", got)
	}
}

func TestHalfspaceDepthTestKeepsCloserFragment(t *testing.T) {
	arena := &shadercontract.Arena{}
	redHandle := constColorShader{color: colorformat.Color{R: 1, A: 1}}.CaptureInto(arena)
	greenHandle := constColorShader{color: colorformat.Color{G: 1, A: 1}}.CaptureInto(arena)

	color, depth := newBuffers(500, 500, 1)

	// Triangle A: quad (100,100)-(300,300), 1/w=2, split into two tris.
	a0, a1, a2 := screenVertex(100, 100, 2), screenVertex(300, 100, 2), screenVertex(100, 300, 2)
	a3, a4, a5 := screenVertex(300, 100, 2), screenVertex(300, 300, 2), screenVertex(100, 300, 2)
	clippedA := []Vertex{a0, a1, a2, a3, a4, a5}
	callA := DrawCall{Start: 0, End: 6, Cull: CullNone, Shader: redHandle}
	RasterizeHalfspace(clippedA, callA, arena, Rect{0, 0, 500, 500}, true, color, depth)

	// Triangle B: quad (200,200)-(400,400), 1/w=4 (closer), drawn second.
	b0, b1, b2 := screenVertex(200, 200, 4), screenVertex(400, 200, 4), screenVertex(200, 400, 4)
	b3, b4, b5 := screenVertex(400, 200, 4), screenVertex(400, 400, 4), screenVertex(200, 400, 4)
	clippedB := []Vertex{b0, b1, b2, b3, b4, b5}
	callB := DrawCall{Start: 0, End: 6, Cull: CullNone, Shader: greenHandle}
	RasterizeHalfspace(clippedB, callB, arena, Rect{0, 0, 500, 500}, true, color, depth)

	overlap := color.Data()[color.SampleOffset(250, 250, 0)]
	if overlap.G != 255 || overlap.R != 0 {
		t.Fatalf("overlap region should be green (closer): got %+v", overlap)
	}

	onlyA := color.Data()[color.SampleOffset(120, 120, 0)]
	if onlyA.R != 255 || onlyA.G != 0 {
		t.Fatalf("A-only region should be red: got %+v", onlyA)
	}

	onlyB := color.Data()[color.SampleOffset(380, 380, 0)]
	if onlyB.G != 255 || onlyB.R != 0 {
		t.Fatalf("B-only region should be green: got %+v", onlyB)
	}
}

func TestHalfspaceCullNoneMatchesBothWindings(t *testing.T) {
	arena := &shadercontract.Arena{}
	handle := constColorShader{color: colorformat.Color{R: 1, A: 1}}.CaptureInto(arena)

	frontColor, frontDepth := newBuffers(200, 200, 1)
	front := []Vertex{screenVertex(50, 50, 1), screenVertex(150, 50, 1), screenVertex(100, 150, 1)}
	RasterizeHalfspace(front, DrawCall{Start: 0, End: 3, Cull: CullNone, Shader: handle}, arena, Rect{0, 0, 200, 200}, true, frontColor, frontDepth)

	backColor, backDepth := newBuffers(200, 200, 1)
	back := []Vertex{screenVertex(100, 150, 1), screenVertex(150, 50, 1), screenVertex(50, 50, 1)}
	RasterizeHalfspace(back, DrawCall{Start: 0, End: 3, Cull: CullNone, Shader: handle}, arena, Rect{0, 0, 200, 200}, true, backColor, backDepth)

	for i := range frontColor.Data() {
		if frontColor.Data()[i] != backColor.Data()[i] {
			t.Fatalf("cull=None output differs by winding at sample %d: %+v vs %+v", i, frontColor.Data()[i], backColor.Data()[i])
		}
	}
}

func TestScanlineMatchesHalfspaceInterior(t *testing.T) {
	arena := &shadercontract.Arena{}
	handle := constColorShader{color: colorformat.Color{R: 1, A: 1}}.CaptureInto(arena)

	v0, v1, v2 := magentaTriangle()
	clipped := []Vertex{v0, v1, v2}
	call := DrawCall{Start: 0, End: 3, Cull: CullFront, Shader: handle}

	hsColor, hsDepth := newBuffers(640, 480, 1)
	RasterizeHalfspace(clipped, call, arena, Rect{0, 0, 640, 480}, true, hsColor, hsDepth)

	slColor, slDepth := newBuffers(640, 480, 1)
	RasterizeScanline(clipped, call, arena, Rect{0, 0, 640, 480}, true, slColor, slDepth)

	centroid := slColor.Data()[slColor.SampleOffset(320, 200, 0)]
	if centroid.R != 255 {
		t.Fatalf("scanline centroid not filled: got %+v", centroid)
	}
	if hs := hsColor.Data()[hsColor.SampleOffset(320, 200, 0)]; hs != centroid {
		t.Fatalf("scanline centroid %+v differs from halfspace centroid %+v", centroid, hs)
	}
}

// fakeMippedTexture is a minimal Texture stub with a configurable mip
// chain depth; Sample is never exercised since these tests read the
// mip level the rasterizer passes to the shader directly.
type fakeMippedTexture struct {
	w, h, mips int
}

func (t fakeMippedTexture) Sample(u, v, mipLevel float32) colorformat.Color { return colorformat.Color{} }
func (t fakeMippedTexture) MipCount() int                                  { return t.mips }
func (t fakeMippedTexture) Width() int                                     { return t.w }
func (t fakeMippedTexture) Height() int                                    { return t.h }

var _ Texture = fakeMippedTexture{}

// mipRecord pairs a shaded fragment's screen position with the mip level
// the rasterizer computed for it.
type mipRecord struct {
	x, y, mip float32
}

// mipRecordingShader captures every ProcessPixel call's position and mip
// level instead of shading, so a test can inspect the derivative-based
// mip level computed for a specific pixel.
type mipRecordingShader struct {
	records *[]mipRecord
}

func (s mipRecordingShader) CaptureInto(a *shadercontract.Arena) shadercontract.Handle {
	return a.Put(s)
}
func (s mipRecordingShader) Prepare(SceneView, ObjectView)  {}
func (s mipRecordingShader) ProcessVertex(in Vertex) Vertex { return in }
func (s mipRecordingShader) ProcessPixel(in Vertex, mipLevel float32) (colorformat.Color, bool) {
	*s.records = append(*s.records, mipRecord{x: in.Position[0], y: in.Position[1], mip: mipLevel})
	return colorformat.Color{}, false
}

var _ Shader = mipRecordingShader{}

// findMipRecord returns the record whose fragment position is closest to
// the given pixel center.
func findMipRecord(records []mipRecord, px, py float32) mipRecord {
	best := records[0]
	bestDist := float32(math.Inf(1))
	for _, r := range records {
		dx := r.x - px
		dy := r.y - py
		dist := dx*dx + dy*dy
		if dist < bestDist {
			bestDist = dist
			best = r
		}
	}
	return best
}

// TestScanlineMipLevelUsesGenuineVerticalDerivative constructs a triangle
// whose texture coordinate varies almost entirely along screen Y (u is
// constant everywhere; v has a small horizontal slope and a much larger
// vertical one), so a correct dy sample must dominate the mip level. If
// the vertical derivative were computed from a duplicate of the pixel's
// own UV (dy == 0) instead of a genuine next-scanline sample, the mip
// level would fall back to the much smaller horizontal-only derivative.
func TestScanlineMipLevelUsesGenuineVerticalDerivative(t *testing.T) {
	arena := &shadercontract.Arena{}
	var records []mipRecord
	handle := mipRecordingShader{records: &records}.CaptureInto(arena)

	v0 := Vertex{Position: [4]float32{0, 0, 0, 1}, TexCoord: [2]float32{0, 0}}
	v1 := Vertex{Position: [4]float32{200, 50, 0, 1}, TexCoord: [2]float32{0, 0}}
	v2 := Vertex{Position: [4]float32{0, 200, 0, 1}, TexCoord: [2]float32{0, 10}}
	clipped := []Vertex{v0, v1, v2}

	tex := fakeMippedTexture{w: 256, h: 256, mips: 8}
	call := DrawCall{Start: 0, End: 3, Cull: CullNone, Texture: tex, Shader: handle}

	color, depth := newBuffers(256, 256, 1)
	RasterizeScanline(clipped, call, arena, Rect{0, 0, 256, 256}, true, color, depth)

	if len(records) == 0 {
		t.Fatalf("no fragments shaded")
	}
	rec := findMipRecord(records, 20.5, 100.5)

	// dv/dy alone (0.05/px * 256 texels) already yields ~log2(12.8) ≈
	// 3.68; a dy == 0 bug would instead fall back to the horizontal
	// derivative alone (~1.68). 2.5 cleanly separates the two.
	const minExpectedMip = 2.5
	if rec.mip < minExpectedMip {
		t.Fatalf("mip level %.3f at (%.1f,%.1f) too low; vertical UV derivative appears to be zero", rec.mip, rec.x, rec.y)
	}
}

func TestHalfspaceMSAAEdgeResolvesToPartialCoverage(t *testing.T) {
	arena := &shadercontract.Arena{}
	handle := constColorShader{color: colorformat.Color{R: 1, A: 1}}.CaptureInto(arena)

	// A right triangle whose right edge runs vertically through x=10.5,
	// so the pixel at x=10 is half covered (left 2 samples in, right 2 out).
	tri := []Vertex{
		screenVertex(0, 0, 1),
		screenVertex(10.5, 0, 1),
		screenVertex(10.5, 20, 1),
	}
	// Every edge function is negative inside (back-facing in y-down screen
	// space), so CullFront keeps the triangle.
	call := DrawCall{Start: 0, End: 3, Cull: CullFront, Shader: handle}

	const grid = msaaSampleCount
	color := &framebuffer.RenderBuffer[colorformat.Color32]{}
	color.Resize(20, 20, msaaSampleCount)
	depth := &framebuffer.RenderBuffer[float32]{}
	depth.Resize(20, 20, msaaSampleCount)
	depth.Clear(0)

	RasterizeHalfspaceMSAA([]Vertex{tri[0], tri[1], tri[2]}, call, arena, Rect{0, 0, 20, 20}, true, color, depth)

	covered := 0
	for s := 0; s < grid; s++ {
		sx, sy := sampleGridCoord(s)
		c := color.Data()[color.SuperSampleOffset(10*msaaGridX+sx, 5*msaaGridX+sy, msaaGridX)]
		if c.R == 255 {
			covered++
		}
	}
	if covered == 0 || covered == grid {
		t.Fatalf("expected partial MSAA coverage at edge pixel, got %d/%d samples covered", covered, grid)
	}
}
