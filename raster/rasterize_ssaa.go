package raster

import (
	"math"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/shadercontract"
)

// RasterizeHalfspaceSSAA rasterizes every triangle in call's range into a
// supersampled, tile-packed buffer: color and depth must be sized with
// gridX*gridX samples per final pixel, addressed via
// framebuffer.RenderBuffer.SuperSampleOffset. Unlike RasterizeHalfspaceMSAA,
// which shares one shaded color across every sample in a pixel's coverage
// mask, every sample here is covered, depth-tested, and shaded
// independently, at its own position on a uniform gridX x gridX grid within
// the pixel.
func RasterizeHalfspaceSSAA(clipped []Vertex, call DrawCall, arena *shadercontract.Arena, tile Rect, gridX int, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	shader, _ := arena.Get(call.Shader).(Shader)
	if shader == nil {
		return
	}

	for i := call.Start; i+2 < call.End; i += 3 {
		rasterizeTriangleSSAA(clipped[i], clipped[i+1], clipped[i+2], call, shader, tile, gridX, mipmapsEnabled, color, depth)
	}
}

// RasterizeScanlineSSAA rasterizes with the same per-sample edge-function
// test as RasterizeHalfspaceSSAA. Supersampling needs coverage at a grid of
// fractional sample positions within each pixel, which the edge-function
// test serves directly; the row/span traversal that distinguishes the
// single-sample Scanline path from Halfspace has no equivalent at
// fractional sample positions, so both rasterization modes share this path
// once SSAA is enabled.
func RasterizeScanlineSSAA(clipped []Vertex, call DrawCall, arena *shadercontract.Arena, tile Rect, gridX int, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	RasterizeHalfspaceSSAA(clipped, call, arena, tile, gridX, mipmapsEnabled, color, depth)
}

func rasterizeTriangleSSAA(v0, v1, v2 Vertex, call DrawCall, shader Shader, tile Rect, gridX int, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	minX := int(math.Floor(float64(min3(v0.Position[0], v1.Position[0], v2.Position[0]))))
	maxX := int(math.Ceil(float64(max3(v0.Position[0], v1.Position[0], v2.Position[0]))))
	minY := int(math.Floor(float64(min3(v0.Position[1], v1.Position[1], v2.Position[1]))))
	maxY := int(math.Ceil(float64(max3(v0.Position[1], v1.Position[1], v2.Position[1]))))

	if minX < tile.X {
		minX = tile.X
	}
	if minY < tile.Y {
		minY = tile.Y
	}
	if maxX > tile.X+tile.W {
		maxX = tile.X + tile.W
	}
	if maxY > tile.Y+tile.H {
		maxY = tile.Y + tile.H
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	edges := triangleEdges(v0, v1, v2)
	step := 1 / float32(gridX)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			for sy := 0; sy < gridX; sy++ {
				py := float32(y) + step*(float32(sy)+0.5)
				for sx := 0; sx < gridX; sx++ {
					px := float32(x) + step*(float32(sx)+0.5)

					w0, w1, w2, ok := coverage(edges, call.Cull, px, py)
					if !ok {
						continue
					}

					interp := barycentricBlend(v0, v1, v2, w0, w1, w2)
					invW := interp.Position[3]

					gx, gy := x*gridX+sx, y*gridX+sy
					slot := depth.SuperSampleOffset(gx, gy, gridX)
					if invW <= depth.Data()[slot] {
						continue
					}

					mipLevel := float32(0)
					if mipmapsEnabled && call.Texture != nil && call.Texture.MipCount() > 1 {
						mipLevel = sampleMipLevel(v0, v1, v2, px, py, px+1, py, px, py+1, call.Texture.Width(), call.Texture.Height())
					}

					frag := interp.Scale(1 / invW).NormalizeNormal()
					out, discard := shader.ProcessPixel(frag, mipLevel)
					if discard {
						continue
					}

					depth.Data()[slot] = invW
					color.Data()[color.SuperSampleOffset(gx, gy, gridX)] = out.ToColor32()
				}
			}
		}
	}
}
