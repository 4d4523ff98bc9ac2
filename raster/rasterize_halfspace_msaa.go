package raster

import (
	"math"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/shadercontract"
)

// msaaSampleCount is the number of samples per pixel in 4x MSAA.
const msaaSampleCount = 4

// msaaGridX is the supersample grid factor of the 4x MSAA layout: the four
// samples of a pixel form a 2x2 block addressed via SuperSampleOffset.
const msaaGridX = 2

// msaaSampleOffsets are the four fixed sub-pixel sample positions, relative
// to the pixel center, used by the 4x MSAA halfspace path.
var msaaSampleOffsets = [msaaSampleCount][2]float32{
	{0.375, -0.125},
	{-0.125, -0.375},
	{-0.375, 0.125},
	{0.125, 0.375},
}

// RasterizeHalfspaceMSAA rasterizes every triangle in call's range with the
// same edge-function top-left fill rule as RasterizeHalfspace, evaluated at
// four fixed sub-pixel sample offsets per pixel. Coverage is tracked as a
// 4-bit mask; the shader runs once per pixel, only if at least one sample
// is both covered and passes the depth test at that sample's own slot, and
// the resulting color/depth are written only to the samples in the
// coverage-and-depth-pass mask. color and depth must be sized as
// Resize(width, height, msaaSampleCount); samples are addressed via
// SuperSampleOffset with grid factor msaaGridX (a 2*width by 2*height grid).
func RasterizeHalfspaceMSAA(clipped []Vertex, call DrawCall, arena *shadercontract.Arena, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	shader, _ := arena.Get(call.Shader).(Shader)
	if shader == nil {
		return
	}

	for i := call.Start; i+2 < call.End; i += 3 {
		rasterizeTriangleMSAA(clipped[i], clipped[i+1], clipped[i+2], call, shader, tile, mipmapsEnabled, color, depth)
	}
}

func rasterizeTriangleMSAA(v0, v1, v2 Vertex, call DrawCall, shader Shader, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
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

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			var coverMask, passMask uint8
			var interps [msaaSampleCount]Vertex
			var invWs [msaaSampleCount]float32

			for s := 0; s < msaaSampleCount; s++ {
				px := float32(x) + 0.5 + msaaSampleOffsets[s][0]
				py := float32(y) + 0.5 + msaaSampleOffsets[s][1]

				w0, w1, w2, ok := coverage(edges, call.Cull, px, py)
				if !ok {
					continue
				}
				interp := barycentricBlend(v0, v1, v2, w0, w1, w2)
				interps[s] = interp
				invWs[s] = interp.Position[3]
				coverMask |= 1 << uint(s)

				sx, sy := sampleGridCoord(s)
				slot := depth.SuperSampleOffset(x*msaaGridX+sx, y*msaaGridX+sy, msaaGridX)
				if invWs[s] > depth.Data()[slot] {
					passMask |= 1 << uint(s)
				}
			}
			if coverMask == 0 || passMask == 0 {
				continue
			}

			rep := firstSetBit(passMask)
			interp := interps[rep]
			invW := invWs[rep]

			mipLevel := float32(0)
			if mipmapsEnabled && call.Texture != nil && call.Texture.MipCount() > 1 {
				px := float32(x) + 0.5
				py := float32(y) + 0.5
				mipLevel = sampleMipLevel(v0, v1, v2, px, py, px+1, py, px, py+1, call.Texture.Width(), call.Texture.Height())
			}

			frag := interp.Scale(1 / invW).NormalizeNormal()
			out, discard := shader.ProcessPixel(frag, mipLevel)
			if discard {
				continue
			}
			color32 := out.ToColor32()

			for s := 0; s < msaaSampleCount; s++ {
				if passMask&(1<<uint(s)) == 0 {
					continue
				}
				sx, sy := sampleGridCoord(s)
				gx := x*msaaGridX + sx
				gy := y*msaaGridX + sy
				depth.Data()[depth.SuperSampleOffset(gx, gy, msaaGridX)] = invWs[s]
				color.Data()[color.SuperSampleOffset(gx, gy, msaaGridX)] = color32
			}
		}
	}
}

// sampleGridCoord maps a sample index 0..3 to its (sx,sy) position in the
// 2x2 subsample grid packed by RenderBuffer.SuperSampleOffset.
func sampleGridCoord(s int) (sx, sy int) {
	return s % 2, s / 2
}

// firstSetBit returns the index of the lowest set bit in mask.
func firstSetBit(mask uint8) int {
	for i := 0; i < msaaSampleCount; i++ {
		if mask&(1<<uint(i)) != 0 {
			return i
		}
	}
	return 0
}
