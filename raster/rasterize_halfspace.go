package raster

import (
	"math"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/shadercontract"
	"github.com/oxy-go/swrast/texture"
)

// RasterizeHalfspace rasterizes every triangle in clipped[start:end] into
// tile using the edge-function (halfspace) test with the top-left fill
// rule, one sample per pixel. For each covered pixel it recovers the true
// (post-divide) fragment, depth-tests against depth using 1/w (larger is
// closer), selects a derivative-based mip level via extrapolatePlane, and
// shades with the draw call's captured shader.
//
// Parameters:
//   - clipped: the full frame's clipped vertex stream; every three
//     consecutive vertices in [call.Start, call.End) form one triangle
//   - call: the draw call naming the triangle range, cull mode, texture,
//     and shader handle to use
//   - arena: the frame's shader capture arena, used to fetch call.Shader
//   - tile: the pixel rectangle this worker owns; pixels outside it are
//     skipped even if covered by a triangle
//   - color, depth: the worker's target render buffers (samples == 1)
func RasterizeHalfspace(clipped []Vertex, call DrawCall, arena *shadercontract.Arena, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	shader, _ := arena.Get(call.Shader).(Shader)
	if shader == nil {
		return
	}

	for i := call.Start; i+2 < call.End; i += 3 {
		rasterizeTriangle(clipped[i], clipped[i+1], clipped[i+2], call, shader, tile, mipmapsEnabled, color, depth)
	}
}

func rasterizeTriangle(v0, v1, v2 Vertex, call DrawCall, shader Shader, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
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
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5

			w0, w1, w2, ok := coverage(edges, call.Cull, px, py)
			if !ok {
				continue
			}

			interp := barycentricBlend(v0, v1, v2, w0, w1, w2)
			invW := interp.Position[3]

			idx := depth.SampleOffset(x, y, 0)
			if invW <= depth.Data()[idx] {
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

			depth.Data()[idx] = invW
			color.Data()[color.SampleOffset(x, y, 0)] = out.ToColor32()
		}
	}
}

// barycentricBlend returns w0*v0 + w1*v1 + w2*v2, the affine blend that is
// exact for every predivided vertex attribute across the triangle.
func barycentricBlend(v0, v1, v2 Vertex, w0, w1, w2 float32) Vertex {
	return v0.Scale(w0).Add(v1.Scale(w1)).Add(v2.Scale(w2))
}

// sampleMipLevel derivative-samples the triangle's predivided TexCoord and
// invW (carried in Position[3]) at a pixel center and its +1x/+1y
// neighbors via extrapolatePlane, recovers the true (post-divide) texture
// coordinates at all three points, and feeds them to the standard
// derivative-based mip selection rule.
func sampleMipLevel(v0, v1, v2 Vertex, px0, py0, px1, py1, px2, py2 float32, texW, texH int) float32 {
	x0, y0 := v0.Position[0], v0.Position[1]
	x1, y1 := v1.Position[0], v1.Position[1]
	x2, y2 := v2.Position[0], v2.Position[1]

	uOrigin, uDx, uDy := extrapolatePlane(x0, y0, x1, y1, x2, y2, v0.TexCoord[0], v1.TexCoord[0], v2.TexCoord[0])
	vOrigin, vDx, vDy := extrapolatePlane(x0, y0, x1, y1, x2, y2, v0.TexCoord[1], v1.TexCoord[1], v2.TexCoord[1])
	wOrigin, wDx, wDy := extrapolatePlane(x0, y0, x1, y1, x2, y2, v0.Position[3], v1.Position[3], v2.Position[3])

	uvAt := func(px, py float32) [2]float32 {
		invW := wOrigin + wDx*px + wDy*py
		u := (uOrigin + uDx*px + uDy*py) / invW
		v := (vOrigin + vDx*px + vDy*py) / invW
		return [2]float32{u, v}
	}

	uv00 := uvAt(px0, py0)
	uv01 := uvAt(px1, py1)
	uv10 := uvAt(px2, py2)

	return texture.MipLevelFromDerivatives(uv00, uv01, uv10, texW, texH)
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
