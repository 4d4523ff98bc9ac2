package raster

import (
	"math"

	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/shadercontract"
	"github.com/oxy-go/swrast/texture"
)

// degenerateHeightEpsilon is the minimum Y-extent a scanline half (top or
// bottom) must have before it is filled; a half narrower than this is
// treated as a degenerate sliver and skipped outright, matching the
// original rasterizer's zero-height guard.
const degenerateHeightEpsilon = 0.00001

// RasterizeScanline rasterizes every triangle in call's range with the
// classical top/bottom scanline split: sort vertices by Y, split at the
// middle vertex into a flat-bottom half and a flat-top half, and fill each
// half by stepping two edges in lockstep per row. Fill convention is
// left-inclusive/right-exclusive in X and top-inclusive/bottom-exclusive
// in Y, so adjacent triangles sharing an edge never double-fill or gap a
// pixel.
func RasterizeScanline(clipped []Vertex, call DrawCall, arena *shadercontract.Arena, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	shader, _ := arena.Get(call.Shader).(Shader)
	if shader == nil {
		return
	}

	for i := call.Start; i+2 < call.End; i += 3 {
		scanlineTriangle(clipped[i], clipped[i+1], clipped[i+2], call, shader, tile, mipmapsEnabled, color, depth)
	}
}

func scanlineTriangle(v0, v1, v2 Vertex, call DrawCall, shader Shader, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32]) {
	// Backface/front-face selection under CullNone is resolved per-pixel
	// in the halfspace path; scanline fill is convex-monotone regardless
	// of winding, so only CullBack/CullFront need the signed-area check.
	// signedArea2 is the negated edge function E_0 evaluated at v2, so a
	// front-facing triangle (all edge functions positive) has signedArea2 < 0.
	signedArea2 := (v1.Position[0]-v0.Position[0])*(v2.Position[1]-v0.Position[1]) -
		(v2.Position[0]-v0.Position[0])*(v1.Position[1]-v0.Position[1])
	switch call.Cull {
	case CullBack:
		if signedArea2 >= 0 {
			return
		}
	case CullFront:
		if signedArea2 <= 0 {
			return
		}
	}

	top, mid, bot := sortByY(v0, v1, v2)

	texW, texH := 0, 0
	if call.Texture != nil {
		texW, texH = call.Texture.Width(), call.Texture.Height()
	}

	if mid.Position[1]-top.Position[1] > degenerateHeightEpsilon {
		split := lerpAtY(top, bot, mid.Position[1])
		fillHalf(top, mid, split, call, shader, tile, mipmapsEnabled, color, depth, texW, texH)
	}
	if bot.Position[1]-mid.Position[1] > degenerateHeightEpsilon {
		split := lerpAtY(top, bot, mid.Position[1])
		fillHalf(bot, mid, split, call, shader, tile, mipmapsEnabled, color, depth, texW, texH)
	}
}

// sortByY returns the three vertices ordered by ascending screen-space Y.
func sortByY(v0, v1, v2 Vertex) (top, mid, bot Vertex) {
	a, b, c := v0, v1, v2
	if a.Position[1] > b.Position[1] {
		a, b = b, a
	}
	if b.Position[1] > c.Position[1] {
		b, c = c, b
	}
	if a.Position[1] > b.Position[1] {
		a, b = b, a
	}
	return a, b, c
}

// lerpAtY returns the point on segment (a,b) at screen-space Y == y.
func lerpAtY(a, b Vertex, y float32) Vertex {
	denom := b.Position[1] - a.Position[1]
	if denom == 0 {
		return a
	}
	t := (y - a.Position[1]) / denom
	return a.Lerp(b, t)
}

// fillHalf fills one flat-top or flat-bottom half, defined by a single
// apex vertex and the two vertices of its opposite flat edge, which must
// share the same Y. left/right are determined per row by X order, not by
// argument order.
func fillHalf(apex, edgeA, edgeB Vertex, call DrawCall, shader Shader, tile Rect, mipmapsEnabled bool, color *framebuffer.RenderBuffer[colorformat.Color32], depth *framebuffer.RenderBuffer[float32], texW, texH int) {
	y0 := apex.Position[1]
	y1 := edgeA.Position[1]
	flatTop := y1 > y0

	yStart, yEnd := y0, y1
	if !flatTop {
		yStart, yEnd = y1, y0
	}

	rowStart := int(math.Ceil(float64(yStart) - 0.5))
	rowEnd := int(math.Ceil(float64(yEnd) - 0.5))
	if rowStart < tile.Y {
		rowStart = tile.Y
	}
	if rowEnd > tile.Y+tile.H {
		rowEnd = tile.Y + tile.H
	}

	for y := rowStart; y < rowEnd; y++ {
		py := float32(y) + 0.5

		var vl, vr Vertex
		if flatTop {
			vl = lerpAtY(apex, edgeA, py)
			vr = lerpAtY(apex, edgeB, py)
		} else {
			vl = lerpAtY(edgeA, apex, py)
			vr = lerpAtY(edgeB, apex, py)
		}
		if vl.Position[0] > vr.Position[0] {
			vl, vr = vr, vl
		}

		// vlNext/vrNext are this same pair of edges lerped at the next
		// scanline down, giving a genuine +dy sample for mip derivatives;
		// lerpAtY extrapolates cleanly past the half's own Y range, so this
		// stays valid even for the last row of a half.
		var vlNext, vrNext Vertex
		if flatTop {
			vlNext = lerpAtY(apex, edgeA, py+1)
			vrNext = lerpAtY(apex, edgeB, py+1)
		} else {
			vlNext = lerpAtY(edgeA, apex, py+1)
			vrNext = lerpAtY(edgeB, apex, py+1)
		}
		if vlNext.Position[0] > vrNext.Position[0] {
			vlNext, vrNext = vrNext, vlNext
		}
		spanNext := vrNext.Position[0] - vlNext.Position[0]

		xStart := int(math.Ceil(float64(vl.Position[0]) - 0.5))
		xEnd := int(math.Ceil(float64(vr.Position[0]) - 0.5))
		if xStart < tile.X {
			xStart = tile.X
		}
		if xEnd > tile.X+tile.W {
			xEnd = tile.X + tile.W
		}
		if xStart >= xEnd {
			continue
		}

		span := vr.Position[0] - vl.Position[0]
		for x := xStart; x < xEnd; x++ {
			px := float32(x) + 0.5
			t := float32(0)
			if span != 0 {
				t = (px - vl.Position[0]) / span
			}
			interp := vl.Lerp(vr, t)
			invW := interp.Position[3]

			idx := depth.SampleOffset(x, y, 0)
			if invW <= depth.Data()[idx] {
				continue
			}

			mipLevel := float32(0)
			if mipmapsEnabled && call.Texture != nil && call.Texture.MipCount() > 1 && span != 0 {
				interpDx := vl.Lerp(vr, (px+1-vl.Position[0])/span)
				uv0 := [2]float32{interp.TexCoord[0] / invW, interp.TexCoord[1] / invW}
				uv1 := [2]float32{interpDx.TexCoord[0] / interpDx.Position[3], interpDx.TexCoord[1] / interpDx.Position[3]}

				uv10 := uv0
				if spanNext != 0 {
					tNext := (px - vlNext.Position[0]) / spanNext
					interpDy := vlNext.Lerp(vrNext, tNext)
					uv10 = [2]float32{interpDy.TexCoord[0] / interpDy.Position[3], interpDy.TexCoord[1] / interpDy.Position[3]}
				}

				mipLevel = texture.MipLevelFromDerivatives(uv0, uv1, uv10, texW, texH)
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
