package texture

import (
	"math"

	"github.com/oxy-go/swrast/colorformat"
)

// samplePoint clamps (u,v) to [0,1], converts to texel coordinates, rounds
// to nearest, and fetches.
func samplePoint(m Mipmap, u, v float32) colorformat.Color {
	u = clamp01(u)
	v = clamp01(v)
	x := int(float32(m.Width-1)*u + 0.5)
	y := int(float32(m.Height-1)*v + 0.5)
	return m.at(x, y).ToColor()
}

// sampleBilinear uses an unclamped pixel coordinate and border-clamped
// 2x2 neighbor offsets, per spec §4.1.
func sampleBilinear(m Mipmap, u, v float32) colorformat.Color {
	x := u * float32(m.Width)
	y := v * float32(m.Height)

	ix := int(math.Floor(float64(x)))
	iy := int(math.Floor(float64(y)))
	if ix < 0 {
		ix = 0
	}
	if ix > m.Width-1 {
		ix = m.Width - 1
	}
	if iy < 0 {
		iy = 0
	}
	if iy > m.Height-1 {
		iy = m.Height - 1
	}

	xoff := 0
	if ix < m.Width-1 {
		xoff = 1
	}
	yoff := 0
	if iy < m.Height-1 {
		yoff = 1
	}

	u1 := x - float32(ix)
	u0 := 1 - u1
	v1 := y - float32(iy)
	v0 := 1 - v1

	p00 := m.at(ix, iy).ToColor()
	p10 := m.at(ix+xoff, iy).ToColor()
	p01 := m.at(ix, iy+yoff).ToColor()
	p11 := m.at(ix+xoff, iy+yoff).ToColor()

	return p00.Scale(u0 * v0).Add(p10.Scale(u1 * v0)).Add(p01.Scale(u0 * v1)).Add(p11.Scale(u1 * v1))
}

// sampleTrilinear blends bilinear samples at floor(mip) and ceil(mip),
// degenerating to a single bilinear sample when they coincide.
func sampleTrilinear(mips []Mipmap, u, v, mip float32) colorformat.Color {
	lo := int(math.Floor(float64(mip)))
	hi := int(math.Ceil(float64(mip)))
	if lo == hi {
		return sampleBilinear(mips[lo], u, v)
	}
	cLo := sampleBilinear(mips[lo], u, v)
	cHi := sampleBilinear(mips[hi], u, v)
	return cLo.Lerp(cHi, mip-float32(lo))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MipLevelFromDerivatives implements the standard max(|∂uv/∂x|, |∂uv/∂y|)
// rule: given the perspective-corrected texture coordinate at a pixel
// center and at its +1x and +1y screen-space neighbors, scaled into texel
// units, return the selected (unclamped, pre-bias) mip level.
//
// Parameters:
//   - uv00: texture coordinate at the pixel center
//   - uv01: texture coordinate one pixel to the right (+1x)
//   - uv10: texture coordinate one pixel down (+1y)
//   - texW, texH: level-0 texture dimensions in texels
//
// Returns:
//   - float32: 0.5*log2(max(dx^2, dy^2)), the derivative-based mip level
func MipLevelFromDerivatives(uv00, uv01, uv10 [2]float32, texW, texH int) float32 {
	sx := float32(texW)
	sy := float32(texH)

	dx0 := (uv01[0] - uv00[0]) * sx
	dx1 := (uv01[1] - uv00[1]) * sy
	dy0 := (uv10[0] - uv00[0]) * sx
	dy1 := (uv10[1] - uv00[1]) * sy

	dxSq := dx0*dx0 + dx1*dx1
	dySq := dy0*dy0 + dy1*dy1

	maxSq := dxSq
	if dySq > maxSq {
		maxSq = dySq
	}
	if maxSq <= 0 {
		return 0
	}
	return 0.5 * float32(math.Log2(float64(maxSq)))
}
