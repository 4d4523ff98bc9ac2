// Package texture implements the mipmap chain and the point / bilinear /
// trilinear samplers that read from it, per the 2D image component of the
// rasterizer.
package texture

import (
	"math"

	"github.com/oxy-go/swrast/colorformat"
)

// Mipmap is a single level of a mipmap chain: a row-major Color32 image.
type Mipmap struct {
	Pixels        []colorformat.Color32
	Width, Height int
}

// mipLevelCount returns 1 + floor(log2(max(w,h))), the number of levels a
// full mipmap chain has for an image of the given dimensions.
func mipLevelCount(w, h int) int {
	max := w
	if h > max {
		max = h
	}
	if max < 1 {
		max = 1
	}
	return 1 + int(math.Floor(math.Log2(float64(max))))
}

// buildMipmaps constructs the full chain from a level-0 image, halving
// dimensions (floor-rounded, clamped at 1) at each level until 1x1.
func buildMipmaps(level0 Mipmap) []Mipmap {
	levels := make([]Mipmap, 0, mipLevelCount(level0.Width, level0.Height))
	levels = append(levels, level0)
	cur := level0
	for cur.Width > 1 || cur.Height > 1 {
		cur = buildMipLevel(cur)
		levels = append(levels, cur)
	}
	return levels
}

// buildMipLevel downsamples one mip level from its predecessor using exact
// integer box averaging (not a rounding divide), matching the original
// rasterizer's MipDown: a 2x2 box when both dimensions are still even-sized
// (>1), a 2x1 or 1x2 box at the one-wide/one-tall border.
func buildMipLevel(prev Mipmap) Mipmap {
	w := prev.Width / 2
	if w < 1 {
		w = 1
	}
	h := prev.Height / 2
	if h < 1 {
		h = 1
	}

	out := Mipmap{Pixels: make([]colorformat.Color32, w*h), Width: w, Height: h}

	switch {
	case prev.Width > 1 && prev.Height > 1:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p00 := prev.at(2*x, 2*y)
				p10 := prev.at(2*x+1, 2*y)
				p01 := prev.at(2*x, 2*y+1)
				p11 := prev.at(2*x+1, 2*y+1)
				out.Pixels[y*w+x] = colorformat.Color32{
					R: uint8((uint16(p00.R) + uint16(p10.R) + uint16(p01.R) + uint16(p11.R)) >> 2),
					G: uint8((uint16(p00.G) + uint16(p10.G) + uint16(p01.G) + uint16(p11.G)) >> 2),
					B: uint8((uint16(p00.B) + uint16(p10.B) + uint16(p01.B) + uint16(p11.B)) >> 2),
					A: uint8((uint16(p00.A) + uint16(p10.A) + uint16(p01.A) + uint16(p11.A)) >> 2),
				}
			}
		}
	case prev.Width > 1:
		// Single row remaining: 2x1 horizontal box.
		for x := 0; x < w; x++ {
			p0 := prev.at(2*x, 0)
			p1 := prev.at(2*x+1, 0)
			out.Pixels[x] = colorformat.Color32{
				R: uint8((uint16(p0.R) + uint16(p1.R)) >> 1),
				G: uint8((uint16(p0.G) + uint16(p1.G)) >> 1),
				B: uint8((uint16(p0.B) + uint16(p1.B)) >> 1),
				A: uint8((uint16(p0.A) + uint16(p1.A)) >> 1),
			}
		}
	default:
		// Single column remaining: 1x2 vertical box.
		for y := 0; y < h; y++ {
			p0 := prev.at(0, 2*y)
			p1 := prev.at(0, 2*y+1)
			out.Pixels[y] = colorformat.Color32{
				R: uint8((uint16(p0.R) + uint16(p1.R)) >> 1),
				G: uint8((uint16(p0.G) + uint16(p1.G)) >> 1),
				B: uint8((uint16(p0.B) + uint16(p1.B)) >> 1),
				A: uint8((uint16(p0.A) + uint16(p1.A)) >> 1),
			}
		}
	}
	return out
}

// at clips coordinates to the image border and returns the pixel there.
func (m Mipmap) at(x, y int) colorformat.Color32 {
	if x < 0 {
		x = 0
	}
	if x >= m.Width {
		x = m.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.Height {
		y = m.Height - 1
	}
	return m.Pixels[y*m.Width+x]
}
