package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/oxy-go/swrast/colorformat"
)

// toNRGBA renders a Mipmap level into a stdlib image.Image so it can be fed
// to a reference resize implementation.
func toNRGBA(m Mipmap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := m.at(x, y)
			img.Set(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// TestMipLevelAgreesWithReferenceBoxFilter cross-checks the 2x2 box-down
// mip builder against imaging's box-filter resize: on a smooth gradient the
// two should agree closely, since both average 2x2 neighborhoods. This is
// not an exactness check (buildMipLevel's integer shifts round differently
// than imaging's floating-point filter) but a sanity bound on the result.
func TestMipLevelAgreesWithReferenceBoxFilter(t *testing.T) {
	const w, h = 64, 64
	pixels := make([]colorformat.Color32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x * 255) / w)
			pixels[y*w+x] = colorformat.Color32{R: v, G: v, B: v, A: 255}
		}
	}
	level0 := Mipmap{Pixels: pixels, Width: w, Height: h}

	got := buildMipLevel(level0)
	want := imaging.Resize(toNRGBA(level0), w/2, h/2, imaging.Box)

	for y := 0; y < got.Height; y++ {
		for x := 0; x < got.Width; x++ {
			gp := got.at(x, y)
			wr, wg, wb, _ := want.At(x, y).RGBA()
			if diff(gp.R, uint8(wr>>8)) > 2 {
				t.Fatalf("pixel (%d,%d): box-filter mip R=%d diverges from reference R=%d by more than 2", x, y, gp.R, uint8(wr>>8))
			}
			_ = wg
			_ = wb
		}
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
