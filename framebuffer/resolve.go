package framebuffer

import "github.com/oxy-go/swrast/colorformat"

// ResolveTile collapses a multi-sample RenderBuffer down to a single-sample
// display buffer, for the pixel rows [y0, y0+h) only — the calling
// worker's band. gridX is 2 for SSAA 2x / MSAA 4x (4 samples/pixel) or 4
// for SSAA 4x (16 samples/pixel); it must match samples.Samples() ==
// gridX*gridX. Per-channel sums are accumulated in uint32 then divided by
// the sample count, as the spec allows.
//
// Parameters:
//   - samples: the multi-sample source buffer
//   - display: the single-sample destination buffer, already sized to match
//   - y0, h: the worker's pixel-row band within the display buffer
//   - gridX: the supersample grid factor (2 or 4)
func ResolveTile(samples *RenderBuffer[colorformat.Color32], display *RenderBuffer[colorformat.Color32], y0, h, gridX int) {
	width := display.Width()
	n := uint32(gridX * gridX)
	src := samples.Data()
	dst := display.Data()

	for y := y0; y < y0+h; y++ {
		for x := 0; x < width; x++ {
			base := (y*width + x) * int(n)
			var r, g, b, a uint32
			for i := 0; i < int(n); i++ {
				p := src[base+i]
				r += uint32(p.R)
				g += uint32(p.G)
				b += uint32(p.B)
				a += uint32(p.A)
			}
			half := n / 2
			dst[y*width+x] = colorformat.Color32{
				R: uint8((r + half) / n),
				G: uint8((g + half) / n),
				B: uint8((b + half) / n),
				A: uint8((a + half) / n),
			}
		}
	}
}
