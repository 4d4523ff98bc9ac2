package texture

import (
	"fmt"

	"github.com/oxy-go/swrast/colorformat"
)

// FromRGBA packs a tightly packed, top-down row-major RGBA byte array (4
// bytes/pixel, the shape common.ImportedTexture.Decode and the spec's
// image-decoder collaborator both produce) into the Color32 slice NewTexture
// expects.
func FromRGBA(pixels []byte, width, height int) ([]colorformat.Color32, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture: invalid dimensions %dx%d", width, height)
	}
	want := width * height * 4
	if len(pixels) != want {
		return nil, fmt.Errorf("texture: expected %d RGBA bytes for %dx%d, got %d", want, width, height, len(pixels))
	}

	out := make([]colorformat.Color32, width*height)
	for i := range out {
		o := i * 4
		out[i] = colorformat.Color32{R: pixels[o], G: pixels[o+1], B: pixels[o+2], A: pixels[o+3]}
	}
	return out, nil
}
