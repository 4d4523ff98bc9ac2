// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// ImportedMaterial represents material properties from an imported model file.
type ImportedMaterial struct {
	// Name is the material identifier.
	Name string

	// BaseColor is the albedo/diffuse color (RGBA).
	BaseColor [4]float32

	// Metallic factor (0.0 = dielectric, 1.0 = metal).
	Metallic float32

	// Roughness factor (0.0 = smooth, 1.0 = rough).
	Roughness float32

	// DiffuseTexturePath is the file path for the diffuse/albedo texture.
	DiffuseTexturePath string

	// NormalTexturePath is the file path for the normal map texture.
	NormalTexturePath string

	// MetallicTexturePath is the file path for the metallic-roughness texture.
	MetallicTexturePath string

	// DiffuseTexture holds embedded texture data (if present).
	DiffuseTexture *ImportedTexture

	// NormalTexture holds embedded normal map data (if present).
	NormalTexture *ImportedTexture

	// MetallicRoughnessTexture holds embedded metallic/roughness data (if present).
	MetallicRoughnessTexture *ImportedTexture
}

// ImportedTexture represents texture data extracted from a model file or
// loaded directly from disk for the demo. For embedded textures the Data
// field contains raw image bytes; for external textures the Path field
// contains the file path.
type ImportedTexture struct {
	// Name is an identifier for this texture (e.g., "diffuse", "normal").
	Name string

	// Path is the file path for external textures (empty for embedded).
	Path string

	// Data contains raw image bytes for embedded textures (PNG/JPEG/BMP).
	Data []byte

	// MimeType indicates the image format (e.g., "image/png", "image/jpeg").
	MimeType string

	// Width is the texture width in pixels (populated after Decode).
	Width int

	// Height is the texture height in pixels (populated after Decode).
	Height int
}

// Decode decodes the texture to a tightly packed Color32-shaped RGBA byte
// array, matching the external image-decoder contract: a top-down
// row-major array of 4 channels per pixel, plus width and height. Uses either
// embedded Data bytes or loads from Path on disk; supports PNG, JPEG, and
// BMP via golang.org/x/image/bmp.
//
// Returns:
//   - []byte: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - uint32: texture width in pixels
//   - uint32: texture height in pixels
//   - error: error if decoding fails
func (t *ImportedTexture) Decode() ([]byte, uint32, uint32, error) {
	if t == nil {
		return nil, 0, 0, fmt.Errorf("texture is nil")
	}

	var img image.Image
	var err error

	switch {
	case len(t.Data) > 0:
		img, err = decodeAny(bytes.NewReader(t.Data))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode embedded image: %w", err)
		}
	case t.Path != "":
		file, fileErr := os.Open(t.Path)
		if fileErr != nil {
			return nil, 0, 0, fmt.Errorf("failed to open texture file %s: %w", t.Path, fileErr)
		}
		defer file.Close()

		img, err = decodeAny(file)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("failed to decode texture file %s: %w", t.Path, err)
		}
	default:
		return nil, 0, 0, fmt.Errorf("texture has neither data nor path")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	t.Width = width
	t.Height = height

	return rgba.Pix, uint32(width), uint32(height), nil
}

// decodeAny tries the standard PNG/JPEG decoders registered by this
// package's blank imports, falling back to golang.org/x/image/bmp for the
// BMP supplier named in the core's external-interfaces contract.
func decodeAny(r io.ReadSeeker) (image.Image, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if img, _, err := image.Decode(r); err == nil {
		return img, nil
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	return bmp.Decode(r)
}
