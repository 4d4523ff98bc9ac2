package texture

import (
	"sync"

	"github.com/oxy-go/swrast/colorformat"
)

// FilterMode selects how a Texture turns a (u,v[,mip]) query into a Color.
type FilterMode int

const (
	// Point samples the single nearest texel.
	Point FilterMode = iota
	// Bilinear blends the 2x2 texel neighborhood.
	Bilinear
	// Trilinear blends Bilinear samples at the two nearest mip levels.
	Trilinear
)

type textureImpl struct {
	mu *sync.Mutex

	mips       []Mipmap
	filterMode FilterMode
	mipBias    float32
}

// Texture is a mipmap chain plus a filter mode and a mipmap bias. Texture
// coordinates are in [0,1]^2; address mode is always clamp.
type Texture interface {
	// FilterMode returns the configured filter mode.
	FilterMode() FilterMode

	// SetFilterMode changes the filter mode.
	SetFilterMode(mode FilterMode)

	// MipmapBias returns the bias added to the derived mip level.
	MipmapBias() float32

	// SetMipmapBias changes the mipmap bias.
	SetMipmapBias(bias float32)

	// Width returns the level-0 width in texels.
	Width() int

	// Height returns the level-0 height in texels.
	Height() int

	// MipCount returns the number of levels in the chain.
	MipCount() int

	// Sample returns the filtered color at (u,v), selecting mip level(s)
	// from mipLevel per the configured filter mode.
	Sample(u, v, mipLevel float32) colorformat.Color
}

var _ Texture = &textureImpl{}

// TextureBuilderOption configures a Texture constructed via NewTexture.
type TextureBuilderOption func(*textureImpl)

// WithFilterMode sets the initial filter mode.
func WithFilterMode(mode FilterMode) TextureBuilderOption {
	return func(t *textureImpl) { t.filterMode = mode }
}

// WithMipmapBias sets the initial mipmap bias.
func WithMipmapBias(bias float32) TextureBuilderOption {
	return func(t *textureImpl) { t.mipBias = bias }
}

// NewTexture builds a full mipmap chain from a level-0 Color32 image and
// returns a Texture ready for sampling.
//
// Parameters:
//   - pixels: top-down row-major Color32 array, width*height elements
//   - width, height: level-0 dimensions in texels
//   - options: functional options to configure filter mode and bias
//
// Returns:
//   - Texture: the constructed texture
func NewTexture(pixels []colorformat.Color32, width, height int, options ...TextureBuilderOption) Texture {
	t := &textureImpl{
		mu:         &sync.Mutex{},
		mips:       buildMipmaps(Mipmap{Pixels: pixels, Width: width, Height: height}),
		filterMode: Bilinear,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

func (t *textureImpl) FilterMode() FilterMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filterMode
}

func (t *textureImpl) SetFilterMode(mode FilterMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.filterMode = mode
}

func (t *textureImpl) MipmapBias() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mipBias
}

func (t *textureImpl) SetMipmapBias(bias float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mipBias = bias
}

func (t *textureImpl) Width() int {
	return t.mips[0].Width
}

func (t *textureImpl) Height() int {
	return t.mips[0].Height
}

func (t *textureImpl) MipCount() int {
	return len(t.mips)
}

func (t *textureImpl) Sample(u, v, mipLevel float32) colorformat.Color {
	t.mu.Lock()
	filterMode := t.filterMode
	bias := t.mipBias
	t.mu.Unlock()

	mipLevel += bias
	maxLevel := float32(len(t.mips) - 1)
	if mipLevel < 0 {
		mipLevel = 0
	}
	if mipLevel > maxLevel {
		mipLevel = maxLevel
	}

	switch filterMode {
	case Point:
		return samplePoint(t.mips[int(mipLevel+0.5)], u, v)
	case Trilinear:
		return sampleTrilinear(t.mips, u, v, mipLevel)
	default:
		return sampleBilinear(t.mips[int(mipLevel)], u, v)
	}
}
