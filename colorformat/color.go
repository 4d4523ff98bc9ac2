// Package colorformat defines the 8-bit and floating-point color quadruples
// used throughout the rasterizer: Color32 is the storage format of textures
// and framebuffers, Color is the arithmetic format used inside shaders.
package colorformat

// Color32 is an 8-bit-per-channel RGBA color, the storage format of textures
// and framebuffers.
type Color32 struct {
	R, G, B, A uint8
}

// Color is a floating-point RGBA color, the arithmetic format used while a
// shader is running. Components are not clamped to [0,1] while in this form;
// clamping happens on conversion back to Color32.
type Color struct {
	R, G, B, A float32
}

// ToColor converts a Color32 to a Color by a linear rescale of each channel
// by 1/255.
//
// Returns:
//   - Color: the floating-point equivalent
func (c Color32) ToColor() Color {
	const s = 1.0 / 255.0
	return Color{
		R: float32(c.R) * s,
		G: float32(c.G) * s,
		B: float32(c.B) * s,
		A: float32(c.A) * s,
	}
}

// ToColor32 converts a Color back to Color32 by rescaling by 255 and
// rounding to nearest, saturating each channel to [0,255].
//
// Returns:
//   - Color32: the 8-bit equivalent
func (c Color) ToColor32() Color32 {
	return Color32{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// quantize rescales a [0,1]-normalized channel by 255, rounds to nearest,
// and saturates to [0,255].
func quantize(v float32) uint8 {
	f := v*255.0 + 0.5
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}

// Add returns the componentwise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Scale returns the color with every channel multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp linearly interpolates between c and o by t ∈ [0,1].
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}
