package raster

import "math"

// invSqrt returns 1/sqrt(v) using the standard library; the original
// rasterizer's SSE fast-inverse-sqrt path is not reproduced, only its
// scalar fallback semantics matter here.
func invSqrt(v float32) float32 {
	return float32(1.0 / math.Sqrt(float64(v)))
}
