package light

import "testing"

func TestAmbientLightIgnoresPositionAndNormal(t *testing.T) {
	l := NewLight(LightTypeAmbient, WithColor(1, 1, 1), WithIntensity(0.5))
	r, g, b := l.Apply([3]float32{100, 200, 300}, [3]float32{0, 1, 0}, [3]float32{0, 0, 0})
	if r != 0.5 || g != 0.5 || b != 0.5 {
		t.Fatalf("ambient contribution should equal color*intensity everywhere, got (%v,%v,%v)", r, g, b)
	}
}

func TestDirectionalLightZeroOnBackFace(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithDirection(0, -1, 0), WithColor(1, 1, 1), WithIntensity(1))
	// Surface normal points away from the light (same hemisphere as direction).
	r, g, b := l.Apply([3]float32{0, 0, 0}, [3]float32{0, -1, 0}, [3]float32{0, 0, 0})
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("back-facing surface should receive zero directional light, got (%v,%v,%v)", r, g, b)
	}
}

func TestDirectionalLightFullOnDirectFace(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithDirection(0, -1, 0), WithColor(1, 1, 1), WithIntensity(1))
	r, _, _ := l.Apply([3]float32{0, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 0})
	if r < 0.999 || r > 1.001 {
		t.Fatalf("surface facing directly into the light should receive full intensity, got r=%v", r)
	}
}

func TestPointLightAttenuatesWithDistance(t *testing.T) {
	l := NewLight(LightTypePoint, WithPosition(0, 0, 0), WithColor(1, 1, 1), WithIntensity(1), WithRange(10))

	// Both surfaces face back toward the light at the origin.
	near := sum3(l.Apply([3]float32{0, 1, 0}, [3]float32{0, -1, 0}, [3]float32{0, 0, 0}))
	far := sum3(l.Apply([3]float32{0, 9, 0}, [3]float32{0, -1, 0}, [3]float32{0, 0, 0}))

	if near <= far {
		t.Fatalf("closer surface should receive more point light energy: near=%v far=%v", near, far)
	}
}

func TestPointLightZeroBeyondRange(t *testing.T) {
	l := NewLight(LightTypePoint, WithPosition(0, 0, 0), WithColor(1, 1, 1), WithIntensity(1), WithRange(10))
	r, g, b := l.Apply([3]float32{0, 20, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 0})
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("surface beyond range should receive zero point light, got (%v,%v,%v)", r, g, b)
	}
}

func TestSpotLightZeroOutsideCone(t *testing.T) {
	l := NewLight(LightTypeSpot, WithPosition(0, 0, 0), WithDirection(0, 1, 0), WithColor(1, 1, 1), WithIntensity(1), WithRange(10))
	l.SetSpotCone(10, 20)
	// A surface directly to the side of the cone axis, well outside 20°.
	r, g, b := l.Apply([3]float32{5, 0, 0}, [3]float32{-1, 0, 0}, [3]float32{0, 0, 0})
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("surface outside the spot cone should receive zero light, got (%v,%v,%v)", r, g, b)
	}
}

func TestDisabledLightContributesNothing(t *testing.T) {
	l := NewLight(LightTypeAmbient, WithColor(1, 1, 1), WithIntensity(1))
	l.SetEnabled(false)
	r, g, b := l.Apply([3]float32{0, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 0})
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("disabled light should contribute nothing, got (%v,%v,%v)", r, g, b)
	}
}

func sum3(r, g, b float32) float32 { return r + g + b }
