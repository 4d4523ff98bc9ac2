package colorformat

import "testing"

func TestColor32RoundTrip(t *testing.T) {
	cases := []Color32{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 64, 32, 200},
		{1, 254, 16, 17},
	}
	for _, c32 := range cases {
		t.Run("", func(t *testing.T) {
			got := c32.ToColor().ToColor32()
			if got != c32 {
				t.Fatalf("round trip: got %+v, want %+v", got, c32)
			}
		})
	}
}

func TestQuantizeSaturates(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"below zero", -0.5, 0},
		{"above one", 1.5, 255},
		{"exact mid", 0.5, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quantize(tt.in); got != tt.want {
				t.Fatalf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 1, 1, 1}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 0.5 {
		t.Fatalf("lerp midpoint = %+v, want all 0.5", mid)
	}
}
