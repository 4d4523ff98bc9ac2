package raster

import "testing"

func TestRectContainsBoundaries(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	cases := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{14, 14, true},
		{15, 14, false},
		{14, 15, false},
		{9, 10, false},
		{10, 9, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}
