package raster

// Rect is an integer (x,y,w,h) sub-rectangle of a render buffer, used both
// as the clip-region argument to the rasterizer and as the tile scheduler's
// unit of per-worker work.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the pixel (x,y) lies within the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
