package framebuffer

import (
	"testing"

	"github.com/oxy-go/swrast/colorformat"
)

func TestResizeIsNoOpWhenUnchanged(t *testing.T) {
	var b RenderBuffer[float32]
	b.Resize(4, 4, 1)
	b.Data()[0] = 42
	b.Resize(4, 4, 1)
	if b.Data()[0] != 42 {
		t.Fatalf("Resize with unchanged dims reallocated storage")
	}
}

func TestResizeExactCapacity(t *testing.T) {
	var b RenderBuffer[float32]
	b.Resize(8, 6, 4)
	if len(b.Data()) != 8*6*4 {
		t.Fatalf("len(Data()) = %d, want %d", len(b.Data()), 8*6*4)
	}
}

func TestClearFillsAllElements(t *testing.T) {
	var b RenderBuffer[float32]
	b.Resize(3, 3, 1)
	b.Clear(7)
	for i, v := range b.Data() {
		if v != 7 {
			t.Fatalf("Data()[%d] = %v, want 7", i, v)
		}
	}
}

func TestSuperSampleOffsetTilePacked(t *testing.T) {
	var b RenderBuffer[int]
	b.Resize(2, 2, 4)
	// All four samples of pixel (1,1) in a 2x2 supersampled grid (samples
	// at supersampled coords (2,2),(3,2),(2,3),(3,3)) must be contiguous.
	offsets := map[int]bool{}
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		off := b.SuperSampleOffset(c[0], c[1], 2)
		offsets[off] = true
	}
	if len(offsets) != 4 {
		t.Fatalf("expected 4 distinct offsets, got %d", len(offsets))
	}
	min, max := -1, -1
	for off := range offsets {
		if min == -1 || off < min {
			min = off
		}
		if off > max {
			max = off
		}
	}
	if max-min != 3 {
		t.Fatalf("samples of one pixel are not contiguous: span = %d, want 3", max-min)
	}
}

func TestResolveTileBoxAverage(t *testing.T) {
	var samples RenderBuffer[colorformat.Color32]
	samples.Resize(1, 1, 4)
	for i, c := range []colorformat.Color32{
		{R: 0, A: 255}, {R: 100, A: 255}, {R: 200, A: 255}, {R: 255, A: 255},
	} {
		samples.Data()[i] = c
	}

	var display RenderBuffer[colorformat.Color32]
	display.Resize(1, 1, 1)

	ResolveTile(&samples, &display, 0, 1, 2)

	want := uint32(0+100+200+255+2) / 4
	if got := display.Data()[0].R; got != uint8(want) {
		t.Fatalf("resolved R = %d, want %d", got, want)
	}
}
