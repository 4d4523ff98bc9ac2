package tilescheduler

import (
	"sync/atomic"
	"testing"

	"github.com/oxy-go/swrast/raster"
)

func TestTileRectsCoversFullRegionWithoutOverlap(t *testing.T) {
	tiles := TileRects(100, 50, 4)

	covered := make([]bool, 100*50)
	for _, tile := range tiles {
		for y := tile.Y; y < tile.Y+tile.H; y++ {
			for x := tile.X; x < tile.X+tile.W; x++ {
				idx := y*100 + x
				if covered[idx] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[idx] = true
			}
		}
	}
	for i, c := range covered {
		if !c {
			t.Fatalf("pixel index %d never covered by any tile", i)
		}
	}
}

func TestTileRectsProducesDisjointHorizontalBands(t *testing.T) {
	tiles := TileRects(100, 50, 4)

	if len(tiles) != 4 {
		t.Fatalf("expected 4 bands for 4 workers, got %d", len(tiles))
	}
	for _, tile := range tiles {
		if tile.X != 0 || tile.W != 100 {
			t.Fatalf("band %+v is not a full-width horizontal band", tile)
		}
	}
	if tiles[0].Y != 0 {
		t.Fatalf("first band must start at y=0: got %+v", tiles[0])
	}
	last := tiles[len(tiles)-1]
	if last.Y+last.H != 50 {
		t.Fatalf("last band must end at render height 50: got %+v", last)
	}
}

func TestTileRectsUnevenHeightStillCoversEveryRow(t *testing.T) {
	tiles := TileRects(10, 17, 4)

	covered := make([]bool, 17)
	for _, tile := range tiles {
		for y := tile.Y; y < tile.Y+tile.H; y++ {
			if covered[y] {
				t.Fatalf("row %d covered by more than one band", y)
			}
			covered[y] = true
		}
	}
	for y, c := range covered {
		if !c {
			t.Fatalf("row %d never covered by any band", y)
		}
	}
}

func TestPoolDispatchRunsEveryBandExactlyOnce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	tiles := TileRects(64, 64, pool.WorkerCount())
	var count int64
	pool.Dispatch(tiles, func(tile raster.Rect) {
		atomic.AddInt64(&count, 1)
	})

	if int(count) != len(tiles) {
		t.Fatalf("expected every band to run exactly once: got %d runs for %d bands", count, len(tiles))
	}
}

// TestPoolDispatchDropsBandsBeyondWorkerCount exercises the explicit
// never-queue contract: if more bands are handed to Dispatch than the pool
// has workers, the extra bands are dropped rather than queued onto a
// worker that becomes free.
func TestPoolDispatchDropsBandsBeyondWorkerCount(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	tiles := TileRects(64, 64, 5)
	var count int64
	pool.Dispatch(tiles, func(tile raster.Rect) {
		atomic.AddInt64(&count, 1)
	})

	if int(count) != 2 {
		t.Fatalf("expected exactly 2 bands to run (one per worker), got %d", count)
	}
}

func TestPoolDispatchAllowsConsecutiveFrames(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	tiles := TileRects(64, 64, pool.WorkerCount())
	for frame := 0; frame < 3; frame++ {
		var count int64
		pool.Dispatch(tiles, func(tile raster.Rect) {
			atomic.AddInt64(&count, 1)
		})
		if int(count) != len(tiles) {
			t.Fatalf("frame %d: expected every band to run exactly once: got %d runs for %d bands", frame, count, len(tiles))
		}
	}
}
