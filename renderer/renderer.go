// Package renderer drives the per-frame pipeline: clear the render
// targets, build the frame's draw calls from a scene, dispatch
// rasterization across a tile pool, resolve multisampling, and present
// the result through a caller-supplied callback rather than a native
// window surface.
package renderer

import (
	"github.com/oxy-go/swrast/colorformat"
	"github.com/oxy-go/swrast/framebuffer"
	"github.com/oxy-go/swrast/raster"
	"github.com/oxy-go/swrast/shadercontract"
	"github.com/oxy-go/swrast/tilescheduler"
)

// RasterizationMode selects which rasterizer algorithm fills a triangle's
// covered pixels: the flat-top/flat-bottom scanline sweep or the
// edge-function halfspace test. It is independent of AntialiasingMode —
// either rasterization mode can be combined with any antialiasing mode,
// except that MSAA_4X is always evaluated with the halfspace edge test
// regardless of the configured RasterizationMode, since a 4x subsample
// coverage-and-depth mask has no scanline-sweep equivalent.
type RasterizationMode int

const (
	// RasterizationHalfspace uses the edge-function rasterizer.
	RasterizationHalfspace RasterizationMode = iota
	// RasterizationScanline uses the flat-top/flat-bottom scanline rasterizer.
	RasterizationScanline
)

// AntialiasingMode selects how many samples are taken per final pixel and
// how they are resolved. It composes independently with RasterizationMode.
type AntialiasingMode int

const (
	// AntialiasingOff takes one sample per pixel; no resolve pass runs.
	AntialiasingOff AntialiasingMode = iota
	// AntialiasingSSAA2x shades a 2x2 grid of samples per pixel
	// independently and box-averages them.
	AntialiasingSSAA2x
	// AntialiasingSSAA4x shades a 4x4 grid of samples per pixel
	// independently and box-averages them.
	AntialiasingSSAA4x
	// AntialiasingMSAA4x evaluates coverage and depth at 4 fixed sub-pixel
	// offsets but shades once per pixel, box-averaging the covered samples.
	AntialiasingMSAA4x
)

// gridX returns the supersample grid factor for a mode: the buffers hold
// gridX*gridX samples per final pixel, and ResolveTile expects this value.
func (m AntialiasingMode) gridX() int {
	switch m {
	case AntialiasingSSAA2x, AntialiasingMSAA4x:
		return 2
	case AntialiasingSSAA4x:
		return 4
	default:
		return 1
	}
}

// SceneSource is the minimal scene contract the renderer needs: a
// SceneView for shaders plus a frame builder. The scene package's Scene
// satisfies this.
type SceneSource interface {
	raster.SceneView
	BuildFrame(renderW, renderH float32, arena *shadercontract.Arena) (clipped []raster.Vertex, drawCalls []raster.DrawCall)
}

// Renderer owns the render target buffers, the shader capture arena, and a
// tile worker pool, and runs the clear/build/dispatch/resolve/present cycle
// once per frame. It is the scene consumer: rasterization mode,
// antialiasing mode, mipmapping, and clear color are all live-settable
// between frames.
type Renderer struct {
	width, height  int
	rasterMode     RasterizationMode
	aaMode         AntialiasingMode
	mipmapsEnabled bool
	clearColor     colorformat.Color32

	pool *tilescheduler.Pool

	color  framebuffer.RenderBuffer[colorformat.Color32]
	depth  framebuffer.RenderBuffer[float32]
	sample framebuffer.RenderBuffer[colorformat.Color32]
	sdepth framebuffer.RenderBuffer[float32]

	arena shadercontract.Arena
}

// New creates a Renderer sized to width x height pixels, with a pool of
// workerCount tile workers, one disjoint horizontal band per worker per
// frame.
func New(width, height, workerCount int, rasterMode RasterizationMode, aaMode AntialiasingMode) *Renderer {
	r := &Renderer{
		rasterMode:     rasterMode,
		aaMode:         aaMode,
		mipmapsEnabled: true,
		pool:           tilescheduler.NewPool(workerCount),
	}
	r.Resize(width, height)
	return r
}

// Resize reallocates every render target to the new dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.color.Resize(width, height, 1)
	r.depth.Resize(width, height, 1)
	if grid := r.aaMode.gridX(); grid > 1 {
		r.sample.Resize(width, height, grid*grid)
		r.sdepth.Resize(width, height, grid*grid)
	}
}

// Close releases the renderer's tile worker pool.
func (r *Renderer) Close() {
	r.pool.Close()
}

// SetClearColor sets the color written at the start of each frame.
func (r *Renderer) SetClearColor(c colorformat.Color32) {
	r.clearColor = c
}

// SetRasterizationMode changes which rasterizer algorithm is used for
// subsequent frames.
func (r *Renderer) SetRasterizationMode(mode RasterizationMode) {
	r.rasterMode = mode
}

// SetAntialiasingMode changes the antialiasing mode for subsequent frames,
// resizing the multisample buffers if the new mode's sample grid differs
// from the current one.
func (r *Renderer) SetAntialiasingMode(mode AntialiasingMode) {
	if mode == r.aaMode {
		return
	}
	r.aaMode = mode
	r.Resize(r.width, r.height)
}

// SetMipmapsEnabled toggles derivative-based mip level selection for
// subsequent frames; disabling it forces every textured fragment to sample
// mip level 0.
func (r *Renderer) SetMipmapsEnabled(enabled bool) {
	r.mipmapsEnabled = enabled
}

// ColorBuffer returns the renderer's resolved, single-sample color buffer.
func (r *Renderer) ColorBuffer() *framebuffer.RenderBuffer[colorformat.Color32] {
	return &r.color
}

// Frame runs one full clear/build/dispatch/resolve cycle against a single
// scene and invokes present with the resolved color buffer. present is
// typically a thin adapter that copies pixels into an image.Image or a
// window surface.
func (r *Renderer) Frame(scene SceneSource, present func(color *framebuffer.RenderBuffer[colorformat.Color32])) {
	r.Clear()
	r.RenderScene(scene)
	r.Present(present)
}

// Clear resets every render target to the configured clear color / zero
// depth. Call once per frame before RenderScene, even when compositing
// multiple scenes into the same frame.
func (r *Renderer) Clear() {
	r.color.Clear(r.clearColor)
	r.depth.Clear(0)
	if r.aaMode.gridX() > 1 {
		r.sample.Clear(r.clearColor)
		r.sdepth.Clear(0)
	}
}

// RenderScene builds and rasterizes one scene's draw calls into the
// renderer's current targets without clearing or presenting, so multiple
// scenes can be layered into a single frame.
func (r *Renderer) RenderScene(scene SceneSource) {
	r.arena.Reset()
	clipped, calls := scene.BuildFrame(float32(r.width), float32(r.height), &r.arena)

	tiles := tilescheduler.TileRects(r.width, r.height, r.pool.WorkerCount())
	r.pool.Dispatch(tiles, func(tile raster.Rect) {
		for _, call := range calls {
			r.rasterizeTile(clipped, call, tile)
		}
	})
}

// Present resolves multisampling (if enabled) and invokes present with the
// resolved color buffer. Call once per frame after every scene has been
// rendered.
func (r *Renderer) Present(present func(color *framebuffer.RenderBuffer[colorformat.Color32])) {
	if grid := r.aaMode.gridX(); grid > 1 {
		tiles := tilescheduler.TileRects(r.width, r.height, r.pool.WorkerCount())
		r.pool.Dispatch(tiles, func(tile raster.Rect) {
			framebuffer.ResolveTile(&r.sample, &r.color, tile.Y, tile.H, grid)
		})
	}
	if present != nil {
		present(&r.color)
	}
}

func (r *Renderer) rasterizeTile(clipped []raster.Vertex, call raster.DrawCall, tile raster.Rect) {
	// MSAA_4X is paired only with the halfspace kernel: a coverage-and-
	// depth subsample mask has no scanline-sweep equivalent, so the
	// configured RasterizationMode is ignored for this combination.
	if r.aaMode == AntialiasingMSAA4x {
		raster.RasterizeHalfspaceMSAA(clipped, call, &r.arena, tile, r.mipmapsEnabled, &r.sample, &r.sdepth)
		return
	}

	if grid := r.aaMode.gridX(); grid > 1 {
		switch r.rasterMode {
		case RasterizationScanline:
			raster.RasterizeScanlineSSAA(clipped, call, &r.arena, tile, grid, r.mipmapsEnabled, &r.sample, &r.sdepth)
		default:
			raster.RasterizeHalfspaceSSAA(clipped, call, &r.arena, tile, grid, r.mipmapsEnabled, &r.sample, &r.sdepth)
		}
		return
	}

	switch r.rasterMode {
	case RasterizationScanline:
		raster.RasterizeScanline(clipped, call, &r.arena, tile, r.mipmapsEnabled, &r.color, &r.depth)
	default:
		raster.RasterizeHalfspace(clipped, call, &r.arena, tile, r.mipmapsEnabled, &r.color, &r.depth)
	}
}
