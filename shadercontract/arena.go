// Package shadercontract holds the per-frame capture mechanism shared by
// every shader implementation: a polymorphic, append-only store that lets
// the main thread hand off value copies of per-object shader state to
// worker goroutines without either side touching the scene's live state.
package shadercontract

// Handle addresses one captured shader instance inside an Arena.
type Handle int

// Capturable is implemented by every shader. CaptureInto value-copies the
// shader into the frame's arena and returns a handle the draw call records;
// after capture, every tile worker invokes the instance at that handle for
// its own band, concurrently, and nothing writes the instance.
type Capturable interface {
	CaptureInto(a *Arena) Handle
}

// Arena is a per-frame, append-only store of captured shader instances. It
// is populated only on the main thread while draw calls are built, then
// read concurrently — never written — by worker goroutines during
// rasterization. Each captured instance is referenced by exactly one draw
// call, and every worker rasterizes every draw call within its own band, so
// one instance is read by several workers at once. Reset clears the arena
// for reuse at the start of the next frame; it does not shrink the backing storage, matching the original "bump
// allocator, cleared not individually freed" design.
type Arena struct {
	instances []any
}

// Put appends a value copy of v to the arena and returns its handle.
//
// Parameters:
//   - v: the shader instance to store, already value-copied by the caller
//
// Returns:
//   - Handle: the handle to retrieve v via Get
func (a *Arena) Put(v any) Handle {
	a.instances = append(a.instances, v)
	return Handle(len(a.instances) - 1)
}

// Get returns the captured instance at h.
//
// Parameters:
//   - h: a handle previously returned by Put
//
// Returns:
//   - any: the captured instance
func (a *Arena) Get(h Handle) any {
	return a.instances[h]
}

// Len returns the number of instances currently captured.
func (a *Arena) Len() int {
	return len(a.instances)
}

// Reset clears the arena for the next frame, retaining its backing array.
func (a *Arena) Reset() {
	a.instances = a.instances[:0]
}
