// Package canvas owns the render resources for the sketch window: a CPU-side
// pixel buffer the scene is drawn into and a GPU-side texture it is presented
// from. The pair is created lazily from the paint path, discarded on device
// loss, and recreated on the next paint.
package canvas

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/exp/shiny/screen"
)

// ErrSurfaceLost is reported when presenting a frame dropped the back buffer.
// The caller recovers by discarding the resources; the next paint event
// recreates them.
var ErrSurfaceLost = errors.New("canvas: presented surface was lost")

var errEmptySize = errors.New("canvas: client area has no size")

// Allocator creates the backing render resources. screen.Screen satisfies it.
type Allocator interface {
	NewBuffer(size image.Point) (screen.Buffer, error)
	NewTexture(size image.Point) (screen.Texture, error)
}

// Resources is the buffer/texture pair backing the window. Invariant: both
// are valid or both are nil, never partially constructed.
type Resources struct {
	alloc Allocator
	buf   screen.Buffer
	tex   screen.Texture
	size  image.Point
}

// NewResources returns an empty resource pair allocating from alloc.
func NewResources(alloc Allocator) *Resources {
	return &Resources{alloc: alloc}
}

// Valid reports whether the pair is usable for drawing.
func (r *Resources) Valid() bool {
	return r.buf != nil && r.tex != nil
}

// Size returns the pixel size the pair was created at. Zero when absent.
func (r *Resources) Size() image.Point {
	if !r.Valid() {
		return image.Point{}
	}
	return r.size
}

// Buffer returns the CPU-side pixel buffer, or nil when absent.
func (r *Resources) Buffer() screen.Buffer { return r.buf }

// Texture returns the GPU-side texture, or nil when absent.
func (r *Resources) Texture() screen.Texture { return r.tex }

// Ensure makes the pair available at the given pixel size. It is a no-op
// when the resources already exist. On any creation failure both resources
// are left absent and the error is returned; the caller retries on the next
// paint event.
func (r *Resources) Ensure(size image.Point) error {
	if r.Valid() {
		return nil
	}
	if size.X <= 0 || size.Y <= 0 {
		return errEmptySize
	}
	buf, err := r.alloc.NewBuffer(size)
	if err != nil {
		return fmt.Errorf("create buffer: %w", err)
	}
	tex, err := r.alloc.NewTexture(size)
	if err != nil {
		buf.Release()
		return fmt.Errorf("create texture: %w", err)
	}
	r.buf = buf
	r.tex = tex
	r.size = size
	return nil
}

// Discard releases both resources unconditionally. Idempotent.
func (r *Resources) Discard() {
	if r.buf != nil {
		r.buf.Release()
		r.buf = nil
	}
	if r.tex != nil {
		r.tex.Release()
		r.tex = nil
	}
	r.size = image.Point{}
}

// Resize makes the pair adopt a new pixel size. When the resources are
// absent this is a no-op; they will be created at the new size on the next
// paint. On failure the resources are left absent, which the next paint
// recovers from.
func (r *Resources) Resize(size image.Point) error {
	if !r.Valid() {
		return nil
	}
	if size == r.size {
		return nil
	}
	r.Discard()
	return r.Ensure(size)
}
