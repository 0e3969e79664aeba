package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/screen"
)

// In-memory stand-ins for the shiny screen types so the resource lifecycle
// and the paint path can be exercised without a display.

type fakeBuffer struct {
	rgba     *image.RGBA
	released bool
}

var _ screen.Buffer = (*fakeBuffer)(nil)

func (b *fakeBuffer) Release()                { b.released = true }
func (b *fakeBuffer) Size() image.Point       { return b.rgba.Bounds().Size() }
func (b *fakeBuffer) Bounds() image.Rectangle { return b.rgba.Bounds() }
func (b *fakeBuffer) RGBA() *image.RGBA       { return b.rgba }

type fakeTexture struct {
	size     image.Point
	released bool
	uploaded *image.RGBA
}

var _ screen.Texture = (*fakeTexture)(nil)

func (t *fakeTexture) Release()                { t.released = true }
func (t *fakeTexture) Size() image.Point       { return t.size }
func (t *fakeTexture) Bounds() image.Rectangle { return image.Rectangle{Max: t.size} }

func (t *fakeTexture) Upload(dp image.Point, src screen.Buffer, sr image.Rectangle) {
	clone := image.NewRGBA(src.RGBA().Bounds())
	draw.Draw(clone, clone.Bounds(), src.RGBA(), image.Point{}, draw.Src)
	t.uploaded = clone
}

func (t *fakeTexture) Fill(dr image.Rectangle, src color.Color, op draw.Op) {}

type fakeAllocator struct {
	buffers  []*fakeBuffer
	textures []*fakeTexture

	failBuffers  bool
	failTextures bool
}

var errAllocFailed = errors.New("allocation refused")

func (a *fakeAllocator) NewBuffer(size image.Point) (screen.Buffer, error) {
	if a.failBuffers {
		return nil, errAllocFailed
	}
	b := &fakeBuffer{rgba: image.NewRGBA(image.Rectangle{Max: size})}
	a.buffers = append(a.buffers, b)
	return b, nil
}

func (a *fakeAllocator) NewTexture(size image.Point) (screen.Texture, error) {
	if a.failTextures {
		return nil, errAllocFailed
	}
	t := &fakeTexture{size: size}
	a.textures = append(a.textures, t)
	return t, nil
}

type fakePresenter struct {
	copied    []screen.Texture
	published int
	preserved bool
}

func (p *fakePresenter) Copy(dp image.Point, src screen.Texture, sr image.Rectangle, op draw.Op, opts *screen.DrawOptions) {
	p.copied = append(p.copied, src)
}

func (p *fakePresenter) Publish() screen.PublishResult {
	p.published++
	return screen.PublishResult{BackBufferPreserved: p.preserved}
}
