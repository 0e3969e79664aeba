package canvas

import (
	"image"
	"image/draw"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/vector"

	"github.com/example/ovalpad/internal/geometry"
	"github.com/example/ovalpad/internal/theme"
)

// kappa is the control-point distance that makes four cubic Béziers
// approximate a circle quadrant.
const kappa = 0.55228475

// Presenter is the subset of screen.Window the painter needs to put a frame
// on screen.
type Presenter interface {
	Copy(dp image.Point, src screen.Texture, sr image.Rectangle, op draw.Op, opts *screen.DrawOptions)
	Publish() screen.PublishResult
}

// Painter redraws the whole scene every frame from current state: clear to
// the theme background, fill the one ellipse, present.
type Painter struct {
	Theme *theme.Theme
}

// NewPainter returns a painter using the given theme.
func NewPainter(t *theme.Theme) *Painter {
	if t == nil {
		t = theme.Default()
	}
	return &Painter{Theme: t}
}

// Frame draws the ellipse into the resources and presents the result. The
// ellipse is given in device-independent units and converted through scale.
// Returns ErrSurfaceLost when the publish dropped the back buffer; the
// caller must then discard the resources.
func (p *Painter) Frame(res *Resources, e geometry.Ellipse, scale geometry.Scale, dst Presenter) error {
	rgba := res.Buffer().RGBA()
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(p.Theme.Background), image.Point{}, draw.Src)
	if !e.Empty() {
		fillEllipse(rgba, e, scale, p.Theme)
	}

	res.Texture().Upload(image.Point{}, res.Buffer(), res.Buffer().Bounds())
	dst.Copy(image.Point{}, res.Texture(), res.Texture().Bounds(), draw.Src, nil)
	if pr := dst.Publish(); !pr.BackBufferPreserved {
		return ErrSurfaceLost
	}
	return nil
}

// fillEllipse rasterizes the ellipse as four cubic Béziers with the theme's
// fill color, anti-aliased.
func fillEllipse(dst *image.RGBA, e geometry.Ellipse, scale geometry.Scale, t *theme.Theme) {
	c := scale.DipToPx(e.Center)
	cx, cy := float32(c.X), float32(c.Y)
	rx := float32(e.RadiusX * scale.X)
	ry := float32(e.RadiusY * scale.Y)
	kx := float32(kappa) * rx
	ky := float32(kappa) * ry

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	z.DrawOp = draw.Over
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(t.Fill), image.Point{})
}
