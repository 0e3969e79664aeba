package canvas

import (
	"errors"
	"image"
	"testing"

	"github.com/example/ovalpad/internal/geometry"
	"github.com/example/ovalpad/internal/theme"
)

func newTestResources(t *testing.T, w, h int) (*Resources, *fakeAllocator) {
	t.Helper()
	alloc := &fakeAllocator{}
	res := NewResources(alloc)
	if err := res.Ensure(image.Pt(w, h)); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	return res, alloc
}

func TestFramePaintsBackgroundAndEllipse(t *testing.T) {
	res, alloc := newTestResources(t, 300, 300)
	th := theme.Default()
	p := NewPainter(th)
	dst := &fakePresenter{preserved: true}

	e := geometry.EllipseBetween(geometry.Pt(100, 100), geometry.Pt(140, 180))
	if err := p.Frame(res, e, geometry.NewScale(1), dst); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	rgba := res.Buffer().RGBA()
	// A corner far from the shape carries the background color.
	if got := rgba.RGBAAt(2, 2); got != th.Background {
		t.Errorf("background pixel = %+v, want %+v", got, th.Background)
	}
	// The ellipse center is solidly filled.
	if got := rgba.RGBAAt(120, 140); got != th.Fill {
		t.Errorf("center pixel = %+v, want %+v", got, th.Fill)
	}
	// Just outside the horizontal extent (center x ± radius 20) is background.
	if got := rgba.RGBAAt(120+25, 140); got != th.Background {
		t.Errorf("pixel outside ellipse = %+v, want background", got)
	}

	// The frame was uploaded to the texture and presented once.
	if alloc.textures[0].uploaded == nil {
		t.Fatal("frame was never uploaded to the texture")
	}
	if got := alloc.textures[0].uploaded.RGBAAt(120, 140); got != th.Fill {
		t.Errorf("uploaded center pixel = %+v, want %+v", got, th.Fill)
	}
	if len(dst.copied) != 1 || dst.published != 1 {
		t.Errorf("expected one copy and one publish, got %d/%d", len(dst.copied), dst.published)
	}
}

func TestFrameScalesToDevicePixels(t *testing.T) {
	res, _ := newTestResources(t, 400, 400)
	th := theme.Default()
	p := NewPainter(th)
	dst := &fakePresenter{preserved: true}

	// Center (50,50) DIP at scale 2 lands on device pixel (100,100).
	e := geometry.Ellipse{Center: geometry.Pt(50, 50), RadiusX: 10, RadiusY: 10}
	if err := p.Frame(res, e, geometry.NewScale(2), dst); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	rgba := res.Buffer().RGBA()
	if got := rgba.RGBAAt(100, 100); got != th.Fill {
		t.Errorf("scaled center pixel = %+v, want fill", got)
	}
	// Radius 10 DIP = 20 px; pixel at 25 px from center is outside.
	if got := rgba.RGBAAt(100, 125); got != th.Background {
		t.Errorf("pixel beyond scaled radius = %+v, want background", got)
	}
}

func TestFrameDegenerateEllipseLeavesBackground(t *testing.T) {
	res, _ := newTestResources(t, 100, 100)
	th := theme.Default()
	p := NewPainter(th)
	dst := &fakePresenter{preserved: true}

	if err := p.Frame(res, geometry.EllipseAt(geometry.Pt(50, 50)), geometry.NewScale(1), dst); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	rgba := res.Buffer().RGBA()
	if got := rgba.RGBAAt(50, 50); got != th.Background {
		t.Errorf("degenerate ellipse should be near-invisible, got %+v", got)
	}
}

func TestFrameReportsSurfaceLoss(t *testing.T) {
	res, _ := newTestResources(t, 50, 50)
	p := NewPainter(theme.Default())
	dst := &fakePresenter{preserved: false}

	err := p.Frame(res, geometry.EllipseAt(geometry.Pt(10, 10)), geometry.NewScale(1), dst)
	if !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("expected ErrSurfaceLost, got %v", err)
	}
}

func TestNewPainterDefaultsTheme(t *testing.T) {
	p := NewPainter(nil)
	if p.Theme == nil || p.Theme.Name != "Default" {
		t.Errorf("nil theme should fall back to Default, got %+v", p.Theme)
	}
}
