// Package sketch runs the drawing window: one ellipse stretched from a drag
// anchor, redrawn immediate-mode from current state on every paint event.
package sketch

import (
	"image"
	"image/draw"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/ovalpad/internal/canvas"
	"github.com/example/ovalpad/internal/clipboard"
	"github.com/example/ovalpad/internal/config"
	"github.com/example/ovalpad/internal/geometry"
	"github.com/example/ovalpad/internal/notify"
	"github.com/example/ovalpad/internal/platform"
	"github.com/example/ovalpad/internal/theme"
)

// eventDeque is the subset of screen.Window used to request repaints.
type eventDeque interface {
	Send(event interface{})
}

// Sketch is the drawing controller. It owns the render resources and the
// drag state machine: Idle until pointer-down, Dragging until pointer-up.
type Sketch struct {
	window   config.Window
	theme    *theme.Theme
	notifier *notify.Notifier
	onClose  func()

	scale    geometry.Scale
	scaleSet bool

	res       *canvas.Resources
	painter   *canvas.Painter
	deque     eventDeque
	presenter canvas.Presenter

	size     image.Point // client area, physical pixels
	ellipse  geometry.Ellipse
	anchor   geometry.Point
	dragging bool
	closed   bool
}

// Option modifies a Sketch during creation.
type Option func(*Sketch)

// WithWindow sets the initial window geometry and title.
func WithWindow(w config.Window) Option { return func(s *Sketch) { s.window = w } }

// WithTheme sets the colors used to render the scene.
func WithTheme(t *theme.Theme) Option { return func(s *Sketch) { s.theme = t } }

// WithScale fixes the pixels-per-DIP factor instead of detecting it from the
// window shell.
func WithScale(factor float64) Option {
	return func(s *Sketch) {
		s.scale = geometry.NewScale(factor)
		s.scaleSet = true
	}
}

// WithNotifier registers a notifier for user-visible actions.
func WithNotifier(n *notify.Notifier) Option { return func(s *Sketch) { s.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(s *Sketch) { s.onClose = fn } }

// New creates a Sketch with the provided options.
func New(opts ...Option) *Sketch {
	s := &Sketch{
		window: config.DefaultWindow,
		theme:  theme.Default(),
		scale:  geometry.NewScale(1),
	}
	for _, o := range opts {
		o(s)
	}
	s.painter = canvas.NewPainter(s.theme)
	return s
}

// Run executes the UI loop using shiny's driver. It returns when the window
// is destroyed.
func (s *Sketch) Run() { driver.Main(s.main) }

func (s *Sketch) main(scr screen.Screen) {
	w, err := scr.NewWindow(&screen.NewWindowOptions{
		Width:  s.window.Width,
		Height: s.window.Height,
		Title:  s.window.Title,
	})
	if err != nil {
		// Creation-time resource failure aborts the whole program.
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer s.notifyClose()

	s.attach(canvas.NewResources(scr), w, w)
	defer s.res.Discard()

	for {
		if !s.handleEvent(w.NextEvent()) {
			return
		}
	}
}

// attach wires the controller to its window shell. Split from main so tests
// can substitute in-memory fakes.
func (s *Sketch) attach(res *canvas.Resources, deque eventDeque, presenter canvas.Presenter) {
	s.res = res
	s.deque = deque
	s.presenter = presenter
}

// handleEvent dispatches one shell event. It returns false when the event
// loop should stop.
func (s *Sketch) handleEvent(e interface{}) bool {
	switch e := e.(type) {
	case lifecycle.Event:
		log.WithFields(log.Fields{"from": e.From, "to": e.To}).Debug("lifecycle")
		if e.To == lifecycle.StageDead {
			s.res.Discard()
			return false
		}
	case size.Event:
		s.handleSize(e)
	case paint.Event:
		s.handlePaint()
	case mouse.Event:
		s.handleMouse(e)
	case key.Event:
		return s.handleKey(e)
	}
	return true
}

func (s *Sketch) handleSize(e size.Event) {
	s.size = image.Pt(e.WidthPx, e.HeightPx)
	if !s.scaleSet {
		s.scale = detectScale(e)
		s.scaleSet = true
		log.WithFields(log.Fields{"x": s.scale.X, "y": s.scale.Y}).Debug("display scale")
	}
	if err := s.res.Resize(s.size); err != nil {
		// Resources are absent now; the next paint recreates them.
		log.WithError(err).Warn("resize render resources")
	}
	s.requestPaint()
}

func (s *Sketch) handlePaint() {
	if err := s.res.Ensure(s.size); err != nil {
		// Left absent on purpose; the next paint event retries.
		log.WithError(err).Warn("render resources unavailable")
		return
	}
	if err := s.painter.Frame(s.res, s.ellipse, s.scale, s.presenter); err != nil {
		log.WithError(err).Debug("discarding render resources")
		s.res.Discard()
	}
}

func (s *Sketch) handleMouse(e mouse.Event) {
	p := s.scale.PxToDip(geometry.Pt(float64(e.X), float64(e.Y)))
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		s.anchor = p
		s.ellipse = geometry.EllipseAt(p)
		s.dragging = true
		s.requestPaint()
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		// Geometry is left as-is; only the drag ends.
		s.dragging = false
	case e.Direction == mouse.DirNone && s.dragging:
		s.ellipse = geometry.EllipseBetween(s.anchor, p)
		s.requestPaint()
	}
}

// handleKey returns false when the pressed key quits the application. All
// other keys are diagnostic only and never affect drawing state.
func (s *Sketch) handleKey(e key.Event) bool {
	logKey(e)
	if e.Direction != key.DirPress {
		return true
	}
	switch {
	case e.Rune == 'c' && e.Modifiers&key.ModControl != 0:
		s.copyFrame()
	case e.Rune == 'q' || e.Rune == 'Q' || e.Code == key.CodeEscape:
		s.res.Discard()
		return false
	}
	return true
}

// copyFrame publishes a snapshot of the last rendered frame to the clipboard.
func (s *Sketch) copyFrame() {
	if !s.res.Valid() {
		log.Debug("no frame to copy")
		return
	}
	src := s.res.Buffer().RGBA()
	frame := image.NewRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), src, image.Point{}, draw.Src)
	if err := clipboard.WriteImage(frame); err != nil {
		log.WithError(err).Warn("copy frame")
		return
	}
	log.Info("frame copied to clipboard")
	if s.notifier != nil {
		if err := s.notifier.Notify(notify.EventCopy, "frame"); err != nil {
			log.WithError(err).Debug("copy notification")
		}
	}
}

func (s *Sketch) requestPaint() {
	s.deque.Send(paint.Event{})
}

func (s *Sketch) notifyClose() {
	if s.closed {
		return
	}
	s.closed = true
	if s.onClose != nil {
		s.onClose()
	}
}

// detectScale derives the pixels-per-DIP factor from the shell's reported
// density, probing the display directly when the shell reports nothing.
func detectScale(e size.Event) geometry.Scale {
	if e.PixelsPerPt > 0 {
		// PixelsPerPt is per typographic point; 72 of those per inch.
		return geometry.ScaleFromDPI(float64(e.PixelsPerPt) * 72)
	}
	if dpi, err := platform.DisplayDPI(); err == nil && dpi > 0 {
		return geometry.ScaleFromDPI(dpi)
	}
	return geometry.NewScale(1)
}

func logKey(e key.Event) {
	log.WithFields(log.Fields{
		"code":      e.Code,
		"rune":      e.Rune,
		"modifiers": e.Modifiers,
		"direction": e.Direction,
	}).Debug("key event")
}
