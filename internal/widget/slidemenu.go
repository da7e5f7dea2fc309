package widget

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ErikKalkoken/slidemenu/internal/slidemenu"
)

// SlideMenu is a row which reveals a menu of actions when swiped to the left.
//
// It wraps exactly one content child. The menu row is placed right of the content
// and is generated from the configuration. It takes 3/4 of the width of the slide menu.
// The slide menu's own bounds act as viewport, so the parent should clip it
// or it should span the full width of the window.
type SlideMenu struct {
	widget.BaseWidget

	anim     *fyne.Animation
	content  fyne.CanvasObject
	ctrl     *slidemenu.Controller
	measured slidemenu.Measurement
	row      *menuRow
}

var _ fyne.Draggable = (*SlideMenu)(nil)
var _ fyne.Tappable = (*SlideMenu)(nil)
var _ fyne.Widget = (*SlideMenu)(nil)

type slideMenuOptions struct {
	curve fyne.AnimationCurve
	now   func() time.Time
	sink  slidemenu.EventSink
}

// SlideMenuOption configures a [SlideMenu].
type SlideMenuOption func(*slideMenuOptions)

// WithEventSink sets a sink which receives all events of the slide menu.
func WithEventSink(sink slidemenu.EventSink) SlideMenuOption {
	return func(o *slideMenuOptions) {
		o.sink = sink
	}
}

// WithCurve sets the animation curve for opening and closing.
func WithCurve(curve fyne.AnimationCurve) SlideMenuOption {
	return func(o *slideMenuOptions) {
		o.curve = curve
	}
}

// WithClock sets the clock used for animations.
func WithClock(now func() time.Time) SlideMenuOption {
	return func(o *slideMenuOptions) {
		o.now = now
	}
}

// NewSlideMenu returns a new [SlideMenu] for the content given as children.
// There must be exactly one child or an error wrapping [slidemenu.ErrStructuralViolation] is returned.
func NewSlideMenu(cfg slidemenu.Config, children []fyne.CanvasObject, opts ...SlideMenuOption) (*SlideMenu, error) {
	switch len(children) {
	case 0:
		return nil, slidemenu.ErrNoContent
	case 1:
	default:
		return nil, fmt.Errorf("got %d children: %w", len(children), slidemenu.ErrTooManyContent)
	}
	if children[0] == nil {
		return nil, slidemenu.ErrNoContent
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o slideMenuOptions
	for _, f := range opts {
		f(&o)
	}
	row := newMenuRow(cfg.SubMenuCount)
	ctrl, err := slidemenu.NewController(
		cfg,
		row,
		slidemenu.WithEventSink(o.sink),
		slidemenu.WithScroller(slidemenu.NewScroller(o.curve, o.now)),
	)
	if err != nil {
		return nil, err
	}
	w := &SlideMenu{content: children[0], ctrl: ctrl, row: row}
	w.ExtendBaseWidget(w)
	ctrl.Attached()
	return w, nil
}

// BindMenu binds the items returned by factory to the labels of the menu.
// The number of items must match the configured sub menu count
// or an error wrapping [slidemenu.ErrConfigurationMismatch] is returned.
func (w *SlideMenu) BindMenu(factory func() []slidemenu.Item) error {
	return w.ctrl.BindMenu(factory)
}

// Content returns the content child.
func (w *SlideMenu) Content() fyne.CanvasObject {
	return w.content
}

// IsOpen reports whether the menu is open or opening.
func (w *SlideMenu) IsOpen() bool {
	return w.ctrl.IsOpen()
}

// Offset returns how far the menu is currently revealed.
func (w *SlideMenu) Offset() float32 {
	return w.ctrl.Offset()
}

// MeasuredSize returns the size of the content and the menu row combined
// as calculated in the latest layout pass.
func (w *SlideMenu) MeasuredSize() fyne.Size {
	return w.measured.Total
}

// Open reveals the menu with an animation.
func (w *SlideMenu) Open() {
	w.ctrl.Open()
	w.animateScroll()
}

// Close hides the menu with an animation.
func (w *SlideMenu) Close() {
	w.ctrl.Close()
	w.animateScroll()
}

// Toggle opens a closed menu and closes an open one.
func (w *SlideMenu) Toggle() {
	if w.ctrl.IsOpen() {
		w.Close()
	} else {
		w.Open()
	}
}

func (w *SlideMenu) Dragged(e *fyne.DragEvent) {
	if e.Dragged.DX == 0 && !w.ctrl.IsDragging() {
		return // ignore vertical drags
	}
	if !w.ctrl.IsDragging() {
		w.stopAnimation()
		w.ctrl.Press(e.Position.X - e.Dragged.DX)
	}
	w.ctrl.Move(e.Position.X)
	w.Refresh()
}

func (w *SlideMenu) DragEnd() {
	if !w.ctrl.IsDragging() {
		return
	}
	w.ctrl.Release()
	w.animateScroll()
}

// Tapped handles taps, which did not hit a tappable child like a menu label.
// It is treated like a press and release without movement.
func (w *SlideMenu) Tapped(pe *fyne.PointEvent) {
	w.stopAnimation()
	w.ctrl.Press(pe.Position.X)
	w.ctrl.Release()
	w.animateScroll()
}

func (w *SlideMenu) stopAnimation() {
	if w.anim != nil {
		w.anim.Stop()
		w.anim = nil
	}
}

// animateScroll drives the controller's scroll animation until it reaches its final position.
func (w *SlideMenu) animateScroll() {
	w.stopAnimation()
	if !w.ctrl.IsAnimating() {
		w.Refresh()
		return
	}
	app := fyne.CurrentApp()
	if app == nil || !app.Settings().ShowAnimations() {
		w.ctrl.FinishScroll()
		w.Refresh()
		return
	}
	w.anim = fyne.NewAnimation(w.ctrl.Config().ScrollDuration, func(p float32) {
		if p >= 1 {
			w.ctrl.FinishScroll()
		} else {
			w.ctrl.ComputeScroll()
		}
		w.Refresh()
	})
	w.anim.Curve = fyne.AnimationLinear
	w.anim.Start()
}

func (w *SlideMenu) CreateRenderer() fyne.WidgetRenderer {
	c := container.New(&slideMenuLayout{w: w}, w.content, w.row.box)
	return widget.NewSimpleRenderer(c)
}

// slideMenuLayout places the content and the menu row of a slide menu
// shifted to the left by the current scroll offset.
type slideMenuLayout struct {
	w *SlideMenu
}

func (l *slideMenuLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	s := l.w.content.MinSize()
	if p := l.w.ctrl.Config().HeightPolicy; p.Kind == slidemenu.FixedHeight {
		s.Height = p.Value
	}
	return s
}

func (l *slideMenuLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	cfg := l.w.ctrl.Config()
	m := slidemenu.Measure(
		slidemenu.ExactSize(size.Width),
		slidemenu.ExactSize(size.Height),
		cfg.HeightPolicy,
		l.w.content.MinSize(),
	)
	l.w.measured = m
	l.w.ctrl.SetMenuWidth(m.Menu.Width)
	p := slidemenu.Arrange(m)
	offset := l.w.ctrl.Offset()
	l.w.content.Resize(p.Content.Size)
	l.w.content.Move(p.Content.Position.SubtractXY(offset, 0))
	l.w.row.box.Resize(p.Menu.Size)
	l.w.row.box.Move(p.Menu.Position.SubtractXY(offset, 0))
}
