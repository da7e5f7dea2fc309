package slidemenu

import (
	"fmt"
)

//go:generate go tool stringer -type=Direction -trimprefix=Direction

// Direction is the direction of the latest drag step.
type Direction uint

const (
	DirectionUnset Direction = iota
	DirectionLeft
	DirectionRight
)

// Presenter shows the generated labels of a menu row.
type Presenter interface {
	// Len returns the number of labels.
	Len() int
	// Bind shows item with label index.
	Bind(index int, item Item, textSize float32)
}

// Controller is the touch gesture state machine of a slide menu.
//
// The scroll offset is the single source of truth for how much of the menu is revealed.
// While a drag is in progress the drag owns the offset. Otherwise the scroll animation owns it.
//
// A controller is not thread safe. All methods are expected to be called from the UI goroutine.
type Controller struct {
	cfg       Config
	presenter Presenter
	scroller  *Scroller
	sink      EventSink

	direction  Direction
	dragStartX float32
	dragging   bool
	isOpen     bool
	menuWidth  float32
	offset     float32
}

// Option configures a [Controller].
type Option func(*Controller)

// WithEventSink sets the sink which receives all events.
func WithEventSink(sink EventSink) Option {
	return func(c *Controller) {
		c.sink = sink
	}
}

// WithScroller sets the scroller used for animating open and close.
func WithScroller(s *Scroller) Option {
	return func(c *Controller) {
		c.scroller = s
	}
}

// NewController returns a new controller for a menu row shown by presenter.
// The presenter must have exactly cfg.SubMenuCount labels.
func NewController(cfg Config, presenter Presenter, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if presenter == nil {
		return nil, fmt.Errorf("presenter missing: %w", ErrInvalidConfig)
	}
	if n := presenter.Len(); n != cfg.SubMenuCount {
		return nil, fmt.Errorf("presenter has %d labels, want %d: %w", n, cfg.SubMenuCount, ErrConfigurationMismatch)
	}
	c := &Controller{cfg: cfg.withDefaults(), presenter: presenter}
	for _, o := range opts {
		o(c)
	}
	if c.scroller == nil {
		c.scroller = NewScroller(nil, nil)
	}
	return c, nil
}

// Config returns the resolved configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// BindMenu binds the items returned by factory to the labels of the menu row.
// The factory is called exactly once and must return exactly one item per label.
func (c *Controller) BindMenu(factory func() []Item) error {
	var items []Item
	if factory != nil {
		items = factory()
	}
	if len(items) != c.cfg.SubMenuCount {
		return fmt.Errorf("got %d items for %d sub menus: %w", len(items), c.cfg.SubMenuCount, ErrConfigurationMismatch)
	}
	for i, it := range items {
		it.OnActivate = c.makeActivate(i, it)
		c.presenter.Bind(i, it, c.cfg.TextSize)
	}
	c.emit(EventBound)
	return nil
}

func (c *Controller) makeActivate(index int, it Item) func() {
	f := it.OnActivate
	return func() {
		if c.sink != nil {
			c.sink.HandleEvent(Event{
				Kind:   EventActivated,
				Offset: c.offset,
				Open:   c.isOpen,
				Index:  index,
				Label:  it.Label,
			})
		}
		if f != nil {
			f()
		}
	}
}

// Attached reports that the content child was attached.
func (c *Controller) Attached() {
	c.emit(EventAttached)
}

// Press starts a drag at x.
func (c *Controller) Press(x float32) {
	c.dragStartX = x
	c.dragging = true
	c.emit(EventPressed)
}

// Move continues a drag at x and scrolls by the distance from the previous position.
// The offset stays within [0, menu width].
func (c *Controller) Move(x float32) {
	c.dragging = true
	delta := x - c.dragStartX
	if delta < 0 {
		c.direction = DirectionLeft
	} else {
		c.direction = DirectionRight
	}
	switch next := c.offset - delta; {
	case next <= 0:
		c.offset = 0
	case next >= c.menuWidth:
		c.offset = c.menuWidth
	default:
		c.offset = next
	}
	c.dragStartX = x
}

// Release ends a drag and starts the menu to snap into the open or closed position.
//
// An open menu dragged to the right stays open only when more than 3/4 of it are still revealed.
// A closed menu dragged to the left opens when more than 1/4 of it has been revealed.
func (c *Controller) Release() {
	c.dragging = false
	c.emit(EventReleased)
	if c.isOpen {
		if c.direction == DirectionRight {
			if c.offset > c.menuWidth*3/4 {
				c.Open()
			} else {
				c.Close()
			}
		} else {
			c.Open()
		}
	} else {
		if c.direction == DirectionLeft {
			if c.offset > c.menuWidth/4 {
				c.Open()
			} else {
				c.Close()
			}
		} else {
			c.Close()
		}
	}
}

// Open starts scrolling the menu into full view.
func (c *Controller) Open() {
	c.scroller.StartScroll(c.offset, c.menuWidth-c.offset, c.cfg.ScrollDuration)
	c.isOpen = true
	c.emit(EventOpened)
}

// Close starts scrolling the menu out of view.
func (c *Controller) Close() {
	c.scroller.StartScroll(c.offset, -c.offset, c.cfg.ScrollDuration)
	c.isOpen = false
	c.emit(EventClosed)
}

// ComputeScroll applies the next position of a running animation
// and reports whether it did so. It does nothing while a drag is in progress.
func (c *Controller) ComputeScroll() bool {
	if c.dragging {
		return false
	}
	if !c.scroller.ComputeScrollOffset() {
		return false
	}
	c.setOffset(c.scroller.CurrX())
	return true
}

// FinishScroll moves a running animation to its final position.
// It does nothing while a drag is in progress.
func (c *Controller) FinishScroll() {
	if c.dragging || c.scroller.IsFinished() {
		return
	}
	c.scroller.AbortAnimation()
	c.setOffset(c.scroller.CurrX())
}

// SetMenuWidth updates the measured width of the menu row.
// An open menu which is not being dragged or animated stays fully revealed.
func (c *Controller) SetMenuWidth(w float32) {
	if w < 0 {
		w = 0
	}
	if w == c.menuWidth {
		return
	}
	c.menuWidth = w
	if !c.dragging {
		c.scroller.AbortAnimation()
		if c.isOpen {
			c.offset = w
		} else {
			c.offset = 0
		}
	}
	c.setOffset(c.offset)
	c.emit(EventMeasured)
}

func (c *Controller) setOffset(x float32) {
	c.offset = max(0, min(x, c.menuWidth))
}

// Direction returns the direction of the latest drag step.
func (c *Controller) Direction() Direction {
	return c.direction
}

// IsDragging reports whether a drag is in progress.
func (c *Controller) IsDragging() bool {
	return c.dragging
}

// IsOpen reports whether the menu is committed to be open.
func (c *Controller) IsOpen() bool {
	return c.isOpen
}

// IsAnimating reports whether an open or close animation is running.
func (c *Controller) IsAnimating() bool {
	return !c.scroller.IsFinished()
}

// MenuWidth returns the measured width of the menu row.
func (c *Controller) MenuWidth() float32 {
	return c.menuWidth
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() float32 {
	return c.offset
}

func (c *Controller) emit(kind EventKind) {
	if c.sink == nil {
		return
	}
	c.sink.HandleEvent(Event{Kind: kind, Offset: c.offset, Open: c.isOpen, Index: -1})
}
