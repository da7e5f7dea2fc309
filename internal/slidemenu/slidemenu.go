// Package slidemenu contains the gesture, layout and animation logic of a swipe-to-reveal menu row.
//
// The package only depends on Fyne's geometry and animation curve types.
// Rendering the content and the generated labels is left to a [Presenter].
package slidemenu

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

const (
	DefaultTextSize       = 10
	DefaultScrollDuration = 500 * time.Millisecond
)

var (
	ErrConfigurationMismatch = errors.New("number of menu items does not match sub menu count")
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrStructuralViolation   = errors.New("slide menu needs exactly one content child")
	ErrNoContent             = fmt.Errorf("no content child: %w", ErrStructuralViolation)
	ErrTooManyContent        = fmt.Errorf("more than one content child: %w", ErrStructuralViolation)
)

// Item describes one action of the menu row.
type Item struct {
	Label           string
	BackgroundColor color.Color
	TextColor       color.Color
	OnActivate      func() // called when the label is tapped
}

// HeightKind is the kind of height a content child asks for.
type HeightKind uint

const (
	MatchParent HeightKind = iota
	WrapContent
	FixedHeight
)

// HeightPolicy is the declared height of the content child.
type HeightPolicy struct {
	Kind  HeightKind
	Value float32 // only used with FixedHeight
}

// Fixed returns a policy for a content child with a fixed height.
func Fixed(h float32) HeightPolicy {
	return HeightPolicy{Kind: FixedHeight, Value: h}
}

// Config is the configuration of a slide menu. It is resolved once on construction.
type Config struct {
	// Number of labels generated for the menu row.
	SubMenuCount int
	// Text size of all generated labels. Zero means [DefaultTextSize].
	TextSize float32
	// Height policy of the content child. Defaults to [MatchParent].
	HeightPolicy HeightPolicy
	// Duration of open and close animations. Zero means [DefaultScrollDuration].
	ScrollDuration time.Duration
}

// Validate reports whether c is a usable configuration.
func (c Config) Validate() error {
	if c.SubMenuCount < 0 {
		return fmt.Errorf("sub menu count %d: %w", c.SubMenuCount, ErrInvalidConfig)
	}
	if c.TextSize < 0 {
		return fmt.Errorf("text size %f: %w", c.TextSize, ErrInvalidConfig)
	}
	if c.HeightPolicy.Kind == FixedHeight && c.HeightPolicy.Value < 0 {
		return fmt.Errorf("fixed height %f: %w", c.HeightPolicy.Value, ErrInvalidConfig)
	}
	if c.ScrollDuration < 0 {
		return fmt.Errorf("scroll duration %s: %w", c.ScrollDuration, ErrInvalidConfig)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.TextSize == 0 {
		c.TextSize = DefaultTextSize
	}
	if c.ScrollDuration == 0 {
		c.ScrollDuration = DefaultScrollDuration
	}
	return c
}
