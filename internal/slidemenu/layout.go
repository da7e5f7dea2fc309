package slidemenu

import "fyne.io/fyne/v2"

// SizeMode tells how a child has to treat a size constraint.
type SizeMode uint

const (
	Unspecified SizeMode = iota // child can be as large as it wants
	Exactly                     // child must have exactly this size
	AtMost                      // child can be as large as it wants up to this size
)

// Constraint is a size constraint along one axis.
type Constraint struct {
	Mode SizeMode
	Size float32
}

// ExactSize returns a constraint for exactly v.
func ExactSize(v float32) Constraint {
	return Constraint{Mode: Exactly, Size: v}
}

// AtMostSize returns a constraint for at most v.
func AtMostSize(v float32) Constraint {
	return Constraint{Mode: AtMost, Size: v}
}

// Resolve returns the size a child with the natural size v gets under this constraint.
func (c Constraint) Resolve(v float32) float32 {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		return min(v, c.Size)
	}
	return v
}

// Measurement is the result of measuring a slide menu.
type Measurement struct {
	Content fyne.Size // measured size of the content child
	Menu    fyne.Size // measured size of the menu row
	Total   fyne.Size // measured size of the whole slide menu incl. the hidden menu
}

// contentHeightConstraint translates the container height into the constraint for the content child.
func contentHeightConstraint(container Constraint, policy HeightPolicy) Constraint {
	switch policy.Kind {
	case WrapContent:
		return AtMostSize(container.Size)
	case FixedHeight:
		return ExactSize(policy.Value)
	}
	return ExactSize(container.Size)
}

// Measure measures a slide menu within a container.
// natural is the natural (minimum) size of the content child.
//
// The menu row gets 3/4 of the container width. The total width is wider than the container,
// since the menu row is placed outside until it is scrolled into view.
func Measure(width, height Constraint, policy HeightPolicy, natural fyne.Size) Measurement {
	hc := contentHeightConstraint(height, policy)
	content := fyne.NewSize(width.Resolve(natural.Width), hc.Resolve(natural.Height))
	menu := fyne.NewSize(width.Size*3/4, content.Height)
	return Measurement{
		Content: content,
		Menu:    menu,
		Total:   fyne.NewSize(width.Size+menu.Width, content.Height),
	}
}

// Rect is a positioned rectangle.
type Rect struct {
	Position fyne.Position
	Size     fyne.Size
}

// Placement is the result of arranging a measured slide menu.
type Placement struct {
	Content Rect
	Menu    Rect
}

// Arrange places the content at the origin and the menu row right next to it.
func Arrange(m Measurement) Placement {
	return Placement{
		Content: Rect{Position: fyne.NewPos(0, 0), Size: m.Content},
		Menu: Rect{
			Position: fyne.NewPos(m.Content.Width, 0),
			Size:     fyne.NewSize(m.Menu.Width, m.Content.Height),
		},
	}
}
