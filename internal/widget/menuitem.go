package widget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/ErikKalkoken/slidemenu/internal/slidemenu"
)

// menuItem is a generated label of the menu row, which runs a function when tapped.
// It shows a centered text on a colored background and supports tooltips.
type menuItem struct {
	widget.BaseWidget
	ttwidget.ToolTipWidgetExtend

	// The function that is called when the label is tapped.
	OnTapped func()

	bg      *canvas.Rectangle
	hovered bool
	text    *canvas.Text
}

var _ fyne.Tappable = (*menuItem)(nil)
var _ desktop.Hoverable = (*menuItem)(nil)

func newMenuItem() *menuItem {
	w := &menuItem{
		bg:   canvas.NewRectangle(color.Transparent),
		text: canvas.NewText("", theme.Color(theme.ColorNameForeground)),
	}
	w.text.Alignment = fyne.TextAlignCenter
	w.ExtendBaseWidget(w)
	return w
}

func (w *menuItem) ExtendBaseWidget(wid fyne.Widget) {
	w.ExtendToolTipWidget(wid)
	w.BaseWidget.ExtendBaseWidget(wid)
}

// set shows item. Missing colors fall back to the theme.
func (w *menuItem) set(item slidemenu.Item, textSize float32) {
	w.text.Text = item.Label
	w.text.TextSize = textSize
	if item.TextColor != nil {
		w.text.Color = item.TextColor
	} else {
		w.text.Color = theme.Color(theme.ColorNameForeground)
	}
	if item.BackgroundColor != nil {
		w.bg.FillColor = item.BackgroundColor
	} else {
		w.bg.FillColor = color.Transparent
	}
	w.OnTapped = item.OnActivate
	w.SetToolTip(item.Label)
	w.Refresh()
}

func (w *menuItem) CreateRenderer() fyne.WidgetRenderer {
	c := container.NewStack(
		w.bg,
		container.NewPadded(container.New(layout.NewCenterLayout(), w.text)),
	)
	return widget.NewSimpleRenderer(c)
}

func (w *menuItem) Tapped(_ *fyne.PointEvent) {
	if w.OnTapped != nil {
		w.OnTapped()
	}
}

func (w *menuItem) Cursor() desktop.Cursor {
	if w.hovered {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

func (w *menuItem) MouseIn(e *desktop.MouseEvent) {
	w.ToolTipWidgetExtend.MouseIn(e)
	if w.OnTapped != nil {
		w.hovered = true
	}
}

func (w *menuItem) MouseMoved(e *desktop.MouseEvent) {
	w.ToolTipWidgetExtend.MouseMoved(e)
}

func (w *menuItem) MouseOut() {
	w.ToolTipWidgetExtend.MouseOut()
	w.hovered = false
}

// menuRow is the horizontal row of generated labels.
// All labels share the width of the row evenly.
type menuRow struct {
	box   *fyne.Container
	items []*menuItem
}

var _ slidemenu.Presenter = (*menuRow)(nil)

func newMenuRow(n int) *menuRow {
	r := &menuRow{items: make([]*menuItem, n)}
	objs := make([]fyne.CanvasObject, n)
	for i := range n {
		r.items[i] = newMenuItem()
		objs[i] = r.items[i]
	}
	r.box = container.New(layout.NewGridLayoutWithColumns(max(n, 1)), objs...)
	return r
}

func (r *menuRow) Len() int {
	return len(r.items)
}

func (r *menuRow) Bind(index int, item slidemenu.Item, textSize float32) {
	r.items[index].set(item, textSize)
}
