package widget

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/slidemenu/internal/slidemenu"
)

type eventRecorder struct {
	kinds []slidemenu.EventKind
}

func (r *eventRecorder) HandleEvent(ev slidemenu.Event) {
	r.kinds = append(r.kinds, ev.Kind)
}

func makeSlideMenu(t *testing.T, cfg slidemenu.Config, opts ...SlideMenuOption) *SlideMenu {
	t.Helper()
	w, err := NewSlideMenu(cfg, []fyne.CanvasObject{widget.NewLabel("Content")}, opts...)
	require.NoError(t, err)
	win := test.NewWindow(w)
	t.Cleanup(win.Close)
	w.Resize(fyne.NewSize(400, 50))
	return w
}

// drag simulates dragging the slide menu horizontally from x1 to x2 and releasing it.
func drag(w *SlideMenu, x1, x2 float32) {
	w.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x2, 10)},
		Dragged:    fyne.Delta{DX: x2 - x1},
	})
	w.DragEnd()
	finishScroll(w)
}

func finishScroll(w *SlideMenu) {
	w.ctrl.FinishScroll()
	w.Refresh()
}

func TestSlideMenu_Create(t *testing.T) {
	test.NewTempApp(t)
	t.Run("can create with one content child", func(t *testing.T) {
		content := widget.NewLabel("Content")
		w, err := NewSlideMenu(slidemenu.Config{SubMenuCount: 3}, []fyne.CanvasObject{content})
		require.NoError(t, err)
		assert.Same(t, content, w.Content())
		assert.Equal(t, 3, w.row.Len())
		assert.False(t, w.IsOpen())
		assert.Equal(t, float32(0), w.Offset())
	})
	t.Run("should report structural violation when there is no content", func(t *testing.T) {
		_, err := NewSlideMenu(slidemenu.Config{}, nil)
		assert.ErrorIs(t, err, slidemenu.ErrStructuralViolation)
		assert.ErrorIs(t, err, slidemenu.ErrNoContent)
	})
	t.Run("should report structural violation when content is nil", func(t *testing.T) {
		_, err := NewSlideMenu(slidemenu.Config{}, []fyne.CanvasObject{nil})
		assert.ErrorIs(t, err, slidemenu.ErrNoContent)
	})
	t.Run("should report structural violation when there are too many children", func(t *testing.T) {
		for _, n := range []int{2, 3} {
			children := make([]fyne.CanvasObject, n)
			for i := range children {
				children[i] = widget.NewLabel("dummy")
			}
			_, err := NewSlideMenu(slidemenu.Config{}, children)
			assert.ErrorIs(t, err, slidemenu.ErrStructuralViolation)
			assert.ErrorIs(t, err, slidemenu.ErrTooManyContent)
		}
	})
	t.Run("should reject invalid configuration", func(t *testing.T) {
		_, err := NewSlideMenu(slidemenu.Config{SubMenuCount: -2}, []fyne.CanvasObject{widget.NewLabel("")})
		assert.ErrorIs(t, err, slidemenu.ErrInvalidConfig)
	})
	t.Run("should report attachment", func(t *testing.T) {
		r := &eventRecorder{}
		_, err := NewSlideMenu(slidemenu.Config{}, []fyne.CanvasObject{widget.NewLabel("")}, WithEventSink(r))
		require.NoError(t, err)
		assert.Equal(t, []slidemenu.EventKind{slidemenu.EventAttached}, r.kinds)
	})
}

func TestSlideMenu_BindMenu(t *testing.T) {
	test.NewTempApp(t)
	t.Run("should show items on generated labels", func(t *testing.T) {
		// given
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 2, TextSize: 15})
		var tapped []string
		items := []slidemenu.Item{
			{Label: "Pin", BackgroundColor: color.Gray{Y: 128}, TextColor: color.White, OnActivate: func() {
				tapped = append(tapped, "Pin")
			}},
			{Label: "Delete", BackgroundColor: color.RGBA{R: 255, A: 255}, TextColor: color.White, OnActivate: func() {
				tapped = append(tapped, "Delete")
			}},
		}
		// when
		err := w.BindMenu(func() []slidemenu.Item { return items })
		// then
		require.NoError(t, err)
		for i, it := range items {
			label := w.row.items[i]
			assert.Equal(t, it.Label, label.text.Text)
			assert.Equal(t, it.TextColor, label.text.Color)
			assert.Equal(t, it.BackgroundColor, label.bg.FillColor)
			assert.Equal(t, float32(15), label.text.TextSize)
		}
		test.Tap(w.row.items[1])
		test.Tap(w.row.items[0])
		assert.Equal(t, []string{"Delete", "Pin"}, tapped)
	})
	t.Run("should report mismatch", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 2})
		err := w.BindMenu(func() []slidemenu.Item { return []slidemenu.Item{{Label: "alpha"}} })
		assert.ErrorIs(t, err, slidemenu.ErrConfigurationMismatch)
	})
}

func TestSlideMenu_Layout(t *testing.T) {
	test.NewTempApp(t)
	t.Run("should place menu row right of the content", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 3})
		assert.Equal(t, fyne.NewSize(700, 50), w.MeasuredSize())
		assert.Equal(t, fyne.NewPos(0, 0), w.content.Position())
		assert.Equal(t, fyne.NewSize(400, 50), w.content.Size())
		assert.Equal(t, fyne.NewPos(400, 0), w.row.box.Position())
		assert.Equal(t, fyne.NewSize(300, 50), w.row.box.Size())
	})
	t.Run("should use fixed height as min height", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{HeightPolicy: slidemenu.Fixed(80)})
		assert.Equal(t, float32(80), w.MinSize().Height)
	})
	t.Run("should use content min size as min size", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{})
		assert.Equal(t, w.content.MinSize(), w.MinSize())
	})
}

func TestSlideMenu_Drag(t *testing.T) {
	test.NewTempApp(t)
	t.Run("should open when dragged left past threshold", func(t *testing.T) {
		// given
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 3})
		// when
		drag(w, 300, 200)
		// then
		assert.True(t, w.IsOpen())
		assert.Equal(t, float32(300), w.Offset())
		assert.Equal(t, fyne.NewPos(-300, 0), w.content.Position())
		assert.Equal(t, fyne.NewPos(100, 0), w.row.box.Position())
	})
	t.Run("should spring back when dragged left below threshold", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 3})
		drag(w, 300, 250)
		assert.False(t, w.IsOpen())
		assert.Equal(t, float32(0), w.Offset())
		assert.Equal(t, fyne.NewPos(0, 0), w.content.Position())
	})
	t.Run("should move content while dragging", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 3})
		w.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(250, 10)},
			Dragged:    fyne.Delta{DX: -50},
		})
		assert.Equal(t, float32(50), w.Offset())
		assert.Equal(t, fyne.NewPos(-50, 0), w.content.Position())
		w.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(-1000, 10)},
			Dragged:    fyne.Delta{DX: -1250},
		})
		assert.Equal(t, float32(300), w.Offset())
	})
	t.Run("should close open menu when dragged right", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 3})
		w.Open()
		finishScroll(w)
		drag(w, 100, 200)
		assert.False(t, w.IsOpen())
		assert.Equal(t, float32(0), w.Offset())
	})
	t.Run("should ignore vertical drags", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 3})
		w.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 40)},
			Dragged:    fyne.Delta{DY: 30},
		})
		w.DragEnd()
		assert.False(t, w.ctrl.IsDragging())
		assert.Equal(t, float32(0), w.Offset())
	})
}

func TestSlideMenu_OpenClose(t *testing.T) {
	test.NewTempApp(t)
	t.Run("can open and close", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 1})
		w.Open()
		finishScroll(w)
		assert.True(t, w.IsOpen())
		assert.Equal(t, float32(300), w.Offset())
		w.Close()
		finishScroll(w)
		assert.False(t, w.IsOpen())
		assert.Equal(t, float32(0), w.Offset())
	})
	t.Run("can toggle", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 1})
		w.Toggle()
		finishScroll(w)
		assert.True(t, w.IsOpen())
		w.Toggle()
		finishScroll(w)
		assert.False(t, w.IsOpen())
	})
	t.Run("open is idempotent", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 1})
		w.Open()
		finishScroll(w)
		w.Open()
		assert.Equal(t, float32(300), w.Offset())
		finishScroll(w)
		assert.True(t, w.IsOpen())
		assert.Equal(t, float32(300), w.Offset())
	})
	t.Run("tap on content of closed menu keeps it closed", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 1})
		w.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 10)})
		finishScroll(w)
		assert.False(t, w.IsOpen())
	})
	t.Run("stays revealed when resized while open", func(t *testing.T) {
		w := makeSlideMenu(t, slidemenu.Config{SubMenuCount: 1})
		w.Open()
		finishScroll(w)
		w.Resize(fyne.NewSize(800, 50))
		assert.Equal(t, float32(600), w.Offset())
		assert.Equal(t, fyne.NewPos(-600, 0), w.content.Position())
	})
}
