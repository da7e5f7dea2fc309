package main

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxlayout "github.com/ErikKalkoken/fyne-kx/layout"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
	"github.com/dustin/go-humanize"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/maniartech/signals"

	"github.com/ErikKalkoken/slidemenu/internal/menuconfig"
	"github.com/ErikKalkoken/slidemenu/internal/slidemenu"
	iwidget "github.com/ErikKalkoken/slidemenu/internal/widget"
)

const settingMenuOpen = "settingMenuOpen"

// demoUI is the single window of the demo app.
type demoUI struct {
	app     fyne.App
	content fyne.CanvasObject
	events  signals.Signal[slidemenu.Event]
	isOpen  bool
	menu    *iwidget.SlideMenu
	opened  int // how often the menu changed from closed to open
	status  *widget.Label
	taps    int
	window  fyne.Window
}

func newDemoUI(a fyne.App, m menuconfig.Menu) (*demoUI, error) {
	u := &demoUI{
		app:    a,
		events: signals.NewSync[slidemenu.Event](),
		status: widget.NewLabel("Swipe the row to the left"),
	}
	logSink := slidemenu.NewLogSink(slog.Default())
	u.events.AddListener(func(_ context.Context, ev slidemenu.Event) {
		logSink.HandleEvent(ev)
	}, "log")
	u.events.AddListener(func(_ context.Context, ev slidemenu.Event) {
		u.handleEvent(ev)
	}, "status")

	sm, err := iwidget.NewSlideMenu(
		m.Config,
		[]fyne.CanvasObject{u.makeContent()},
		iwidget.WithEventSink(slidemenu.EventSinkFunc(func(ev slidemenu.Event) {
			u.events.Emit(context.Background(), ev)
		})),
	)
	if err != nil {
		return nil, err
	}
	err = sm.BindMenu(m.Factory(func(index int, label string) {
		slog.Info("Menu item tapped", "index", index, "label", label)
	}))
	if err != nil {
		return nil, err
	}
	u.menu = sm

	buttons := container.NewHBox(
		widget.NewButtonWithIcon("Open", theme.NavigateBackIcon(), sm.Open),
		widget.NewButtonWithIcon("Close", theme.NavigateNextIcon(), sm.Close),
		widget.NewButton("Toggle", sm.Toggle),
	)
	u.content = container.NewBorder(
		container.NewVBox(sm, widget.NewSeparator()),
		container.NewVBox(widget.NewSeparator(), u.status, buttons),
		nil,
		nil,
	)
	u.window = a.NewWindow("Slide Menu")
	u.window.SetPadded(false)
	u.window.SetContent(fynetooltip.AddWindowToolTipLayer(u.content, u.window.Canvas()))
	u.window.SetOnClosed(func() {
		fynetooltip.DestroyWindowToolTipLayer(u.window.Canvas())
	})
	u.window.Resize(fyne.NewSize(360, 640))
	if a.Preferences().Bool(settingMenuOpen) {
		sm.Open()
	}
	return u, nil
}

// makeContent returns the content child of the slide menu.
func (u *demoUI) makeContent() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Inbox", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	body := kxwidget.NewTappableLabel("Swipe left for more actions", func() {
		u.taps++
		u.status.SetText(fmt.Sprintf("Content tapped for the %s time", humanize.Ordinal(u.taps)))
	})
	icon := widget.NewIcon(theme.MailComposeIcon())
	return container.New(kxlayout.NewColumns(48), icon, container.NewVBox(title, body))
}

func (u *demoUI) handleEvent(ev slidemenu.Event) {
	switch ev.Kind {
	case slidemenu.EventOpened:
		if u.isOpen {
			return
		}
		u.isOpen = true
		u.opened++
		u.status.SetText(fmt.Sprintf("Menu opened for the %s time", humanize.Ordinal(u.opened)))
		u.app.Preferences().SetBool(settingMenuOpen, true)
	case slidemenu.EventClosed:
		if !u.isOpen {
			return
		}
		u.isOpen = false
		u.status.SetText("Menu closed")
		u.app.Preferences().SetBool(settingMenuOpen, false)
	case slidemenu.EventActivated:
		u.status.SetText(fmt.Sprintf("%s tapped", ev.Label))
	}
}

func (u *demoUI) showAndRun() {
	u.window.ShowAndRun()
}
