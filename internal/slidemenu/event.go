package slidemenu

import (
	"log/slog"
)

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind is the kind of an [Event].
type EventKind uint

const (
	EventAttached  EventKind = iota // content child was attached
	EventBound                      // menu items were bound to the labels
	EventPressed                    // a drag started
	EventReleased                   // a drag ended
	EventOpened                     // menu starts to open
	EventClosed                     // menu starts to close
	EventActivated                  // a menu item was tapped
	EventMeasured                   // the width of the menu row changed
)

// Event is something noteworthy that happened in a slide menu.
type Event struct {
	Kind   EventKind
	Offset float32 // scroll offset at the time of the event
	Open   bool    // whether the menu is committed to be open
	Index  int     // index of the activated item or -1
	Label  string  // label of the activated item
}

// EventSink receives events from a slide menu.
type EventSink interface {
	HandleEvent(ev Event)
}

// EventSinkFunc is an adapter which allows an ordinary function to be used as [EventSink].
type EventSinkFunc func(ev Event)

func (f EventSinkFunc) HandleEvent(ev Event) {
	f(ev)
}

// NewLogSink returns a sink which logs all events at debug level.
// A nil logger means the default logger.
func NewLogSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return EventSinkFunc(func(ev Event) {
		args := []any{"event", ev.Kind.String(), "offset", ev.Offset, "open", ev.Open}
		if ev.Kind == EventActivated {
			args = append(args, "index", ev.Index, "label", ev.Label)
		}
		logger.Debug("slide menu", args...)
	})
}
