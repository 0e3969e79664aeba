// Package notify raises desktop notifications for user-visible actions.
package notify

import (
	"fmt"

	"github.com/example/ovalpad/internal/platform"
)

// Event identifies a notification trigger.
type Event string

// EventCopy emits a notification when the current frame is copied to the
// clipboard.
const EventCopy Event = "copy"

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "OvalPad",
		Events: map[Event]EventPreference{
			EventCopy: {Template: "Copied %s to clipboard"},
		},
	}
}

// Notifier dispatches notifications for enabled events.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a Notifier with the given preferences. All events start
// disabled.
func New(prefs Preferences) *Notifier {
	return &Notifier{prefs: prefs, enabled: make(map[Event]bool)}
}

// Enable toggles delivery for an event.
func (n *Notifier) Enable(e Event, on bool) {
	n.enabled[e] = on
}

// Enabled reports whether an event currently raises notifications.
func (n *Notifier) Enabled(e Event) bool {
	return n.enabled[e]
}

// Notify raises the notification for an event if it is enabled. The detail
// string is substituted into the event's template.
func (n *Notifier) Notify(e Event, detail string) error {
	if !n.enabled[e] {
		return nil
	}
	pref, ok := n.prefs.Events[e]
	if !ok {
		return fmt.Errorf("no template for notification event %q", e)
	}
	return platform.Notify(n.prefs.Title, fmt.Sprintf(pref.Template, detail), platform.Options{})
}
