// Package notify posts desktop notifications through the freedesktop
// D-Bus interface. Track changes reuse one notification ID so the
// desktop shows a single bubble that updates in place.
package notify

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one message to post. A zero ReplacesID creates a new
// bubble; a previous ID updates it.
type Notification struct {
	Title      string
	Body       string
	Icon       string // file path or themed icon name
	Timeout    int32  // ms; -1 server default, 0 sticky
	ReplacesID uint32
	Urgency    Urgency
}

// Notifier posts notifications. Implementations degrade to no-ops when
// no notification service exists, so callers never need a platform
// check.
type Notifier interface {
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// noopNotifier satisfies Notifier where notifications cannot be sent.
type noopNotifier struct{}

func (noopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (noopNotifier) Close(uint32) error                  { return nil }
