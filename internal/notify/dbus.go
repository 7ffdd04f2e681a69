//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/muker/internal/mpris"
)

const (
	notifyService  = "org.freedesktop.Notifications"
	notifyPath     = "/org/freedesktop/Notifications"
	notifyMethod   = notifyService + ".Notify"
	closeMethod    = notifyService + ".CloseNotification"
	appName        = "muker"
	appDisplayName = "Muker"
)

type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. When the bus is unreachable the
// returned Notifier silently drops everything; audio playback must not
// depend on a desktop environment.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopNotifier{}, nil //nolint:nilerr // headless sessions are fine
	}
	return &busNotifier{obj: conn.Object(notifyService, notifyPath)}, nil
}

func (b *busNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
	}

	var id uint32
	err := b.obj.Call(notifyMethod, 0,
		appDisplayName,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{}, // no actions
		hints,
		n.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (b *busNotifier) Close(id uint32) error {
	return b.obj.Call(closeMethod, 0, id).Err
}

// FindAlbumArtPath locates cover art next to a track file.
func FindAlbumArtPath(trackPath string) string {
	return mpris.FindAlbumArt(trackPath)
}
