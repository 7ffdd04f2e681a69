//go:build !linux

package notify

// New returns a Notifier that drops everything; desktop notifications
// are wired up only on Linux.
func New() (Notifier, error) {
	return noopNotifier{}, nil
}

// FindAlbumArtPath is a no-op off Linux, where nothing consumes it.
func FindAlbumArtPath(string) string { return "" }
