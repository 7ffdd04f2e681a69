//go:build windows

// Windows audio backends do not spray fd 2, so nothing is captured.
package stderr

import "os"

// Messages is never written to on Windows.
var Messages = make(chan string)

func Start() error { return nil }

func Stop() {}

// WriteOriginal writes to stderr unchanged.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}
