//go:build !windows

// Package stderr reroutes file descriptor 2 through a pipe. ALSA and
// other C libraries write warnings straight to fd 2, which would land
// in the middle of the alternate screen; captured lines surface on the
// Messages channel instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages delivers captured stderr lines. Sends never block; lines
// are dropped once the buffer is full.
var Messages = make(chan string, 100)

// capture holds the redirect state between Start and Stop.
var capture struct {
	active   bool
	savedFd  int // dup of the real stderr
	readEnd  *os.File
	writeEnd *os.File
}

// Start redirects fd 2 into the pipe. Call before the audio stack
// initializes; a failure leaves stderr untouched and is safe to ignore.
func Start() error {
	if capture.active {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	saved, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(saved)
		r.Close()
		w.Close()
		return err
	}

	capture.savedFd = saved
	capture.readEnd = r
	capture.writeEnd = w
	capture.active = true

	go drain(r)
	return nil
}

// drain forwards non-empty pipe lines to Messages until the pipe
// closes.
func drain(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
		}
	}
}

// WriteOriginal writes past the capture to the real stderr. For fatal
// messages that must survive the TUI.
func WriteOriginal(msg string) {
	if capture.savedFd > 0 {
		_, _ = syscall.Write(capture.savedFd, []byte(msg))
	}
}

// Stop puts the original fd 2 back and closes the pipe.
func Stop() {
	if !capture.active {
		return
	}

	_ = syscall.Dup2(capture.savedFd, int(os.Stderr.Fd()))
	_ = syscall.Close(capture.savedFd)

	capture.writeEnd.Close()
	capture.readEnd.Close()

	close(Messages)
	capture.active = false
}
