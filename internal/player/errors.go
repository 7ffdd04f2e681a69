package player

import "errors"

// Error taxonomy for the audio engine. Load-time failures are terminal
// for that load attempt only and never crash the process.
var (
	// ErrUnsupportedFormat indicates the file extension is not one of
	// the supported containers (.mp3/.wav/.flac/.ogg).
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrCorruptStream indicates the container headers could not be parsed.
	ErrCorruptStream = errors.New("corrupt audio stream")

	// ErrDeviceUnsupportedFormat indicates the stream's channel layout
	// cannot be rendered by the output device.
	ErrDeviceUnsupportedFormat = errors.New("format not supported by audio device")

	// ErrDeviceLost indicates the audio device could not be claimed or
	// was lost during playback. The caller should pause and surface the
	// error rather than abort.
	ErrDeviceLost = errors.New("audio device lost")

	// ErrLoadFailed wraps any decode or device error raised while
	// loading a track.
	ErrLoadFailed = errors.New("track load failed")
)
