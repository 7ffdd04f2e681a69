package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/muker/internal/tags"
)

// openStream opens and decodes an audio file, returning the open file
// handle, a seekable streamer, and the stream format. The streamer
// decodes incrementally; the whole file is never buffered.
func openStream(path string) (*os.File, beep.StreamSeekCloser, beep.Format, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	codec, ok := codecNames[ext]
	if !ok {
		return nil, nil, beep.Format{}, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, "", err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case tags.ExtMP3:
		streamer, format, err = mp3.Decode(f)
	case tags.ExtWAV:
		streamer, format, err = wav.Decode(f)
	case tags.ExtFLAC:
		streamer, format, err = flac.Decode(f)
	case tags.ExtOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, "", fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}

	if format.NumChannels > 2 {
		streamer.Close()
		f.Close()
		return nil, nil, beep.Format{}, "", fmt.Errorf("%w: %d channels", ErrDeviceUnsupportedFormat, format.NumChannels)
	}

	return f, streamer, format, codec, nil
}

var codecNames = map[string]string{
	tags.ExtMP3:  "MP3",
	tags.ExtWAV:  "WAV",
	tags.ExtFLAC: "FLAC",
	tags.ExtOGG:  "OGG",
}
