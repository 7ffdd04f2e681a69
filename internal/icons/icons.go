// Package icons maps player glyphs to the configured icon style, so
// terminals without Nerd Fonts still get sensible indicators.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Stop       string
	Loading    string
	Shuffle    string
	RepeatAll  string
	RepeatOne  string
	Volume     string
	VolumeMute string
}

var (
	nerdIcons = Icons{
		Play:       "", // nf-fa-play
		Pause:      "", // nf-fa-pause
		Stop:       "", // nf-fa-stop
		Loading:    "", // nf-fa-spinner
		Shuffle:    "󰒟",      // nf-md-shuffle
		RepeatAll:  "󰑖",      // nf-md-repeat
		RepeatOne:  "󰑘",      // nf-md-repeat_once
		Volume:     "󰕾",      // nf-md-volume_high
		VolumeMute: "󰖁",      // nf-md-volume_off
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "■",
		Loading:    "…",
		Shuffle:    "⤮",
		RepeatAll:  "⟳",
		RepeatOne:  "⟳1",
		Volume:     "♪",
		VolumeMute: "✕",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		Loading:    "..",
		Shuffle:    "[S]",
		RepeatAll:  "[R]",
		RepeatOne:  "[1]",
		Volume:     "vol",
		VolumeMute: "mut",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Stop returns the stopped indicator.
func Stop() string {
	return current.Stop
}

// Loading returns the track-loading indicator.
func Loading() string {
	return current.Loading
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}

// VolumeMute returns the muted volume icon.
func VolumeMute() string {
	return current.VolumeMute
}
