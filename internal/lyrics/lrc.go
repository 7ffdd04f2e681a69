// Package lyrics fetches and parses song lyrics, preferring synced
// LRC text so the display can follow the playback position.
package lyrics

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Line is one lyric line with the position it becomes active at.
// Unsynced lyrics carry a zero Time on every line.
type Line struct {
	Time time.Duration
	Text string
}

// Lyrics holds the parsed lines plus whatever metadata the source
// carried.
type Lyrics struct {
	Lines  []Line
	Title  string
	Artist string
	Album  string
}

// Synced reports whether the lines carry usable timestamps.
func (l *Lyrics) Synced() bool {
	for _, line := range l.Lines {
		if line.Time > 0 {
			return true
		}
	}
	return false
}

// LineAt returns the index of the line active at pos, or -1 before the
// first timestamp or when the lyrics are unsynced.
func (l *Lyrics) LineAt(pos time.Duration) int {
	if !l.Synced() {
		return -1
	}
	idx := sort.Search(len(l.Lines), func(i int) bool {
		return l.Lines[i].Time > pos
	})
	return idx - 1
}

// stampRe matches LRC timestamps: [mm:ss], [mm:ss.xx], [mm:ss.xxx].
// A colon before the fraction appears in the wild too.
var stampRe = regexp.MustCompile(`\[(\d+):(\d{1,2})(?:[.:](\d{1,3}))?\]`)

// tagRe matches ID tags like [ar:Artist] or [offset:+120].
var tagRe = regexp.MustCompile(`^\[([a-zA-Z]+):(.*)\]$`)

// ParseLRC reads LRC-format lyrics. Lines may carry several timestamps
// ([00:10.00][01:20.00]chorus); each produces its own Line. An
// [offset:ms] tag shifts every timestamp, positive meaning earlier.
func ParseLRC(r io.Reader) (*Lyrics, error) {
	result := &Lyrics{}
	var offset time.Duration

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		spans := stampRe.FindAllStringSubmatchIndex(raw, -1)
		if len(spans) == 0 {
			if tag := tagRe.FindStringSubmatch(raw); tag != nil {
				switch strings.ToLower(tag[1]) {
				case "ti":
					result.Title = strings.TrimSpace(tag[2])
				case "ar":
					result.Artist = strings.TrimSpace(tag[2])
				case "al":
					result.Album = strings.TrimSpace(tag[2])
				case "offset":
					if ms, err := strconv.Atoi(strings.TrimSpace(tag[2])); err == nil {
						offset = time.Duration(ms) * time.Millisecond
					}
				}
			}
			continue
		}

		text := strings.TrimSpace(raw[spans[len(spans)-1][1]:])
		for _, span := range spans {
			result.Lines = append(result.Lines, Line{
				Time: stampTime(raw, span) - offset,
				Text: text,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for i := range result.Lines {
		if result.Lines[i].Time < 0 {
			result.Lines[i].Time = 0
		}
	}
	sort.SliceStable(result.Lines, func(i, j int) bool {
		return result.Lines[i].Time < result.Lines[j].Time
	})

	return result, nil
}

// stampTime converts one stampRe submatch index span to a duration.
func stampTime(raw string, span []int) time.Duration {
	group := func(i int) string {
		if span[2*i] < 0 {
			return ""
		}
		return raw[span[2*i]:span[2*i+1]]
	}

	minutes, _ := strconv.Atoi(group(1))
	seconds, _ := strconv.Atoi(group(2))

	fraction := time.Duration(0)
	if frac := group(3); frac != "" {
		n, _ := strconv.Atoi(frac)
		switch len(frac) {
		case 1:
			fraction = time.Duration(n) * 100 * time.Millisecond
		case 2:
			fraction = time.Duration(n) * 10 * time.Millisecond
		default:
			fraction = time.Duration(n) * time.Millisecond
		}
	}

	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		fraction
}

// ParseUnsynced splits plain lyrics text into zero-timestamp lines.
func ParseUnsynced(text string) *Lyrics {
	result := &Lyrics{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		result.Lines = append(result.Lines, Line{Text: line})
	}
	return result
}
