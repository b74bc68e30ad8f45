// Package timecode parses WebVTT/SRT-style timestamps into float seconds.
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports a timestamp that has no numeric interpretation.
var ErrMalformed = errors.New("malformed timecode")

// Parse converts a textual timestamp into an offset in seconds. Accepted
// shapes, by colon-separated field count:
//
//	H:MM:SS[.fff]
//	M:SS[.fff]
//	SS[.fff]
//
// A comma decimal separator is normalized to a period before parsing
// (WebVTT files sometimes carry SRT-style commas). No bounds validation is
// performed: a numeric but out-of-range value passes through unchanged.
func Parse(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")

	fields := strings.Split(text, ":")
	switch len(fields) {
	case 3:
		hours, errH := strconv.Atoi(fields[0])
		minutes, errM := strconv.Atoi(fields[1])
		seconds, errS := strconv.ParseFloat(fields[2], 64)
		if errH != nil || errM != nil || errS != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		return float64(hours*3600+minutes*60) + seconds, nil
	case 2:
		minutes, errM := strconv.Atoi(fields[0])
		seconds, errS := strconv.ParseFloat(fields[1], 64)
		if errM != nil || errS != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		return float64(minutes*60) + seconds, nil
	case 1:
		seconds, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		return seconds, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
}
