// Package webvtt turns raw WebVTT caption text into timed segments.
package webvtt

import (
	"regexp"
	"strings"

	"github.com/forPelevin/vidtext/internal/domain/timecode"
	"github.com/forPelevin/vidtext/internal/types"
)

// cueRe matches a cue timing line: two timestamp-ish runs around "-->",
// tolerating comma decimals and optional settings after the end time.
var cueRe = regexp.MustCompile(`([\d:.,]+)\s*-->\s*([\d:.,]+)`)

// tagRe strips inline styling/voice markup like <c.color>, <v Roger>, </i>.
var tagRe = regexp.MustCompile(`<.*?>`)

// Parse extracts timed segments from WebVTT content. It never fails:
// lines it cannot interpret are skipped, and a cue whose text is empty
// after markup stripping produces no segment. Segments keep source order
// and values verbatim; nothing is merged, clamped, or deduplicated.
func Parse(content string) []types.Segment {
	lines := strings.Split(content, "\n")

	var segments []types.Segment
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "NOTE") {
			continue
		}

		m := cueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start, errStart := timecode.Parse(strings.ReplaceAll(m[1], ",", "."))
		end, errEnd := timecode.Parse(strings.ReplaceAll(m[2], ",", "."))
		if errStart != nil || errEnd != nil {
			continue
		}

		var texts []string
		j := i + 1
		for ; j < len(lines); j++ {
			text := strings.TrimSpace(lines[j])
			if text == "" {
				break
			}
			if strings.Contains(text, "-->") {
				break
			}
			text = strings.TrimSpace(tagRe.ReplaceAllString(text, ""))
			if text != "" {
				texts = append(texts, text)
			}
		}

		if len(texts) > 0 {
			segments = append(segments, types.Segment{
				Start: start,
				End:   end,
				Text:  strings.Join(texts, " "),
			})
		}

		// Resume at the line that ended the text block so a back-to-back
		// cue line is scanned, not swallowed.
		i = j - 1
	}

	return segments
}
