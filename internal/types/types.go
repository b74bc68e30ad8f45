package types

import (
	"fmt"
	"strings"
)

// DefaultTitle is used when the source provides no title metadata.
const DefaultTitle = "Unknown Title"

// DefaultLanguage is used when the source language is unknown.
const DefaultLanguage = "en"

// Segment is a single timed piece of transcript text. Times are offsets
// from the start of the video in seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the timed transcript of one video. Segments follow source
// order; overlapping or duplicate cues are kept verbatim.
type Transcript struct {
	Title    string    `json:"title"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Markdown renders the transcript as a readable document with one
// [MM:SS]-stamped line per segment.
func (t Transcript) Markdown() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", t.Title))
	b.WriteString(fmt.Sprintf("**Language:** %s\n\n", t.Language))
	b.WriteString("## Transcription\n\n")

	for _, seg := range t.Segments {
		minutes := int(seg.Start) / 60
		seconds := int(seg.Start) % 60
		b.WriteString(fmt.Sprintf("[%02d:%02d] %s\n\n", minutes, seconds, seg.Text))
	}

	return b.String()
}

// TrackCandidate is one subtitle track offered by the media fetcher for a
// video. Identifier is the fetcher-visible name of the track, typically a
// filename like "subs.en.vtt".
type TrackCandidate struct {
	Identifier     string
	AutoGenerated  bool
	TargetLanguage bool
}
