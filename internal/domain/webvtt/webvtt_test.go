package webvtt

import (
	"reflect"
	"testing"

	"github.com/forPelevin/vidtext/internal/types"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

NOTE this block is a comment
and is ignored entirely

00:00:01.000 --> 00:00:03.500
Hello there.

00:00:03.500 --> 00:00:06.000
<v Roger>This cue spans
two physical lines.</v>

00:00:06.000 --> 00:00:07.000
<c.yellow>  </c>

00:00:07,500 --> 00:00:09,000
Comma timestamps still parse.
`

func TestParse_Sample(t *testing.T) {
	t.Parallel()

	got := Parse(sampleVTT)
	want := []types.Segment{
		{Start: 1, End: 3.5, Text: "Hello there."},
		{Start: 3.5, End: 6, Text: "This cue spans two physical lines."},
		{Start: 7.5, End: 9, Text: "Comma timestamps still parse."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()

	if got := Parse("WEBVTT\n\n\n"); len(got) != 0 {
		t.Fatalf("expected no segments, got %#v", got)
	}
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("expected no segments for empty input, got %#v", got)
	}
}

func TestParse_BackToBackCues(t *testing.T) {
	t.Parallel()

	// No blank line between cues: the second timing line ends the first
	// cue's text block and must still be recognized as a cue.
	content := "00:01.000 --> 00:02.000\nfirst\n00:02.000 --> 00:03.000\nsecond\n"
	got := Parse(content)
	want := []types.Segment{
		{Start: 1, End: 2, Text: "first"},
		{Start: 2, End: 3, Text: "second"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	t.Parallel()

	content := "garbage line\nalso --> garbage\nxx:yy --> zz:qq\n00:01.000 --> 00:02.000\nok\n"
	got := Parse(content)
	if len(got) != 1 || got[0].Text != "ok" {
		t.Fatalf("expected single 'ok' segment, got %#v", got)
	}
}

func TestParse_MarkupOnlyCueDropped(t *testing.T) {
	t.Parallel()

	content := "00:01.000 --> 00:02.000\n<c></c>\n<i> </i>\n"
	if got := Parse(content); len(got) != 0 {
		t.Fatalf("markup-only cue should yield no segment, got %#v", got)
	}
}

func TestParse_OverlapsKeptVerbatim(t *testing.T) {
	t.Parallel()

	content := "00:05.000 --> 00:10.000\nlate\n\n00:01.000 --> 00:06.000\nearly overlap\n"
	got := Parse(content)
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %#v", got)
	}
	// Source order preserved, no re-sorting.
	if got[0].Text != "late" || got[1].Text != "early overlap" {
		t.Fatalf("source order not preserved: %#v", got)
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	first := Parse(sampleVTT)
	second := Parse(sampleVTT)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Parse not idempotent:\nfirst  %#v\nsecond %#v", first, second)
	}
}
