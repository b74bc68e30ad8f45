//go:build integration

package itest

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forPelevin/vidtext/internal/types"
)

func TestE2E_SubtitleTrack(t *testing.T) {
	root := repoRoot(t)
	stubDir := t.TempDir()
	ytdlp := writeStub(t, stubDir, "yt-dlp", ytdlpStub)
	whisper := writeStub(t, stubDir, "whisper.cpp", whisperStub)

	res := runCLI(t, root, []string{
		"https://example.com/v/stub",
		"--ytdlp", ytdlp,
		"--whisper-bin", whisper,
		"--whisper-model", "stub-model",
		"--cache", t.TempDir(),
	}, nil)
	if res.exitCode != 0 {
		t.Fatalf("expected success, exit %d\noutput:\n%s", res.exitCode, res.output)
	}

	tr := decodeTranscript(t, res.stdout)
	if tr.Title != "Stub Video" || tr.Language != "en" {
		t.Fatalf("unexpected metadata: %#v", tr)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("expected 2 segments from subtitles, got %#v", tr.Segments)
	}
	if tr.Segments[0].Text != "Stub caption one." {
		t.Fatalf("unexpected first segment: %#v", tr.Segments[0])
	}
}

func TestE2E_AudioFallback(t *testing.T) {
	root := repoRoot(t)
	stubDir := t.TempDir()
	ytdlp := writeStub(t, stubDir, "yt-dlp", ytdlpStub)
	whisper := writeStub(t, stubDir, "whisper.cpp", whisperStub)

	res := runCLI(t, root, []string{
		"https://example.com/v/stub",
		"--ytdlp", ytdlp,
		"--whisper-bin", whisper,
		"--whisper-model", "stub-model",
		"--cache", t.TempDir(),
	}, map[string]string{
		"VIDTEXT_STUB_NO_SUBS": "1",
	})
	if res.exitCode != 0 {
		t.Fatalf("expected fallback success, exit %d\noutput:\n%s", res.exitCode, res.output)
	}

	tr := decodeTranscript(t, res.stdout)
	if len(tr.Segments) != 1 || tr.Segments[0].Text != "Stub speech." {
		t.Fatalf("expected whisper stub segment, got %#v", tr.Segments)
	}
	if tr.Segments[0].End != 1.5 {
		t.Fatalf("expected 1.5s end offset, got %v", tr.Segments[0].End)
	}
}

func TestE2E_BothStagesFail(t *testing.T) {
	root := repoRoot(t)
	stubDir := t.TempDir()
	// A stub that always fails stands in for a dead network.
	broken := writeStub(t, stubDir, "yt-dlp", "#!/bin/sh\necho 'ERROR: unreachable' >&2\nexit 1\n")

	res := runCLI(t, root, []string{
		"https://example.com/v/stub",
		"--ytdlp", broken,
		"--whisper-bin", filepath.Join(stubDir, "missing"),
		"--whisper-model", "stub-model",
		"--cache", t.TempDir(),
	}, nil)
	if res.exitCode == 0 {
		t.Fatalf("expected failure\noutput:\n%s", res.output)
	}
	if !strings.Contains(res.output, "both subtitle extraction and audio transcription failed") {
		t.Fatalf("expected combined failure diagnostic, got:\n%s", res.output)
	}
}

func decodeTranscript(t *testing.T, out string) types.Transcript {
	t.Helper()

	var tr types.Transcript
	if err := json.Unmarshal([]byte(out), &tr); err != nil {
		t.Fatalf("decode transcript JSON: %v\noutput:\n%s", err, out)
	}
	return tr
}
