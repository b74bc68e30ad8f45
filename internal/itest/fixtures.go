//go:build integration

package itest

import (
	"os"
	"path/filepath"
	"testing"
)

// ytdlpStub behaves like yt-dlp for the three invocations the fetcher
// makes: -J probe, subtitle download, audio download. Setting
// VIDTEXT_STUB_NO_SUBS makes the probe report no subtitle tracks.
const ytdlpStub = `#!/bin/sh
out=""
mode="probe"
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then out="$a"; fi
  case "$a" in
    --write-subs) mode="subs";;
    -x) mode="audio";;
  esac
  prev="$a"
done
case "$mode" in
probe)
  if [ -n "$VIDTEXT_STUB_NO_SUBS" ]; then
    echo '{"title":"Stub Video","language":"en","subtitles":{},"automatic_captions":{}}'
  else
    echo '{"title":"Stub Video","language":"en","subtitles":{"en":[{"ext":"vtt"}]},"automatic_captions":{}}'
  fi
  ;;
subs)
  dir=$(dirname "$out")
  cat > "$dir/subs.en.vtt" <<'VTT'
WEBVTT

00:00:00.000 --> 00:00:02.000
Stub caption one.

00:00:02.000 --> 00:00:04.000
Stub caption two.
VTT
  ;;
audio)
  dir=$(dirname "$out")
  : > "$dir/audio.wav"
  ;;
esac
`

// whisperStub writes a minimal whisper.cpp -oj JSON file next to the
// audio input.
const whisperStub = `#!/bin/sh
of=""
prev=""
for a in "$@"; do
  if [ "$prev" = "-of" ]; then of="$a"; fi
  prev="$a"
done
cat > "$of.json" <<'JSON'
{"result":{"language":"en"},"transcription":[{"offsets":{"from":0,"to":1500},"text":" Stub speech."}]}
JSON
`

func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}
