// Package whispercpp implements the transcriber port on top of a local
// whisper.cpp binary.
package whispercpp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/forPelevin/vidtext/internal/ports"
	"github.com/forPelevin/vidtext/internal/types"
)

type Adapter struct {
	bin   string
	model string
}

func New(binPath, modelPath string) *Adapter {
	return &Adapter{bin: binPath, model: modelPath}
}

// output mirrors whisper.cpp's -oj JSON: per-cue millisecond offsets
// plus a result block with the detected language.
type output struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (a *Adapter) Transcribe(ctx context.Context, audioPath string) (ports.Transcription, error) {
	outPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	args := []string{
		"-m", a.model,
		"-f", audioPath,
		"-oj",
		"-of", outPrefix,
	}
	cmd := exec.CommandContext(ctx, a.bin, args...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return ports.Transcription{}, fmt.Errorf("whisper.cpp failed: %w\n%s", err, string(b))
	}

	jb, err := os.ReadFile(outPrefix + ".json")
	if err != nil {
		return ports.Transcription{}, fmt.Errorf("read whisper output: %w", err)
	}
	return parseOutput(jb)
}

func parseOutput(jb []byte) (ports.Transcription, error) {
	var out output
	if err := json.Unmarshal(jb, &out); err != nil {
		return ports.Transcription{}, fmt.Errorf("parse whisper output: %w", err)
	}

	result := ports.Transcription{Language: out.Result.Language}
	for _, cue := range out.Transcription {
		text := strings.TrimSpace(cue.Text)
		if text == "" {
			continue
		}
		result.Segments = append(result.Segments, types.Segment{
			Start: float64(cue.Offsets.From) / 1000,
			End:   float64(cue.Offsets.To) / 1000,
			Text:  text,
		})
	}
	return result, nil
}
