package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/forPelevin/vidtext/internal/ports"
	"github.com/forPelevin/vidtext/internal/ports/adapters/whispercpp"
	"github.com/forPelevin/vidtext/internal/ports/adapters/ytdlp"
	"github.com/forPelevin/vidtext/internal/types"
	"github.com/forPelevin/vidtext/internal/usecase"
)

type Config struct {
	VideoURL string
	Language string
	Logf     func(format string, args ...any)

	// CacheDir is the base directory for per-run workspaces. If empty,
	// defaults to ".cache".
	CacheDir string

	YtDlpPath    string
	WhisperBin   string
	WhisperModel string
}

func (c Config) Validate() error {
	if c.VideoURL == "" {
		return errors.New("video URL is empty")
	}
	if c.Language == "" {
		return errors.New("language is empty")
	}
	if c.WhisperBin == "" {
		return errors.New("whisper binary path is required")
	}
	if c.WhisperModel == "" {
		return errors.New("whisper model path is required")
	}
	return nil
}

// Run acquires the transcript for one video. It owns the run workspace:
// downloaded subtitle and audio files live in a uuid-named directory
// under the cache dir and are removed when the run ends.
func Run(ctx context.Context, cfg Config) (types.Transcript, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	baseCache := cfg.CacheDir
	if baseCache == "" {
		baseCache = ".cache"
	}
	workDir := filepath.Join(baseCache, "runs", uuid.New().String())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return types.Transcript{}, fmt.Errorf("create workspace: %w", err)
	}
	defer os.RemoveAll(workDir)
	logf("workspace: %s", workDir)

	fetcher := ytdlp.New(cfg.YtDlpPath, workDir)
	transcriber := whispercpp.New(cfg.WhisperBin, cfg.WhisperModel)

	acq := usecase.New(usecase.Deps{
		Fetcher:     fetcher,
		Transcriber: transcriber,
		Observer:    logObserver{logf: logf},
	}, cfg.Language)

	tr, err := acq.Acquire(ctx, cfg.VideoURL)
	if err != nil {
		return types.Transcript{}, err
	}
	logf("transcript ready: %q, %d segments", tr.Title, len(tr.Segments))
	return tr, nil
}

// logObserver narrates stage transitions through the run's Logf hook.
type logObserver struct {
	logf func(format string, args ...any)
}

func (o logObserver) StageStarted(stage ports.Stage) {
	o.logf("stage %s: started", stage)
}

func (o logObserver) StageFailed(stage ports.Stage, err error) {
	o.logf("stage %s: failed: %v", stage, err)
}

func (o logObserver) StageDone(stage ports.Stage, segments int) {
	o.logf("stage %s: done (%d segments)", stage, segments)
}

// ensure adapters implement ports
var _ ports.MediaFetcher = (*ytdlp.Adapter)(nil)
var _ ports.Transcriber = (*whispercpp.Adapter)(nil)
var _ ports.Observer = logObserver{}
