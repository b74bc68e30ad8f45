package usecase

import (
	"context"
	"fmt"

	"github.com/forPelevin/vidtext/internal/domain/tracks"
	"github.com/forPelevin/vidtext/internal/domain/webvtt"
	"github.com/forPelevin/vidtext/internal/ports"
	"github.com/forPelevin/vidtext/internal/types"
)

// AcquisitionError is the terminal failure of an acquisition: both the
// subtitle stage and the audio-transcription stage were exhausted. It
// carries both causes so a single diagnostic covers the whole run.
type AcquisitionError struct {
	SubtitleErr error
	AudioErr    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf(
		"both subtitle extraction and audio transcription failed: subtitles: %v; audio: %v",
		e.SubtitleErr, e.AudioErr,
	)
}

type Deps struct {
	Fetcher     ports.MediaFetcher
	Transcriber ports.Transcriber
	// Observer is optional; nil means no stage notifications.
	Observer ports.Observer
}

// Acquirer drives the two-stage transcript strategy: subtitles first,
// audio transcription only on demonstrated need. Subtitle-stage problems
// are recorded and trigger the fallback; only exhaustion of both stages
// reaches the caller, as an *AcquisitionError.
type Acquirer struct {
	d          Deps
	targetLang string
}

func New(d Deps, targetLang string) Acquirer {
	if d.Observer == nil {
		d.Observer = ports.NopObserver{}
	}
	if targetLang == "" {
		targetLang = types.DefaultLanguage
	}
	return Acquirer{d: d, targetLang: targetLang}
}

// Acquire produces the transcript for one video. Acquirers are stateless
// across calls; concurrent Acquire calls for different videos are fine.
func (a Acquirer) Acquire(ctx context.Context, videoURL string) (types.Transcript, error) {
	a.d.Observer.StageStarted(ports.StageSubtitles)
	tr, subErr := a.fromSubtitles(ctx, videoURL)
	if subErr == nil {
		a.d.Observer.StageDone(ports.StageSubtitles, len(tr.Segments))
		return tr, nil
	}
	a.d.Observer.StageFailed(ports.StageSubtitles, subErr)

	// A cancelled request abandons the audio stage instead of starting it.
	if err := ctx.Err(); err != nil {
		return types.Transcript{}, err
	}

	a.d.Observer.StageStarted(ports.StageAudio)
	tr, audioErr := a.fromAudio(ctx, videoURL)
	if audioErr == nil {
		a.d.Observer.StageDone(ports.StageAudio, len(tr.Segments))
		return tr, nil
	}
	a.d.Observer.StageFailed(ports.StageAudio, audioErr)

	return types.Transcript{}, &AcquisitionError{SubtitleErr: subErr, AudioErr: audioErr}
}

func (a Acquirer) fromSubtitles(ctx context.Context, videoURL string) (types.Transcript, error) {
	listing, err := a.d.Fetcher.ListSubtitleTracks(ctx, videoURL, a.targetLang)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("list subtitle tracks: %w", err)
	}

	track, err := tracks.Select(listing.Tracks, a.targetLang)
	if err != nil {
		return types.Transcript{}, err
	}

	content, err := a.d.Fetcher.FetchSubtitleContent(ctx, track)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("fetch subtitle content: %w", err)
	}

	segments := webvtt.Parse(content)
	if len(segments) == 0 {
		return types.Transcript{}, fmt.Errorf("track %q parsed to zero segments", track.Identifier)
	}

	return types.Transcript{
		Title:    orDefault(listing.Title, types.DefaultTitle),
		Language: orDefault(listing.Language, a.targetLang),
		Segments: segments,
	}, nil
}

func (a Acquirer) fromAudio(ctx context.Context, videoURL string) (types.Transcript, error) {
	audio, err := a.d.Fetcher.FetchAudio(ctx, videoURL)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("fetch audio: %w", err)
	}

	result, err := a.d.Transcriber.Transcribe(ctx, audio.Path)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("transcribe audio: %w", err)
	}
	if len(result.Segments) == 0 {
		return types.Transcript{}, fmt.Errorf("transcriber produced no segments")
	}

	lang := orDefault(result.Language, audio.Language)
	return types.Transcript{
		Title:    orDefault(audio.Title, types.DefaultTitle),
		Language: orDefault(lang, a.targetLang),
		Segments: result.Segments,
	}, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
