package ports

import (
	"context"

	"github.com/forPelevin/vidtext/internal/types"
)

// TrackListing is the media fetcher's answer to a subtitle-track query:
// the candidate tracks plus whatever video metadata came along for free.
type TrackListing struct {
	Title    string
	Language string
	Tracks   []types.TrackCandidate
}

// AudioRef points at downloaded audio on local disk, with video metadata.
type AudioRef struct {
	Path     string
	Title    string
	Language string
}

// Transcription is the transcriber's output for one audio file.
type Transcription struct {
	Language string
	Segments []types.Segment
}

// MediaFetcher hides the network client that talks to the video host.
type MediaFetcher interface {
	// ListSubtitleTracks downloads the available subtitle tracks for the
	// video into a local workspace and describes them as candidates.
	ListSubtitleTracks(ctx context.Context, videoURL, targetLang string) (TrackListing, error)

	// FetchSubtitleContent returns the raw captions text of one candidate.
	FetchSubtitleContent(ctx context.Context, candidate types.TrackCandidate) (string, error)

	// FetchAudio downloads best-effort audio for the video.
	FetchAudio(ctx context.Context, videoURL string) (AudioRef, error)
}

// Transcriber converts downloaded audio into timed segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcription, error)
}

// Stage names the two acquisition stages reported to observers.
type Stage string

const (
	StageSubtitles Stage = "subtitles"
	StageAudio     Stage = "audio"
)

// Observer receives acquisition stage transitions. It is a presentation
// hook only: implementations must not influence control flow.
type Observer interface {
	StageStarted(stage Stage)
	StageFailed(stage Stage, err error)
	StageDone(stage Stage, segments int)
}

// NopObserver satisfies Observer and ignores every notification.
type NopObserver struct{}

func (NopObserver) StageStarted(Stage)       {}
func (NopObserver) StageFailed(Stage, error) {}
func (NopObserver) StageDone(Stage, int)     {}
