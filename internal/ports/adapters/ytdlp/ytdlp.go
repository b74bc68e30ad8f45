// Package ytdlp implements the media fetcher by shelling out to yt-dlp.
package ytdlp

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
	bin     string
	workDir string
}

// New returns an adapter that downloads into workDir. The caller owns
// workDir's lifecycle; the adapter only writes files beneath it.
func New(binPath, workDir string) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	return &Adapter{bin: binPath, workDir: workDir}
}

// metadata is the slice of yt-dlp's -J output we care about.
type metadata struct {
	Title             string              `json:"title"`
	Language          string              `json:"language"`
	Subtitles         map[string][]anyRef `json:"subtitles"`
	AutomaticCaptions map[string][]anyRef `json:"automatic_captions"`
}

type anyRef struct {
	Ext string `json:"ext"`
}

// ListSubtitleTracks probes the video with yt-dlp -J, downloads every
// available VTT track into the workspace, and describes the resulting
// files as candidates. Auto-generated status comes from which metadata
// map the track's language appeared in.
func (a *Adapter) ListSubtitleTracks(ctx context.Context, videoURL, targetLang string) (ports.TrackListing, error) {
	meta, err := a.probe(ctx, videoURL)
	if err != nil {
		return ports.TrackListing{}, err
	}

	listing := ports.TrackListing{Title: meta.Title, Language: meta.Language}
	if len(meta.Subtitles) == 0 && len(meta.AutomaticCaptions) == 0 {
		return listing, nil
	}

	out, err := exec.CommandContext(ctx, a.bin,
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-format", "vtt",
		"--sub-langs", "all,-live_chat",
		"--no-warnings",
		"-o", filepath.Join(a.workDir, "subs.%(ext)s"),
		videoURL,
	).CombinedOutput()
	if err != nil {
		return ports.TrackListing{}, fmt.Errorf("yt-dlp subtitle download: %w\n%s", err, string(out))
	}

	paths, err := filepath.Glob(filepath.Join(a.workDir, "subs.*.vtt"))
	if err != nil {
		return ports.TrackListing{}, err
	}
	listing.Tracks = candidates(meta, paths, targetLang)
	return listing, nil
}

// candidates describes downloaded subtitle files as track candidates.
// A language present in both metadata maps counts as manually authored:
// hosts list an auto-caption variant for nearly every manual track.
func candidates(meta metadata, paths []string, targetLang string) []types.TrackCandidate {
	var out []types.TrackCandidate
	for _, p := range paths {
		name := filepath.Base(p)
		lang := trackLang(name)
		_, auto := meta.AutomaticCaptions[lang]
		_, manual := meta.Subtitles[lang]
		out = append(out, types.TrackCandidate{
			Identifier:     name,
			AutoGenerated:  auto && !manual,
			TargetLanguage: lang == targetLang || strings.HasPrefix(lang, targetLang+"-"),
		})
	}
	return out
}

func (a *Adapter) FetchSubtitleContent(_ context.Context, candidate types.TrackCandidate) (string, error) {
	b, err := os.ReadFile(filepath.Join(a.workDir, candidate.Identifier))
	if err != nil {
		return "", fmt.Errorf("read subtitle track: %w", err)
	}
	return string(b), nil
}

// FetchAudio downloads the best available audio and converts it to wav,
// which is what whisper builds expect.
func (a *Adapter) FetchAudio(ctx context.Context, videoURL string) (ports.AudioRef, error) {
	meta, err := a.probe(ctx, videoURL)
	if err != nil {
		return ports.AudioRef{}, err
	}

	out, err := exec.CommandContext(ctx, a.bin,
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "wav",
		"--no-warnings",
		"-o", filepath.Join(a.workDir, "audio.%(ext)s"),
		videoURL,
	).CombinedOutput()
	if err != nil {
		return ports.AudioRef{}, fmt.Errorf("yt-dlp audio download: %w\n%s", err, string(out))
	}

	paths, err := filepath.Glob(filepath.Join(a.workDir, "audio.*"))
	if err != nil {
		return ports.AudioRef{}, err
	}
	if len(paths) == 0 {
		return ports.AudioRef{}, fmt.Errorf("no audio file found after download")
	}
	return ports.AudioRef{Path: paths[0], Title: meta.Title, Language: meta.Language}, nil
}

func (a *Adapter) probe(ctx context.Context, videoURL string) (metadata, error) {
	cmd := exec.CommandContext(ctx, a.bin, "-J", "--skip-download", "--no-warnings", videoURL)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return metadata{}, fmt.Errorf("yt-dlp probe: %w\n%s", err, string(exitErr.Stderr))
		}
		return metadata{}, fmt.Errorf("yt-dlp probe: %w", err)
	}

	var meta metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return metadata{}, fmt.Errorf("parse yt-dlp metadata: %w", err)
	}
	return meta, nil
}

// trackLang extracts the language tag from a downloaded subtitle
// filename like "subs.en-US.vtt".
func trackLang(name string) string {
	name = strings.TrimSuffix(name, ".vtt")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}
