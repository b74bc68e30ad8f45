// Package tracks picks the best subtitle track among fetcher candidates.
package tracks

import (
	"errors"
	"strings"

	"github.com/forPelevin/vidtext/internal/types"
)

// ErrNoTracks reports that the fetcher offered no subtitle tracks at all.
var ErrNoTracks = errors.New("no subtitle tracks available")

// Select returns the preferred track for targetLang:
//
//  1. manually authored tracks flagged for the target language
//  2. auto-generated target-language tracks, pooled with any track whose
//     identifier contains the language tag
//  3. the first candidate in fetcher order
//
// The pooled second group can admit a manually tagged track when its
// identifier carries the language tag. That looseness is deliberate and
// kept for behavior compatibility with sources that name tracks this way.
func Select(candidates []types.TrackCandidate, targetLang string) (types.TrackCandidate, error) {
	if len(candidates) == 0 {
		return types.TrackCandidate{}, ErrNoTracks
	}

	for _, c := range candidates {
		if !c.AutoGenerated && c.TargetLanguage {
			return c, nil
		}
	}

	for _, c := range candidates {
		if (c.AutoGenerated && c.TargetLanguage) || strings.Contains(c.Identifier, targetLang) {
			return c, nil
		}
	}

	return candidates[0], nil
}
