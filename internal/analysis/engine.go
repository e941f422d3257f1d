// Package analysis filters loaded reviews and tallies person-name mentions
// found in their comments.
package analysis

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/dudaka/GReviewSignals/internal/ner"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// Result holds the output of one analysis run.
type Result struct {
	Reviews    []takeout.Review
	NameCounts map[string]int
}

// Run filters reviews by the given criteria and extracts person-name
// mention counts from the surviving set. An empty filtered set yields an
// empty result without invoking the recognizer.
func Run(ctx context.Context, reviews []takeout.Review, crit Criteria, rec ner.Recognizer) (*Result, error) {
	filtered := Filter(reviews, crit)
	log.Info().
		Str("filters", crit.Describe()).
		Int("matched", len(filtered)).
		Int("total", len(reviews)).
		Msg("reviews filtered")

	if len(filtered) == 0 {
		return &Result{Reviews: filtered, NameCounts: map[string]int{}}, nil
	}

	counts, err := CountNames(ctx, rec, filtered)
	if err != nil {
		return nil, err
	}
	log.Info().Int("names", len(counts)).Msg("person names extracted")

	return &Result{Reviews: filtered, NameCounts: counts}, nil
}
