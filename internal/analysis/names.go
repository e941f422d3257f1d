package analysis

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dudaka/GReviewSignals/internal/ner"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// ErrNoRecognizer indicates CountNames was called without a loaded
// recognition engine.
var ErrNoRecognizer = errors.New("recognition engine not loaded")

// CountNames runs entity recognition over each review comment and counts,
// per person name, the number of distinct reviews mentioning it. A name
// appearing several times in one review counts once; the same name across
// reviews accumulates. Name text is trimmed but otherwise kept exactly as
// the recognizer produced it.
func CountNames(ctx context.Context, rec ner.Recognizer, reviews []takeout.Review) (map[string]int, error) {
	if rec == nil {
		return nil, ErrNoRecognizer
	}

	mentions := make(map[string]map[string]struct{})
	for _, review := range reviews {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if review.Comment == "" {
			continue
		}

		entities, err := rec.Recognize(review.Comment)
		if err != nil {
			log.Warn().Str("review", review.GroupID()).Err(err).Msg("recognition failed, skipping review")
			continue
		}

		id := review.GroupID()
		for _, ent := range entities {
			if ent.Label != ner.LabelPerson {
				continue
			}
			name := strings.TrimSpace(ent.Text)
			if name == "" {
				continue
			}
			if mentions[name] == nil {
				mentions[name] = make(map[string]struct{})
			}
			mentions[name][id] = struct{}{}
		}
	}

	counts := make(map[string]int, len(mentions))
	for name, ids := range mentions {
		counts[name] = len(ids)
	}
	return counts, nil
}

// NameCount is one row of the name-mention tally.
type NameCount struct {
	Name  string
	Count int
}

// SortedCounts flattens a name tally into rows ordered by descending
// count, ties broken by name.
func SortedCounts(counts map[string]int) []NameCount {
	rows := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		rows = append(rows, NameCount{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
