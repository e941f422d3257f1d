package analysis

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// Criteria selects reviews by calendar date and star rating. Zero values
// mean "match all" for that dimension.
type Criteria struct {
	Year    int
	Month   int // 1-12
	Ratings []string
}

// IsZero reports whether no filter dimension is active.
func (c Criteria) IsZero() bool {
	return c.Year == 0 && c.Month == 0 && len(c.Ratings) == 0
}

// Describe returns a short human-readable rendering of the active filters.
func (c Criteria) Describe() string {
	var parts []string
	if c.Year != 0 {
		parts = append(parts, "year="+strconv.Itoa(c.Year))
	}
	if c.Month != 0 {
		parts = append(parts, "month="+strconv.Itoa(c.Month))
	}
	if len(c.Ratings) > 0 {
		parts = append(parts, "ratings="+strings.Join(c.Ratings, ","))
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, ", ")
}

// Filter returns the reviews matching c, preserving input order. Records
// lacking a rating never match an active rating filter; records whose
// update timestamp is absent or unparsable are excluded whenever a year or
// month filter is active.
func Filter(reviews []takeout.Review, c Criteria) []takeout.Review {
	if c.IsZero() {
		return reviews
	}

	ratings := make(map[string]bool, len(c.Ratings))
	for _, r := range c.Ratings {
		ratings[strings.ToUpper(r)] = true
	}

	var out []takeout.Review
	for _, review := range reviews {
		if len(ratings) > 0 && !ratings[strings.ToUpper(review.StarRating)] {
			continue
		}
		if c.Year != 0 || c.Month != 0 {
			ts, err := parseUpdateTime(review.UpdateTime)
			if err != nil {
				log.Warn().
					Str("review", review.GroupID()).
					Str("updateTime", review.UpdateTime).
					Err(err).
					Msg("excluding review with bad timestamp")
				continue
			}
			if c.Year != 0 && ts.Year() != c.Year {
				continue
			}
			if c.Month != 0 && int(ts.Month()) != c.Month {
				continue
			}
		}
		out = append(out, review)
	}
	return out
}

// parseUpdateTime parses an ISO-8601 timestamp. RFC 3339 covers both the
// trailing "Z" marker and numeric UTC offsets.
func parseUpdateTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
