package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dudaka/GReviewSignals/internal/analysis"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// ReviewColumns is the fixed column set of a review export.
var ReviewColumns = []string{
	"review_id",
	"reviewer_name",
	"star_rating",
	"comment",
	"create_time",
	"update_time",
	"reviewer_photo_url",
	"review_reply",
}

// NameColumns is the column set of a name-analysis export.
var NameColumns = []string{"person_name", "mention_count"}

// WriteReviews writes one CSV row per review with the fixed column set,
// substituting empty strings for absent fields.
func WriteReviews(w io.Writer, reviews []takeout.Review) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ReviewColumns); err != nil {
		return fmt.Errorf("writing review header: %w", err)
	}
	for _, r := range reviews {
		row := []string{
			r.ExportID(),
			r.ReviewerName(),
			r.StarRating,
			r.Comment,
			r.CreateTime,
			r.UpdateTime,
			r.Reviewer.ProfilePhotoURL,
			r.ReplyComment(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing review row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNames writes the name tally rows in the order given; callers pass
// analysis.SortedCounts output so rows are non-increasing by count.
func WriteNames(w io.Writer, counts []analysis.NameCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(NameColumns); err != nil {
		return fmt.Errorf("writing name header: %w", err)
	}
	for _, nc := range counts {
		if err := cw.Write([]string{nc.Name, strconv.Itoa(nc.Count)}); err != nil {
			return fmt.Errorf("writing name row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
