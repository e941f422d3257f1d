package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dudaka/GReviewSignals/internal/analysis"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// Listing renders up to max reviews in arrival order.
func Listing(w io.Writer, reviews []takeout.Review, max int) error {
	shown := len(reviews)
	if max >= 0 && shown > max {
		shown = max
	}

	ew := &errWriter{w: w}
	ew.println(strings.Repeat("=", 80))
	ew.printf("REVIEWS (%d total, showing first %d)\n", len(reviews), shown)
	ew.println(strings.Repeat("=", 80))

	for i, r := range reviews[:shown] {
		ew.printf("\n[%d] %s | %s | %s stars\n", i+1, r.UpdateTime, r.ReviewerName(), rating(r))
		ew.println(r.Comment)
		ew.println(strings.Repeat("-", 60))
	}
	return ew.err
}

// Summary renders the name tally, most-mentioned first.
func Summary(w io.Writer, counts []analysis.NameCount) error {
	ew := &errWriter{w: w}
	if len(counts) == 0 {
		ew.println("No person names found in the reviews.")
		return ew.err
	}

	ew.printf("Total unique names mentioned: %d\n", len(counts))
	ew.println(strings.Repeat("=", 50))
	for _, nc := range counts {
		ew.printf("%s: mentioned in %d review(s)\n", nc.Name, nc.Count)
	}
	return ew.err
}

func rating(r takeout.Review) string {
	if r.StarRating == "" {
		return "N/A"
	}
	return r.StarRating
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
