package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dudaka/GReviewSignals/internal/analysis"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

func TestListingCapsDisplayedReviews(t *testing.T) {
	reviews := []takeout.Review{
		{ReviewID: "r1", Comment: "first comment", StarRating: "FIVE", UpdateTime: "2025-08-01T00:00:00Z"},
		{ReviewID: "r2", Comment: "second comment", StarRating: "FOUR"},
		{ReviewID: "r3", Comment: "third comment"},
	}

	var buf bytes.Buffer
	if err := Listing(&buf, reviews, 2); err != nil {
		t.Fatalf("Listing error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "REVIEWS (3 total, showing first 2)") {
		t.Errorf("missing listing header, got:\n%s", out)
	}
	if !strings.Contains(out, "first comment") || !strings.Contains(out, "second comment") {
		t.Errorf("listing should include first two comments, got:\n%s", out)
	}
	if strings.Contains(out, "third comment") {
		t.Errorf("listing should cap at 2 reviews, got:\n%s", out)
	}
	if !strings.Contains(out, "Anonymous") {
		t.Errorf("missing reviewer default, got:\n%s", out)
	}
	if !strings.Contains(out, "N/A stars") {
		t.Errorf("missing rating placeholder for unrated review, got:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	counts := []analysis.NameCount{
		{Name: "John", Count: 2},
		{Name: "Mary", Count: 1},
	}

	var buf bytes.Buffer
	if err := Summary(&buf, counts); err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Total unique names mentioned: 2") {
		t.Errorf("missing total line, got:\n%s", out)
	}
	if !strings.Contains(out, "John: mentioned in 2 review(s)") {
		t.Errorf("missing John line, got:\n%s", out)
	}
}

func TestSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, nil); err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if !strings.Contains(buf.String(), "No person names found") {
		t.Errorf("missing empty message, got:\n%s", buf.String())
	}
}
