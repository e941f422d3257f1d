package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dudaka/GReviewSignals/internal/analysis"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

func TestWriteReviewsColumnsAndDefaults(t *testing.T) {
	reviews := []takeout.Review{
		{
			ReviewID:   "r1",
			Reviewer:   takeout.Reviewer{DisplayName: "Jane", ProfilePhotoURL: "http://p/1.jpg"},
			StarRating: "FIVE",
			Comment:    "Thanks, John!",
			CreateTime: "2025-08-01T00:00:00Z",
			UpdateTime: "2025-08-02T00:00:00Z",
			ReviewReply: &takeout.Reply{
				Comment: "You're welcome",
			},
		},
		{}, // every field absent
	}

	var buf bytes.Buffer
	if err := WriteReviews(&buf, reviews); err != nil {
		t.Fatalf("WriteReviews error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 records)", len(rows))
	}

	for i, col := range ReviewColumns {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	want := []string{"r1", "Jane", "FIVE", "Thanks, John!", "2025-08-01T00:00:00Z", "2025-08-02T00:00:00Z", "http://p/1.jpg", "You're welcome"}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Errorf("row[1][%d] = %q, want %q", i, rows[1][i], want[i])
		}
	}

	// Absent fields become empty strings, except the reviewer default.
	empty := rows[2]
	if empty[1] != "Anonymous" {
		t.Errorf("empty record reviewer_name = %q, want Anonymous", empty[1])
	}
	for _, i := range []int{0, 2, 3, 4, 5, 6, 7} {
		if empty[i] != "" {
			t.Errorf("empty record column %s = %q, want empty", ReviewColumns[i], empty[i])
		}
	}
}

func TestWriteNamesRoundTrip(t *testing.T) {
	counts := analysis.SortedCounts(map[string]int{
		"John":       3,
		"Mary Smith": 1,
		"Ann":        3,
	})

	var buf bytes.Buffer
	if err := WriteNames(&buf, counts); err != nil {
		t.Fatalf("WriteNames error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if rows[0][0] != "person_name" || rows[0][1] != "mention_count" {
		t.Errorf("header = %v, want [person_name mention_count]", rows[0])
	}

	got := make(map[string]int)
	prev := 1 << 30
	for _, row := range rows[1:] {
		n, err := strconv.Atoi(row[1])
		if err != nil {
			t.Fatalf("mention_count %q not an integer: %v", row[1], err)
		}
		if n > prev {
			t.Errorf("counts not non-increasing: %d after %d", n, prev)
		}
		prev = n
		got[row[0]] = n
	}

	want := map[string]int{"John": 3, "Mary Smith": 1, "Ann": 3}
	for name, count := range want {
		if got[name] != count {
			t.Errorf("round-trip count for %q = %d, want %d", name, got[name], count)
		}
	}
}

func TestExportCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	counts := []analysis.NameCount{{Name: "John", Count: 2}}
	if err := ExportNames(dir, "names.csv", counts); err != nil {
		t.Fatalf("ExportNames error: %v", err)
	}
	if err := ExportReviews(dir, "reviews.csv", []takeout.Review{{ReviewID: "r1"}}); err != nil {
		t.Fatalf("ExportReviews error: %v", err)
	}

	for _, name := range []string{"names.csv", "reviews.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}
