// Package output renders analysis results: a terminal listing and summary,
// and CSV exports written under the output directory.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dudaka/GReviewSignals/internal/analysis"
	"github.com/dudaka/GReviewSignals/internal/takeout"
)

// ExportReviews writes the filtered reviews as CSV to <dir>/<filename>,
// creating dir if needed.
func ExportReviews(dir, filename string, reviews []takeout.Review) error {
	return export(dir, filename, func(w io.Writer) error {
		return WriteReviews(w, reviews)
	})
}

// ExportNames writes the name-mention tally as CSV to <dir>/<filename>,
// creating dir if needed.
func ExportNames(dir, filename string, counts []analysis.NameCount) error {
	return export(dir, filename, func(w io.Writer) error {
		return WriteNames(w, counts)
	})
}

func export(dir, filename string, write func(io.Writer) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
