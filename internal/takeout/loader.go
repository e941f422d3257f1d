// Package takeout loads Google Business Profile reviews from an extracted
// Google Takeout archive.
package takeout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrNoTakeoutDir indicates the expected Takeout directory does not exist
// under the data root.
var ErrNoTakeoutDir = errors.New("takeout directory not found")

// profileSubdir is the fixed path Takeout uses for Business Profile data.
var profileSubdir = filepath.Join("Takeout", "Google Business Profile")

// Dir returns the Business Profile directory under the data root.
func Dir(root string) string {
	return filepath.Join(root, profileSubdir)
}

// Load discovers every reviews*.json file under <root>/Takeout/Google
// Business Profile at any depth and merges their records into one flat
// slice. Files that fail to decode are logged and skipped. A missing
// Takeout directory returns ErrNoTakeoutDir with zero records.
func Load(root string) ([]Review, error) {
	dir := Dir(root)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoTakeoutDir, dir)
		}
		return nil, fmt.Errorf("reading takeout directory: %w", err)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := d.Name()
		if strings.HasPrefix(base, "reviews") && strings.HasSuffix(base, ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning takeout directory: %w", err)
	}
	log.Info().Str("dir", dir).Int("files", len(files)).Msg("discovered review files")

	var reviews []Review
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("skipping unreadable review file")
			continue
		}
		recs, err := parseReviewFile(data)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("skipping undecodable review file")
			continue
		}
		reviews = append(reviews, recs...)
	}
	log.Info().Int("reviews", len(reviews)).Msg("reviews loaded")
	return reviews, nil
}

// reviewContainer is the object shape that wraps a list of reviews.
type reviewContainer struct {
	Reviews []Review `json:"reviews"`
}

// parseReviewFile normalizes the three on-disk shapes into one list:
// a bare JSON array of reviews, an object with a "reviews" array, or a
// single review object.
func parseReviewFile(data []byte) ([]Review, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.New("empty file")
	}

	if trimmed[0] == '[' {
		var list []Review
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("parsing review list: %w", err)
		}
		return list, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing review object: %w", err)
	}

	if _, ok := fields["reviews"]; ok {
		var container reviewContainer
		if err := json.Unmarshal(data, &container); err != nil {
			return nil, fmt.Errorf("parsing reviews container: %w", err)
		}
		return container.Reviews, nil
	}

	var single Review
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parsing single review: %w", err)
	}
	return []Review{single}, nil
}
