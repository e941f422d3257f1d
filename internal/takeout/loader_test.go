package takeout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadMergesAllShapes(t *testing.T) {
	root := t.TempDir()
	dir := Dir(root)

	writeFile(t, filepath.Join(dir, "reviews.json"),
		`{"reviews": [{"reviewId": "a", "comment": "first"}, {"reviewId": "b"}]}`)
	writeFile(t, filepath.Join(dir, "nested", "reviews-2.json"),
		`[{"reviewId": "c"}]`)
	writeFile(t, filepath.Join(dir, "reviews_single.json"),
		`{"reviewId": "d", "starRating": "FIVE"}`)

	reviews, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(reviews) != 4 {
		t.Fatalf("got %d reviews, want 4", len(reviews))
	}

	ids := make(map[string]bool)
	for _, r := range reviews {
		ids[r.ReviewID] = true
	}
	for _, want := range []string{"a", "b", "c", "d"} {
		if !ids[want] {
			t.Errorf("review %q missing from merged set", want)
		}
	}
}

func TestLoadSkipsMalformedFiles(t *testing.T) {
	root := t.TempDir()
	dir := Dir(root)

	writeFile(t, filepath.Join(dir, "reviews.json"), `{"reviews": [{"reviewId": "a"}]}`)
	writeFile(t, filepath.Join(dir, "reviews-bad.json"), `{not json`)
	writeFile(t, filepath.Join(dir, "reviews-empty.json"), ``)

	reviews, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1", len(reviews))
	}
	if reviews[0].ReviewID != "a" {
		t.Errorf("reviews[0].ReviewID = %q, want %q", reviews[0].ReviewID, "a")
	}
}

func TestLoadIgnoresNonReviewFiles(t *testing.T) {
	root := t.TempDir()
	dir := Dir(root)

	writeFile(t, filepath.Join(dir, "reviews.json"), `[{"reviewId": "a"}]`)
	writeFile(t, filepath.Join(dir, "media.json"), `[{"reviewId": "nope"}]`)
	writeFile(t, filepath.Join(dir, "reviews.txt"), `not json at all`)

	reviews, err := Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("got %d reviews, want 1", len(reviews))
	}
}

func TestLoadMissingTakeoutDir(t *testing.T) {
	reviews, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNoTakeoutDir) {
		t.Fatalf("Load error = %v, want ErrNoTakeoutDir", err)
	}
	if len(reviews) != 0 {
		t.Errorf("got %d reviews, want 0", len(reviews))
	}
}

func TestParseReviewFileShapes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"container object", `{"reviews": [{"reviewId": "a"}, {"reviewId": "b"}]}`, 2, false},
		{"bare list", `[{"reviewId": "a"}]`, 1, false},
		{"single object", `{"reviewId": "a"}`, 1, false},
		{"empty container", `{"reviews": []}`, 0, false},
		{"garbage", `oops`, 0, true},
		{"empty", ``, 0, true},
	}
	for _, tt := range tests {
		got, err := parseReviewFile([]byte(tt.input))
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got none", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("%s: got %d reviews, want %d", tt.name, len(got), tt.want)
		}
	}
}
