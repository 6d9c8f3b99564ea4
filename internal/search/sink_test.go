package search

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seamusw/scramblesearch/internal/cube"
	"github.com/seamusw/scramblesearch/internal/face"
)

func TestBucketNames(t *testing.T) {
	cases := []struct {
		patterns int
		perfect  bool
		want     string
	}{
		{1, false, "Solutions_1_patterns.txt"},
		{6, false, "Solutions_6_patterns.txt"},
		{1, true, "Solutions_1_patterns_Perfect.txt"},
		{6, true, "Solutions_6_patterns_Perfect.txt"},
	}
	for _, c := range cases {
		if got := BucketName(c.patterns, c.perfect); got != c.want {
			t.Errorf("BucketName(%d, %v) = %q, want %q", c.patterns, c.perfect, got, c.want)
		}
	}
}

func TestBucketIndexCoversAllBuckets(t *testing.T) {
	seen := map[int]bool{}
	for _, perfect := range []bool{false, true} {
		for k := 1; k <= 6; k++ {
			idx := BucketIndex(k, perfect)
			if idx < 0 || idx >= Buckets {
				t.Fatalf("BucketIndex(%d, %v) = %d out of range", k, perfect, idx)
			}
			if seen[idx] {
				t.Fatalf("BucketIndex(%d, %v) = %d collides", k, perfect, idx)
			}
			seen[idx] = true
		}
	}
}

func TestCountUniquePatterns(t *testing.T) {
	cases := []struct {
		ids  [cube.Faces]face.ID
		want int
	}{
		{[cube.Faces]face.ID{0, 0, 0, 0, 0, 0}, 1},
		{[cube.Faces]face.ID{0, 1, 2, 3, 4, 5}, 6},
		{[cube.Faces]face.ID{0, 1, 0, 1, 0, 1}, 2},
		{[cube.Faces]face.ID{7, 7, 7, 3, 3, 9}, 3},
	}
	for _, c := range cases {
		if got := countUniquePatterns(c.ids); got != c.want {
			t.Errorf("countUniquePatterns(%v) = %d, want %d", c.ids, got, c.want)
		}
	}
}

func TestEmitRejectsTouchingCube(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, nil)

	// The solved cube is sides-touching; emitting it is a search bug and
	// must produce no output and a close error.
	var solved cube.Cube
	for i := range solved {
		solved[i] = uint8(i)
	}
	sink.Emit(&solved, [cube.Faces]face.ID{0, 1, 2, 3, 4, 5})

	if total := sink.Total(); total != 0 {
		t.Errorf("sink recorded %d solutions, want 0", total)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("sink created %d files, want 0", len(entries))
	}
	if err := sink.Close(); err == nil {
		t.Error("Close should report the connectedness violation")
	}
}

func TestBucketFileAppends(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir, nil)

	f, err := sink.bucketFile(3, true)
	if err != nil {
		t.Fatalf("bucketFile failed: %v", err)
	}
	if _, err := f.WriteString("1,2,3\n"); err != nil {
		t.Fatal(err)
	}
	again, err := sink.bucketFile(3, true)
	if err != nil {
		t.Fatalf("bucketFile failed on reuse: %v", err)
	}
	if again != f {
		t.Error("bucketFile should reuse the open handle")
	}
	if _, err := again.WriteString("4,5,6\n"); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, BucketName(3, true)))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("bucket file has %d lines, want 2", len(lines))
	}
}

type recordingRecorder struct {
	lines []string
}

func (r *recordingRecorder) RecordSolution(uniquePatterns int, perfect bool, line string) error {
	r.lines = append(r.lines, line)
	return nil
}

func TestRecorderNotCalledForRejectedCube(t *testing.T) {
	rec := &recordingRecorder{}
	sink := NewSink(t.TempDir(), rec)

	var solved cube.Cube
	for i := range solved {
		solved[i] = uint8(i)
	}
	sink.Emit(&solved, [cube.Faces]face.ID{0, 0, 0, 0, 0, 0})

	if len(rec.lines) != 0 {
		t.Errorf("recorder received %d lines, want 0", len(rec.lines))
	}
}
