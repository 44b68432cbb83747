package walkwalk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string) {
		p := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	write("a.json")
	write("nested/b.json")
	write("nested/c.txt")

	files, err := CollectFiles(dir, map[string]struct{}{".json": {}})
	if err != nil {
		t.Fatalf("CollectFiles error: %v", err)
	}
	var got []string
	for _, fi := range files {
		got = append(got, fi.RelPath)
	}
	want := []string{"a.json", "nested/b.json"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCollectFilesNoFilterReturnsAll(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.dat"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	files, err := CollectFiles(dir, nil)
	if err != nil {
		t.Fatalf("CollectFiles error: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "x.dat" {
		t.Fatalf("got %v", files)
	}
}
