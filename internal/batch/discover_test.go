package batch_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"feedtally/internal/batch"
)

func TestDiscoverSortsAndSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.rss", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<rss/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := batch.Discover(dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.rss"),
		filepath.Join(dir, "b.xml"),
		filepath.Join(dir, "c.txt"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Discover = %v, want %v", got, want)
	}
}

func TestDiscoverFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.XML", "two.rss", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := batch.Discover(dir, []string{".xml", ".rss"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 2 || filepath.Base(got[0]) != "one.XML" || filepath.Base(got[1]) != "two.rss" {
		t.Fatalf("unexpected documents %v", got)
	}
}

func TestDiscoverKeepsDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "gone.xml")
	if err := os.Symlink(filepath.Join(dir, "missing"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	got, err := batch.Discover(dir, nil)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 1 || got[0] != link {
		t.Fatalf("expected dangling link to be listed, got %v", got)
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := batch.Discover(filepath.Join(t.TempDir(), "absent"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
