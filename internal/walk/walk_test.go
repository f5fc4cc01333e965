package walk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPNGsReturnsSortedRecursiveMatches(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		"b/second.png",
		"a/first.png",
		"top.png",
		"a/ignored.txt",
	}
	for _, p := range paths {
		full := filepath.Join(root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	got, err := PNGs(root)
	if err != nil {
		t.Fatalf("PNGs: %v", err)
	}
	want := []string{"a/first.png", "b/second.png", "top.png"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPNGsMissingRootFails(t *testing.T) {
	if _, err := PNGs(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatalf("expected error for missing root")
	}
}
