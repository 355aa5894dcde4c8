package discovery

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestWithin(t *testing.T) {
	r := filepath.FromSlash("/r/a")
	tests := []struct {
		path string
		want bool
	}{
		{filepath.FromSlash("/r/a"), true},
		{filepath.FromSlash("/r/a/b"), true},
		{filepath.FromSlash("/r/a/b/c"), true},
		{filepath.FromSlash("/r/ab"), false},
		{filepath.FromSlash("/r"), false},
		{filepath.FromSlash("/x/a"), false},
	}
	for _, tt := range tests {
		if got := Within(r, tt.path); got != tt.want {
			t.Errorf("Within(%q, %q) = %v, want %v", r, tt.path, got, tt.want)
		}
	}
}

func TestWithin_FilesystemRoot(t *testing.T) {
	root := string(filepath.Separator)
	if !Within(root, filepath.FromSlash("/anything")) {
		t.Error("every absolute path is within the filesystem root")
	}
}

func TestAncestors(t *testing.T) {
	got := Ancestors(filepath.FromSlash("/r/a/b"), filepath.FromSlash("/r"))
	want := []string{filepath.FromSlash("/r/a/b"), filepath.FromSlash("/r/a"), filepath.FromSlash("/r")}
	if !slices.Equal(got, want) {
		t.Errorf("Ancestors() = %v, want %v", got, want)
	}

	if got := Ancestors(filepath.FromSlash("/r"), filepath.FromSlash("/r")); !slices.Equal(got, []string{filepath.FromSlash("/r")}) {
		t.Errorf("Ancestors(root) = %v", got)
	}

	outside := filepath.FromSlash("/elsewhere/x")
	if got := Ancestors(outside, filepath.FromSlash("/r")); !slices.Equal(got, []string{outside}) {
		t.Errorf("Ancestors(outside) = %v, want only the dir itself", got)
	}
}

func TestNearestRoot(t *testing.T) {
	roots := map[string]bool{
		filepath.FromSlash("/r"):     true,
		filepath.FromSlash("/r/a/b"): true,
	}
	isRoot := func(dir string) bool { return roots[dir] }
	stop := filepath.FromSlash("/r")

	tests := []struct {
		dir    string
		want   string
		wantOK bool
	}{
		{filepath.FromSlash("/r/a/b/c"), filepath.FromSlash("/r/a/b"), true},
		{filepath.FromSlash("/r/a/b"), filepath.FromSlash("/r/a/b"), true},
		{filepath.FromSlash("/r/a"), filepath.FromSlash("/r"), true},
		{filepath.FromSlash("/elsewhere"), "", false},
	}
	for _, tt := range tests {
		got, ok := NearestRoot(tt.dir, stop, isRoot)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NearestRoot(%q) = %q, %v; want %q, %v", tt.dir, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNearestRoot_StopsAtBoundary(t *testing.T) {
	var asked []string
	isRoot := func(dir string) bool {
		asked = append(asked, dir)
		return false
	}

	if _, ok := NearestRoot(filepath.FromSlash("/r/a"), filepath.FromSlash("/r"), isRoot); ok {
		t.Error("expected no root")
	}
	want := []string{filepath.FromSlash("/r/a"), filepath.FromSlash("/r")}
	if !slices.Equal(asked, want) {
		t.Errorf("checked %v, want %v", asked, want)
	}
}
