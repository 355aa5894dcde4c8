package cleaner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cleandeps/internal/discovery"
	"cleandeps/internal/ui"
)

// scriptedConfirmer answers prompts from a fixed list and records them.
type scriptedConfirmer struct {
	answers []bool
	prompts []string
	err     error
}

func (s *scriptedConfirmer) Confirm(question string) (bool, error) {
	s.prompts = append(s.prompts, ui.StripANSI(question))
	if s.err != nil {
		return false, s.err
	}
	if len(s.answers) == 0 {
		return false, errors.New("unexpected prompt: " + question)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

// fakeFileOps fails RemoveAll for the listed paths and records every call.
type fakeFileOps struct {
	failures map[string]error
	removed  []string
}

func (f *fakeFileOps) RemoveAll(path string) error {
	f.removed = append(f.removed, path)
	if err, ok := f.failures[path]; ok {
		return err
	}
	return nil
}

func newTestPrinter(baseDir string) (*ui.Printer, *bytes.Buffer) {
	var out bytes.Buffer
	return ui.NewPrinter(&out, &out, baseDir, "mocha", ui.ColorNever), &out
}

func mkProject(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, discovery.DependencyDir, "left-pad"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, discovery.ManifestFile), []byte(`{"name":"pkg"}`), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func projects(paths ...string) discovery.ScanResult {
	var r discovery.ScanResult
	for _, p := range paths {
		r.Projects = append(r.Projects, discovery.Project{Path: p})
	}
	return r
}
