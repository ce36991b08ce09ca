package out_test

import (
	"os"
	"path/filepath"
	"testing"

	"aiact/internal/modules/report/adapter/out"
)

func scratchFiles(t *testing.T, dir string) []string {
	t.Helper()
	leftovers, err := filepath.Glob(filepath.Join(dir, ".report-*"))
	if err != nil {
		t.Fatalf("glob scratch files: %v", err)
	}
	return leftovers
}

func TestSaveWritesFinalFileAndLeavesNoScratch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sink := out.NewFileSink()

	path, err := sink.Save("rep-1", []byte("%PDF-1.4 payload"), dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "EU-AI-Compliance-Report-rep-1.pdf" {
		t.Fatalf("unexpected file name: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved report: %v", err)
	}
	if string(b) != "%PDF-1.4 payload" {
		t.Fatalf("payload mismatch: %q", b)
	}
	if leftovers := scratchFiles(t, dir); len(leftovers) != 0 {
		t.Fatalf("scratch files left behind: %v", leftovers)
	}
}

func TestSaveReleasesScratchFileWhenSaveStepFails(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// Occupy the final name with a non-empty directory so the rename —
	// the save step itself — fails after a successful download.
	final := filepath.Join(dir, "EU-AI-Compliance-Report-rep-1.pdf")
	if err := os.MkdirAll(filepath.Join(final, "blocker"), 0o755); err != nil {
		t.Fatalf("prepare blocking dir: %v", err)
	}

	sink := out.NewFileSink()
	if _, err := sink.Save("rep-1", []byte("payload"), dir); err == nil {
		t.Fatalf("expected save step failure")
	}
	if leftovers := scratchFiles(t, dir); len(leftovers) != 0 {
		t.Fatalf("scratch file must be released on failure, found %v", leftovers)
	}
}

func TestSaveOverwritesExistingReport(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	sink := out.NewFileSink()

	if _, err := sink.Save("rep-1", []byte("old"), dir); err != nil {
		t.Fatalf("first save: %v", err)
	}
	path, err := sink.Save("rep-1", []byte("new"), dir)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "new" {
		t.Fatalf("expected repeated download to replace the file, got %q", b)
	}
}
