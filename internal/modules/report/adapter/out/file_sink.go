package out

import (
	"fmt"
	"os"
	"path/filepath"

	"aiact/internal/modules/report/domain"
	reportout "aiact/internal/modules/report/port/out"
)

// FileSink writes the payload through a scoped temp file and renames it into
// place as the save step. The temp handle is created immediately before use
// and released on every exit path: on success the rename consumes the file,
// on any failure the deferred cleanup closes and removes it.
type FileSink struct{}

func NewFileSink() reportout.Sink {
	return FileSink{}
}

func (FileSink) Save(reportID string, payload []byte, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	tmpName := tmp.Name()
	saved := false
	defer func() {
		if !saved {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(payload); err != nil {
		return "", fmt.Errorf("write report payload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("flush report payload: %w", err)
	}

	final := filepath.Join(dir, domain.FileName(reportID))
	if err := os.Rename(tmpName, final); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	saved = true
	return final, nil
}
