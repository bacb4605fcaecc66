package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/valreport/internal/model"
)

// IOError is returned when a report cannot be written.
// Op names the step that failed: "create directory", "open", "write" or "close".
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying file system error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// WriteFile writes content to path, replacing any existing file.
// Missing parent directories are created. The file is closed on every path,
// and a close failure is reported like a write failure.
func WriteFile(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
			return &IOError{Op: "create directory", Path: dir, Err: mkErr}
		}
	}

	//nolint:gosec // Reports are meant to be shared; 0644 is intentional
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: closeErr}
		}
	}()

	if _, wErr := f.Write(content); wErr != nil {
		return &IOError{Op: "write", Path: path, Err: wErr}
	}
	return nil
}

// Generate renders data with r and writes the result to path.
// Rendering happens first, so invalid data never creates or truncates the
// output file.
func Generate(r Renderer, data *model.ReportData, path string) error {
	content, err := r.Render(data)
	if err != nil {
		return err
	}
	return WriteFile(path, []byte(content))
}
