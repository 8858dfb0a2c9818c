// internal/exporter/export.go
package exporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
)

// SerializationError is an output failure.
// The document itself is still valid when this is returned.
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Exporter writes one serialized document to stdout and to a file.
type Exporter struct {
	format Format
	path   string
	stdout io.Writer
}

// New builds an Exporter. stdout receives the same bytes as the file.
func New(format Format, path string, stdout io.Writer) (*Exporter, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.New("exporter: output path required")
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &Exporter{format: format, path: path, stdout: stdout}, nil
}

// Path is the persisted file location.
func (e *Exporter) Path() string { return e.path }

// Export serializes doc once and emits the identical bytes to stdout and
// then to the file. A stdout failure does not prevent the file write.
func (e *Exporter) Export(doc decoder.Document) error {
	data, err := Serialize(doc, e.format)
	if err != nil {
		return &SerializationError{Path: e.path, Err: err}
	}

	var errs []error

	if _, err := e.stdout.Write(data); err != nil {
		errs = append(errs, &SerializationError{Path: "stdout", Err: err})
	}

	if err := writeFileAtomic(e.path, data); err != nil {
		errs = append(errs, &SerializationError{Path: e.path, Err: err})
	}

	return errors.Join(errs...)
}

// writeFileAtomic replaces path in one rename so readers never see a
// partially written document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
