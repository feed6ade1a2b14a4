package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores objects on the local filesystem and serves them through the
// API's static file route.
type Disk struct {
	baseDir    string
	staticBase string // URL prefix, e.g. http://host/static/uploads
}

func NewDisk(baseDir, staticBase string) *Disk {
	return &Disk{baseDir: baseDir, staticBase: strings.TrimRight(staticBase, "/")}
}

func (d *Disk) Put(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	absPath := filepath.Join(d.baseDir, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(absPath)
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	return d.staticBase + "/" + objectPath, nil
}
