package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ObjectStorage is the upload collaborator: given a namespaced path and a
// payload it returns a publicly retrievable URL. Any error is fatal to the
// submission that queued the file.
type ObjectStorage interface {
	Put(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// ObjectPath builds an org-namespaced path with a randomized filename,
// keeping the original extension.
func ObjectPath(orgID, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return path.Join(orgID, uuid.New().String()+ext)
}
