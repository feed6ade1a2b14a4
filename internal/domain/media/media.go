package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MaxVideoSize caps accepted videos. Exactly this size is still accepted.
const MaxVideoSize = 50 * 1024 * 1024 // 50 MB

var (
	ErrVideoTooLarge   = errors.New("video exceeds the 50 MB limit")
	ErrUnsupportedType = errors.New("file type is not supported")
	ErrItemNotFound    = errors.New("media item not found")
)

// Kind classifies a file by its MIME prefix
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// ClassifyMime maps a content type to a media kind.
func ClassifyMime(contentType string) (Kind, bool) {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch {
	case strings.HasPrefix(ct, "image/"):
		return KindImage, true
	case strings.HasPrefix(ct, "video/"):
		return KindVideo, true
	}
	return "", false
}

// Item is one queued file, spooled to disk until submission. Path plays the
// role of the local preview resource and must be released on removal.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Kind        Kind   `json:"kind"`
	Size        int64  `json:"size"`
	Path        string `json:"-"`
}

// Intake owns the ordered media queue of one wizard session.
type Intake struct {
	mu    sync.Mutex
	dir   string
	items []Item
}

// NewIntake creates a spool directory for one session.
func NewIntake(baseDir, sessionID string) (*Intake, error) {
	dir := filepath.Join(baseDir, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create spool directory: %w", err)
	}
	return &Intake{dir: dir}, nil
}

// Add classifies and spools one file. Videos over the cap are rejected
// before anything is written; images have no client-side limit here.
func (in *Intake) Add(name, contentType string, size int64, r io.Reader) (*Item, error) {
	kind, ok := ClassifyMime(contentType)
	if !ok {
		return nil, ErrUnsupportedType
	}
	if kind == KindVideo && size > MaxVideoSize {
		return nil, ErrVideoTooLarge
	}

	id := uuid.New().String()
	path := filepath.Join(in.dir, id+filepath.Ext(name))

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to spool media: %w", err)
	}
	src := r
	if kind == KindVideo {
		// An understated declared size must not spool an unbounded stream;
		// one byte past the cap is enough to prove the violation.
		src = io.LimitReader(r, MaxVideoSize+1)
	}
	written, err := io.Copy(dst, src)
	dst.Close()
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to spool media: %w", err)
	}
	if kind == KindVideo && written > MaxVideoSize {
		os.Remove(path)
		return nil, ErrVideoTooLarge
	}

	item := Item{ID: id, Name: name, ContentType: contentType, Kind: kind, Size: written, Path: path}

	in.mu.Lock()
	in.items = append(in.items, item)
	in.mu.Unlock()

	return &item, nil
}

// Remove drops an item from the queue and releases its spool file.
func (in *Intake) Remove(id string) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	for i, item := range in.items {
		if item.ID == id {
			in.items = append(in.items[:i], in.items[i+1:]...)
			return os.Remove(item.Path)
		}
	}
	return ErrItemNotFound
}

// Items returns the queue in selection order.
func (in *Intake) Items() []Item {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]Item, len(in.items))
	copy(out, in.items)
	return out
}

// Close releases every spooled file and the session directory.
func (in *Intake) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.items = nil
	return os.RemoveAll(in.dir)
}
