package blobstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Blob persists a single keyed JSON document on disk. Mutation is
// read-whole-blob, modify in memory, write-whole-blob; there is no schema
// versioning. One Blob instance must own its file exclusively.
type Blob struct {
	mu   sync.RWMutex
	path string
}

// New creates a blob rooted at dir/<key>.json.
func New(dir, key string) (*Blob, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Blob{path: filepath.Join(dir, key+".json")}, nil
}

// Load decodes the blob into v. A missing file leaves v untouched.
func (b *Blob) Load(v interface{}) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.load(v)
}

func (b *Blob) load(v interface{}) error {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", b.path, err)
	}
	return nil
}

// Save writes v as the whole blob.
func (b *Blob) Save(v interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.save(v)
}

func (b *Blob) save(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", b.path, err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.path, err)
	}
	return os.Rename(tmp, b.path)
}

// Update runs fn while holding the write lock: load, mutate, save.
func (b *Blob) Update(v interface{}, fn func() error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.load(v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return b.save(v)
}
