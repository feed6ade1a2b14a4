package settings

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"barrigudo/internal/pkg/blobstore"
)

// FileStore keeps site settings in a single JSON blob keyed "settings".
type FileStore struct {
	blob *blobstore.Blob
}

func NewFileStore(dataDir string) (*FileStore, error) {
	blob, err := blobstore.New(dataDir, "settings")
	if err != nil {
		return nil, err
	}
	return &FileStore{blob: blob}, nil
}

func (s *FileStore) Get(_ context.Context, key string) (*Setting, error) {
	settings := map[string]Setting{}
	if err := s.blob.Load(&settings); err != nil {
		return nil, err
	}
	setting, ok := settings[key]
	if !ok {
		return nil, ErrSettingNotFound
	}
	return &setting, nil
}

func (s *FileStore) Put(_ context.Context, key string, value json.RawMessage) (*Setting, error) {
	setting := Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	settings := map[string]Setting{}
	err := s.blob.Update(&settings, func() error {
		settings[key] = setting
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (s *FileStore) All(_ context.Context) ([]Setting, error) {
	settings := map[string]Setting{}
	if err := s.blob.Load(&settings); err != nil {
		return nil, err
	}
	out := make([]Setting, 0, len(settings))
	for _, v := range settings {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
