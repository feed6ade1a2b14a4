package portfolio

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"barrigudo/internal/pkg/blobstore"
)

// FileStore keeps the portfolio in a single JSON blob keyed "portfolio".
type FileStore struct {
	blob *blobstore.Blob
}

func NewFileStore(dataDir string) (*FileStore, error) {
	blob, err := blobstore.New(dataDir, "portfolio")
	if err != nil {
		return nil, err
	}
	return &FileStore{blob: blob}, nil
}

func (s *FileStore) Create(_ context.Context, p *Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	var projects []Project
	return s.blob.Update(&projects, func() error {
		projects = append(projects, *p)
		return nil
	})
}

func (s *FileStore) Update(_ context.Context, id string, u Update) (*Project, error) {
	var projects []Project
	var updated *Project
	err := s.blob.Update(&projects, func() error {
		for i := range projects {
			if projects[i].ID == id {
				applyUpdate(&projects[i], u, time.Now())
				cp := projects[i]
				updated = &cp
				return nil
			}
		}
		return ErrProjectNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FileStore) List(_ context.Context, orgID string, publishedOnly bool) ([]Project, error) {
	var projects []Project
	if err := s.blob.Load(&projects); err != nil {
		return nil, err
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if orgID != "" && p.OrgID != orgID {
			continue
		}
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	var projects []Project
	return s.blob.Update(&projects, func() error {
		for i := range projects {
			if projects[i].ID == id {
				projects = append(projects[:i], projects[i+1:]...)
				return nil
			}
		}
		return ErrProjectNotFound
	})
}
