package lead

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"barrigudo/internal/pkg/blobstore"
)

// FileStore is the on-device fallback used when no hosted backend is
// configured. All leads live in a single JSON blob keyed "leads".
type FileStore struct {
	blob *blobstore.Blob
}

func NewFileStore(dataDir string) (*FileStore, error) {
	blob, err := blobstore.New(dataDir, "leads")
	if err != nil {
		return nil, err
	}
	return &FileStore{blob: blob}, nil
}

func (s *FileStore) Create(_ context.Context, l *Lead) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	var leads []Lead
	return s.blob.Update(&leads, func() error {
		leads = append(leads, *l)
		return nil
	})
}

func (s *FileStore) Update(_ context.Context, id string, u Update) (*Lead, error) {
	var leads []Lead
	var updated *Lead
	err := s.blob.Update(&leads, func() error {
		for i := range leads {
			if leads[i].ID == id {
				applyUpdate(&leads[i], u, time.Now())
				cp := leads[i]
				updated = &cp
				return nil
			}
		}
		return ErrLeadNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FileStore) List(_ context.Context, orgID string) ([]Lead, error) {
	var leads []Lead
	if err := s.blob.Load(&leads); err != nil {
		return nil, err
	}
	out := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if orgID == "" || l.OrgID == orgID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *FileStore) GetByID(_ context.Context, id string) (*Lead, error) {
	var leads []Lead
	if err := s.blob.Load(&leads); err != nil {
		return nil, err
	}
	for _, l := range leads {
		if l.ID == id {
			cp := l
			return &cp, nil
		}
	}
	return nil, ErrLeadNotFound
}
