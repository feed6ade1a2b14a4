package review

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"barrigudo/internal/pkg/blobstore"
)

// FileStore keeps all reviews in a single JSON blob keyed "reviews".
type FileStore struct {
	blob *blobstore.Blob
}

func NewFileStore(dataDir string) (*FileStore, error) {
	blob, err := blobstore.New(dataDir, "reviews")
	if err != nil {
		return nil, err
	}
	return &FileStore{blob: blob}, nil
}

func (s *FileStore) Create(_ context.Context, r *Review) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now

	var reviews []Review
	return s.blob.Update(&reviews, func() error {
		reviews = append(reviews, *r)
		return nil
	})
}

func (s *FileStore) Update(_ context.Context, id string, u Update) (*Review, error) {
	var reviews []Review
	var updated *Review
	err := s.blob.Update(&reviews, func() error {
		for i := range reviews {
			if reviews[i].ID == id {
				applyUpdate(&reviews[i], u, time.Now())
				cp := reviews[i]
				updated = &cp
				return nil
			}
		}
		return ErrReviewNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FileStore) List(_ context.Context, orgID string, publishedOnly bool) ([]Review, error) {
	var reviews []Review
	if err := s.blob.Load(&reviews); err != nil {
		return nil, err
	}
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if orgID != "" && r.OrgID != orgID {
			continue
		}
		if publishedOnly && !r.Published {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	var reviews []Review
	return s.blob.Update(&reviews, func() error {
		for i := range reviews {
			if reviews[i].ID == id {
				reviews = append(reviews[:i], reviews[i+1:]...)
				return nil
			}
		}
		return ErrReviewNotFound
	})
}
