package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&Review{})
}

func (s *GormStore) Create(ctx context.Context, r *Review) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *GormStore) Update(ctx context.Context, id string, u Update) (*Review, error) {
	var updated *Review
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r Review
		if err := tx.First(&r, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		applyUpdate(&r, u, time.Now())
		if err := tx.Save(&r).Error; err != nil {
			return err
		}
		updated = &r
		return nil
	})
	return updated, err
}

func (s *GormStore) List(ctx context.Context, orgID string, publishedOnly bool) ([]Review, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if orgID != "" {
		q = q.Where("org_id = ?", orgID)
	}
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var reviews []Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
