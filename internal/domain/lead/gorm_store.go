package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore persists leads in the hosted database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&Lead{})
}

func (s *GormStore) Create(ctx context.Context, l *Lead) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *GormStore) Update(ctx context.Context, id string, u Update) (*Lead, error) {
	var updated *Lead
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l Lead
		if err := tx.First(&l, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeadNotFound
			}
			return err
		}
		applyUpdate(&l, u, time.Now())
		if err := tx.Save(&l).Error; err != nil {
			return err
		}
		updated = &l
		return nil
	})
	return updated, err
}

func (s *GormStore) List(ctx context.Context, orgID string) ([]Lead, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if orgID != "" {
		q = q.Where("org_id = ?", orgID)
	}
	var leads []Lead
	if err := q.Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *GormStore) GetByID(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	if err := s.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &l, nil
}
