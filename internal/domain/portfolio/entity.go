package portfolio

import (
	"context"
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is one before/after gallery entry on the marketing site.
type Project struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OrgID       string    `gorm:"index" json:"org_id"`
	Title       string    `json:"title"`
	ServiceSlug string    `json:"service_slug,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	PhotoURLs   []string  `gorm:"serializer:json;type:json" json:"photo_urls,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "portfolio_projects" }

type Update struct {
	Title       *string
	ServiceSlug *string
	Description *string
	PhotoURLs   *[]string
	Published   *bool
}

type Store interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id string, u Update) (*Project, error)
	List(ctx context.Context, orgID string, publishedOnly bool) ([]Project, error)
	Delete(ctx context.Context, id string) error
}

func applyUpdate(p *Project, u Update, now time.Time) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.ServiceSlug != nil {
		p.ServiceSlug = *u.ServiceSlug
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.PhotoURLs != nil {
		p.PhotoURLs = *u.PhotoURLs
	}
	if u.Published != nil {
		p.Published = *u.Published
	}
	p.UpdatedAt = now
}
