package review

import (
	"context"
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is a customer testimonial managed by staff. Only published reviews
// reach the public site.
type Review struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OrgID       string    `gorm:"index" json:"org_id"`
	Author      string    `json:"author"`
	Rating      int       `json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	ServiceSlug string    `json:"service_slug,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }

// Update carries the partial fields staff may change.
type Update struct {
	Author      *string
	Rating      *int
	Comment     *string
	ServiceSlug *string
	Published   *bool
}

// Store persists reviews; same dual-backend contract as the lead store.
type Store interface {
	Create(ctx context.Context, r *Review) error
	Update(ctx context.Context, id string, u Update) (*Review, error)
	List(ctx context.Context, orgID string, publishedOnly bool) ([]Review, error)
	Delete(ctx context.Context, id string) error
}

func applyUpdate(r *Review, u Update, now time.Time) {
	if u.Author != nil {
		r.Author = *u.Author
	}
	if u.Rating != nil {
		r.Rating = *u.Rating
	}
	if u.Comment != nil {
		r.Comment = *u.Comment
	}
	if u.ServiceSlug != nil {
		r.ServiceSlug = *u.ServiceSlug
	}
	if u.Published != nil {
		r.Published = *u.Published
	}
	r.UpdatedAt = now
}
