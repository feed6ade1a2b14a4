package lead

import (
	"context"

	"github.com/samber/lo"
)

// Service handles the admin inbox business logic
type Service struct {
	store Store
	feed  *Feed
}

// NewService creates the admin lead service. feed may be nil in tests.
func NewService(store Store, feed *Feed) *Service {
	return &Service{store: store, feed: feed}
}

// List returns leads for an org, newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, orgID string, status *Status) ([]Lead, error) {
	leads, err := s.store.List(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return leads, nil
	}
	return lo.Filter(leads, func(l Lead, _ int) bool { return l.Status == *status }), nil
}

// GetByID returns a single lead.
func (s *Service) GetByID(ctx context.Context, id string) (*Lead, error) {
	return s.store.GetByID(ctx, id)
}

// ChangeStatus moves a lead through the pipeline. The store appends to the
// status history only when the status actually changes.
func (s *Service) ChangeStatus(ctx context.Context, id string, status Status) (*Lead, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	l, err := s.store.Update(ctx, id, Update{Status: &status})
	if err != nil {
		return nil, err
	}
	if s.feed != nil {
		s.feed.PublishStatusChanged(l)
	}
	return l, nil
}

// UpdateNotes replaces the owner notes on a lead.
func (s *Service) UpdateNotes(ctx context.Context, id string, notes string) (*Lead, error) {
	return s.store.Update(ctx, id, Update{OwnerNotes: &notes})
}

// Stats returns lead counts per status for the dashboard.
func (s *Service) Stats(ctx context.Context, orgID string) (map[Status]int, error) {
	leads, err := s.store.List(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return lo.CountValuesBy(leads, func(l Lead) Status { return l.Status }), nil
}
