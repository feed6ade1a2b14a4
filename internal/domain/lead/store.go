package lead

import (
	"context"
	"time"
)

// Store is the lead persistence collaborator. Two interchangeable
// implementations exist: GormStore against a hosted database and FileStore
// against on-disk JSON blobs. Callers must be indifferent to which is active.
type Store interface {
	// Create persists a new lead, stamping ID and timestamps. The caller
	// provides the initial status and single-entry history.
	Create(ctx context.Context, l *Lead) error

	// Update merges the set fields into the stored lead, stamps UpdatedAt,
	// and appends to StatusHistory iff a status is present and differs from
	// the stored one. Returns ErrLeadNotFound when the id is unknown.
	Update(ctx context.Context, id string, u Update) (*Lead, error)

	// List returns leads newest first by CreatedAt, scoped to orgID when
	// non-empty.
	List(ctx context.Context, orgID string) ([]Lead, error)

	GetByID(ctx context.Context, id string) (*Lead, error)
}

// applyUpdate implements the merge semantics shared by both stores.
func applyUpdate(l *Lead, u Update, now time.Time) {
	if u.Status != nil && *u.Status != l.Status {
		l.Status = *u.Status
		l.StatusHistory = append(l.StatusHistory, StatusChange{Status: *u.Status, Timestamp: now})
	}
	if u.OwnerNotes != nil {
		l.OwnerNotes = *u.OwnerNotes
	}
	l.UpdatedAt = now
}
