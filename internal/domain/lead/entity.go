package lead

import "time"

// Status represents lead status in the admin pipeline
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
)

// ValidStatus reports whether s is a known pipeline status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusWon, StatusLost:
		return true
	}
	return false
}

// StatusChange is one entry in a lead's status history. History is append
// only: it is never rewritten or pruned.
type StatusChange struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Lead is a prospective customer's service request captured by the quote
// wizard. Created once per successful submission; mutated afterwards only
// through explicit status changes and note edits in the admin panel.
type Lead struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	OrgID         string         `gorm:"index" json:"org_id"`
	ServiceSlug   string         `json:"service_slug"`
	Option        string         `json:"selected_service_option"`
	Subtype       string         `json:"subtype,omitempty"`
	Details       string         `gorm:"type:text" json:"details,omitempty"`
	LocationType  string         `json:"location_type"`
	FullName      string         `json:"full_name"`
	Address       string         `json:"address"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	SelectedPros  []string       `gorm:"serializer:json;type:json" json:"selected_pros,omitempty"`
	MediaURLs     []string       `gorm:"serializer:json;type:json" json:"media_urls,omitempty"`
	Status        Status         `gorm:"index" json:"status"`
	OwnerNotes    string         `gorm:"type:text" json:"owner_notes,omitempty"`
	StatusHistory []StatusChange `gorm:"serializer:json;type:json" json:"status_history"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

// Update carries the partial fields an admin may change on a stored lead.
// Nil fields are left untouched.
type Update struct {
	Status     *Status
	OwnerNotes *string
}
