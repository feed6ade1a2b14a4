package lead

// UpdateLeadStatusRequest represents a status change from the admin panel
type UpdateLeadStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=new contacted won lost"`
}

// UpdateLeadNotesRequest replaces the owner notes
type UpdateLeadNotesRequest struct {
	Notes string `json:"notes"`
}

// LeadListResponse represents the inbox listing
type LeadListResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}
