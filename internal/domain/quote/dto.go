package quote

import "barrigudo/internal/domain/media"

// CreateSessionRequest starts a wizard session; both fields are the quote
// page's query parameters and may be empty.
type CreateSessionRequest struct {
	Service string `json:"service"`
	Zip     string `json:"zip"`
}

// EventRequest is one data-driven wizard transition.
type EventRequest struct {
	Type  string `json:"type" validate:"required,oneof=zip service subtype details location continue"`
	Value string `json:"value"`
}

// ContactRequest carries the contact section plus the hidden honeypot
// field. Nothing is validated here: validation happens only at submission.
type ContactRequest struct {
	FullName     string   `json:"full_name"`
	Address      string   `json:"address"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	SelectedPros []string `json:"selected_pros"`
	WebsiteURL   string   `json:"website_url"`
}

// FormSnapshot mirrors the visible form state back to the page.
type FormSnapshot struct {
	Zip             string   `json:"zip"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	ServiceSlug     string   `json:"service_slug"`
	SelectedService string   `json:"selected_service"`
	Subtype         string   `json:"subtype"`
	Details         string   `json:"details"`
	LocationType    string   `json:"location_type"`
	FullName        string   `json:"full_name"`
	Address         string   `json:"address"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	SelectedPros    []string `json:"selected_pros"`
}

// SessionSnapshot is the wizard state returned after every call.
type SessionSnapshot struct {
	ID       string            `json:"id"`
	Sections []Section         `json:"sections"`
	Revealed int               `json:"revealed"`
	Progress int               `json:"progress"`
	Form     FormSnapshot      `json:"form"`
	Media    []media.Item      `json:"media"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func snapshot(s *Session, w *Wizard) SessionSnapshot {
	f := w.FormState()
	return SessionSnapshot{
		ID:       s.ID,
		Sections: w.Sections(),
		Revealed: w.Revealed(),
		Progress: w.Progress(),
		Form: FormSnapshot{
			Zip:             f.Zip,
			City:            f.City,
			State:           f.State,
			ServiceSlug:     f.ServiceSlug,
			SelectedService: f.SelectedService,
			Subtype:         f.Subtype,
			Details:         f.Details,
			LocationType:    f.LocationType,
			FullName:        f.FullName,
			Address:         f.Address,
			Email:           f.Email,
			Phone:           f.Phone,
			SelectedPros:    f.SelectedPros,
		},
		Media:  w.Media(),
		Errors: w.FieldErrors(),
	}
}
