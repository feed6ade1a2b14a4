package quote

import (
	"regexp"
	"strings"

	"barrigudo/internal/domain/catalog"
)

var (
	zipRe   = regexp.MustCompile(`^\d{5}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9()+\- ]{7,}$`)
)

// Validate checks the whole form at submission time and returns a field →
// message map. Empty map means the form is submittable. Rules are
// independent of section order.
func (f *Form) Validate() map[string]string {
	errs := make(map[string]string)

	if !zipRe.MatchString(f.Zip) {
		errs["zip"] = "Enter a valid 5-digit zip code"
	}
	if f.SelectedService == "" {
		errs["selectedService"] = "Select a service"
	} else if opt, ok := catalog.SubServiceByLabel(f.ServiceSlug, f.SelectedService); ok && len(opt.Subtypes) > 0 && f.Subtype == "" {
		errs["subtype"] = "Select an option"
	}
	if f.LocationType == "" {
		errs["locationType"] = "Select a location type"
	}
	if strings.TrimSpace(f.FullName) == "" {
		errs["fullName"] = "Enter your full name"
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = "Enter your street address"
	}
	if !emailRe.MatchString(f.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if !phoneRe.MatchString(f.Phone) {
		errs["phone"] = "Enter a valid phone number"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
