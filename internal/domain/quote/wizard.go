package quote

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"barrigudo/internal/domain/catalog"
	"barrigudo/internal/domain/geo"
	"barrigudo/internal/domain/lead"
	"barrigudo/internal/domain/media"
	"barrigudo/internal/domain/storage"
)

// ZipLookup is the geocoding collaborator. Failures are enrichment misses,
// never fatal.
type ZipLookup interface {
	Lookup(ctx context.Context, zip string) (geo.Place, error)
}

// LeadStore is the slice of the persistence collaborator the wizard needs.
type LeadStore interface {
	Create(ctx context.Context, l *lead.Lead) error
}

// Form is the mutable quote form state, owned exclusively by one wizard for
// the duration of one submission session.
type Form struct {
	Zip             string
	City            string
	State           string
	ServiceSlug     string
	SelectedService string // sub-service option label
	Subtype         string
	Details         string
	LocationType    string
	FullName        string
	Address         string
	Email           string
	Phone           string
	SelectedPros    []string
	WebsiteURL      string // honeypot: hidden field, non-empty means bot
}

// Result is what a finished submission hands back to the page.
type Result struct {
	LeadID   string `json:"lead_id,omitempty"`
	Redirect string `json:"redirect"`
}

const confirmationPath = "/quote/confirmation"

// Wizard drives the progressively-revealed quote form: a linear state
// machine over the section order, a reveal counter that only grows, and a
// single submission hand-off to the persistence collaborator.
type Wizard struct {
	orgID    string
	form     Form
	sections []Section
	revealed int
	errs     map[string]string
	done     bool

	zips    ZipLookup
	store   LeadStore
	objects storage.ObjectStorage
	intake  *media.Intake
}

// NewWizard creates a wizard for one page view. zipPrefill comes from the
// page's query parameter and may be empty.
func NewWizard(orgID, serviceSlug, zipPrefill string, zips ZipLookup, store LeadStore, objects storage.ObjectStorage, intake *media.Intake) *Wizard {
	return &Wizard{
		orgID:    orgID,
		form:     Form{ServiceSlug: serviceSlug, Zip: zipPrefill},
		sections: SectionOrder(false),
		revealed: 1,
		zips:     zips,
		store:    store,
		objects:  objects,
		intake:   intake,
	}
}

// reveal makes section index i visible. Monotonic: a no-op when the target
// is already revealed.
func (w *Wizard) reveal(i int) {
	if i+1 > w.revealed {
		w.revealed = i + 1
	}
}

// Revealed returns how many sections are currently visible.
func (w *Wizard) Revealed() int { return w.revealed }

// Sections returns the current section order.
func (w *Wizard) Sections() []Section { return w.sections }

// FormState returns a copy of the current form state.
func (w *Wizard) FormState() Form { return w.form }

// FieldErrors returns the per-field messages from the last failed submit.
func (w *Wizard) FieldErrors() map[string]string { return w.errs }

// Progress is the cosmetic completion percentage, recomputed per snapshot.
func (w *Wizard) Progress() int {
	p := int(math.Round(float64(w.revealed) / float64(len(w.sections)) * 100))
	if p > 100 {
		p = 100
	}
	return p
}

// SetZip records the zip. When it reaches exactly 5 digits while only the
// zip section is visible, city/state enrichment runs and the service
// section is revealed — on lookup success or failure alike.
func (w *Wizard) SetZip(ctx context.Context, zip string) {
	w.form.Zip = strings.TrimSpace(zip)
	if !zipRe.MatchString(w.form.Zip) || w.revealed != 1 {
		return
	}

	if w.zips != nil {
		if place, err := w.zips.Lookup(ctx, w.form.Zip); err == nil {
			// City/state are always overwritable by a fresh lookup; the
			// street address the user typed is never touched.
			w.form.City = place.City
			w.form.State = place.State
		}
	}
	w.reveal(indexOf(w.sections, SectionService))
}

// SelectService picks a sub-service option. The section order is recomputed
// here: a subtype step appears only when the option carries subtypes.
func (w *Wizard) SelectService(label string) {
	w.form.SelectedService = label
	w.form.Subtype = ""

	hasSubtypes := false
	if opt, ok := catalog.SubServiceByLabel(w.form.ServiceSlug, label); ok {
		hasSubtypes = len(opt.Subtypes) > 0
	}
	w.sections = SectionOrder(hasSubtypes)

	if w.revealed <= 2 {
		w.reveal(2)
	}
}

// SelectSubtype picks a subtype; only reachable when the selected option
// has subtypes.
func (w *Wizard) SelectSubtype(subtype string) {
	w.form.Subtype = subtype
	if w.revealed <= 3 {
		w.reveal(3)
	}
}

// SetLocationType records the location and fast-forwards to the contact
// section from any position.
func (w *Wizard) SetLocationType(v string) {
	w.form.LocationType = v
	w.reveal(indexOf(w.sections, SectionContact))
}

// ContinueFrom is the explicit Continue for the optional sections. It is
// idempotent: re-clicking once the target is revealed changes nothing. Only
// a visible section can be continued from, so a forged event cannot
// fast-forward past sections the visitor has not reached.
func (w *Wizard) ContinueFrom(section SectionID) error {
	switch section {
	case SectionDetails, SectionMedia, SectionContact:
	default:
		return ErrUnknownSection
	}
	idx := indexOf(w.sections, section)
	if idx < 0 {
		return ErrUnknownSection
	}
	if idx >= w.revealed {
		return ErrSectionHidden
	}
	w.reveal(idx + 1)
	return nil
}

// SetDetails records the free-text project description. An empty value
// clears it.
func (w *Wizard) SetDetails(text string) { w.form.Details = text }

// SetContact records the contact fields in one shot. The description is
// owned by the details event and left alone here.
func (w *Wizard) SetContact(fullName, address, email, phone, websiteURL string, pros []string) {
	w.form.FullName = fullName
	w.form.Address = address
	w.form.Email = email
	w.form.Phone = phone
	w.form.WebsiteURL = websiteURL
	w.form.SelectedPros = pros
}

// AddMedia queues one file.
func (w *Wizard) AddMedia(name, contentType string, size int64, r io.Reader) (*media.Item, error) {
	return w.intake.Add(name, contentType, size, r)
}

// RemoveMedia drops a queued file and releases its spool resource.
func (w *Wizard) RemoveMedia(id string) error {
	return w.intake.Remove(id)
}

// Media returns the queue in selection order.
func (w *Wizard) Media() []media.Item {
	return w.intake.Items()
}

// Submit validates and hands the lead off to the persistence collaborator.
// Either every check passes and exactly one create call is made, or nothing
// is persisted. On failure the form stays intact for a retry.
func (w *Wizard) Submit(ctx context.Context) (*Result, error) {
	if w.done {
		return nil, ErrAlreadySubmitted
	}

	// Honeypot trip: feign success without validating, uploading or
	// persisting anything.
	if w.form.WebsiteURL != "" {
		w.done = true
		return &Result{Redirect: confirmationPath}, nil
	}

	if errs := w.form.Validate(); errs != nil {
		w.errs = errs
		return nil, ErrValidation
	}
	w.errs = nil

	mediaURLs, err := w.uploadMedia(ctx)
	if err != nil {
		return nil, err
	}

	// Suppress the write if the session was torn down mid-flight.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	l := &lead.Lead{
		OrgID:         w.orgID,
		ServiceSlug:   w.form.ServiceSlug,
		Option:        w.form.SelectedService,
		Subtype:       w.form.Subtype,
		Details:       w.form.Details,
		LocationType:  w.form.LocationType,
		FullName:      strings.TrimSpace(w.form.FullName),
		Address:       w.composedAddress(),
		Email:         w.form.Email,
		Phone:         w.form.Phone,
		SelectedPros:  w.form.SelectedPros,
		MediaURLs:     mediaURLs,
		Status:        lead.StatusNew,
		StatusHistory: []lead.StatusChange{{Status: lead.StatusNew, Timestamp: time.Now()}},
	}

	if err := w.store.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	w.done = true
	return &Result{LeadID: l.ID, Redirect: confirmationPath}, nil
}

// uploadMedia uploads queued files sequentially in selection order; the URL
// list preserves that order. Any upload error aborts the submission so no
// lead is created with partial media.
func (w *Wizard) uploadMedia(ctx context.Context) ([]string, error) {
	items := w.intake.Items()
	if len(items) == 0 {
		return nil, nil
	}

	urls := make([]string, 0, len(items))
	for _, item := range items {
		path := item.Path
		contentType := item.ContentType
		if item.Kind == media.KindImage {
			// Compression failure is tolerated: upload the original.
			if cPath, cType := media.CompressImage(path); cType != "" {
				path = cPath
				contentType = cType
			}
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		url, err := w.objects.Put(ctx, storage.ObjectPath(w.orgID, item.Name), contentType, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// composedAddress joins street with the enriched city/state when present.
func (w *Wizard) composedAddress() string {
	parts := []string{strings.TrimSpace(w.form.Address)}
	if w.form.City != "" {
		parts = append(parts, w.form.City)
	}
	if w.form.State != "" {
		parts = append(parts, w.form.State)
	}
	return strings.Join(parts, ", ")
}
