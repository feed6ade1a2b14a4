package quote

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"barrigudo/internal/domain/geo"
	"barrigudo/internal/domain/lead"
	"barrigudo/internal/domain/media"
)

// Mock collaborators
type MockZipLookup struct {
	mock.Mock
}

func (m *MockZipLookup) Lookup(ctx context.Context, zip string) (geo.Place, error) {
	args := m.Called(ctx, zip)
	return args.Get(0).(geo.Place), args.Error(1)
}

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(ctx context.Context, l *lead.Lead) error {
	args := m.Called(ctx, l)
	if l != nil && l.ID == "" {
		l.ID = "lead-1" // simulate store-assigned id
	}
	return args.Error(0)
}

// recordingStorage derives each URL from the uploaded payload so tests can
// check ordering.
type recordingStorage struct {
	urls []string
	err  error
}

func (r *recordingStorage) Put(_ context.Context, _ string, _ string, rd io.Reader) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	b, _ := io.ReadAll(rd)
	url := "https://cdn.test/" + string(b)
	r.urls = append(r.urls, url)
	return url, nil
}

func newTestWizard(t *testing.T, zips ZipLookup, store LeadStore, objects *recordingStorage) *Wizard {
	t.Helper()
	intake, err := media.NewIntake(t.TempDir(), "session")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = intake.Close() })
	if objects == nil {
		objects = &recordingStorage{}
	}
	return NewWizard("barrigudo", "plumbing", "", zips, store, objects, intake)
}

func lookupMiss() *MockZipLookup {
	zips := new(MockZipLookup)
	zips.On("Lookup", mock.Anything, mock.Anything).Return(geo.Place{}, geo.ErrNoMatch)
	return zips
}

func fillValidForm(ctx context.Context, w *Wizard) {
	w.SetZip(ctx, "02139")
	w.SelectService("Leak Repair")
	w.SetLocationType("Home / Residence")
	w.SetContact("Jane Doe", "10 Main St", "jane@example.com", "555-123-4567", "", nil)
}

func TestWizard_RevealIsMonotonic(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	last := w.Revealed()
	assert.Equal(t, 1, last)

	steps := []func(){
		func() { w.SetZip(ctx, "021") },         // incomplete zip: no transition
		func() { w.SetZip(ctx, "02139") },       // reveals service
		func() { w.SetZip(ctx, "02140") },       // already past: no-op
		func() { w.SelectService("Leak Repair") },
		func() { w.SelectService("Drain Cleaning") }, // re-select: no decrease
		func() { _ = w.ContinueFrom(SectionDetails) },
		func() { w.SetLocationType("Home / Residence") }, // fast-forward
		func() { _ = w.ContinueFrom(SectionMedia) },      // behind the front: no-op
		func() { _ = w.ContinueFrom(SectionContact) },
	}
	for _, step := range steps {
		step()
		assert.GreaterOrEqual(t, w.Revealed(), last, "revealedCount must never decrease")
		last = w.Revealed()
	}
}

func TestWizard_ContinueIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	w.SetZip(ctx, "02139")
	w.SelectService("Leak Repair")
	assert.NoError(t, w.ContinueFrom(SectionDetails))
	got := w.Revealed()

	assert.NoError(t, w.ContinueFrom(SectionDetails))
	assert.Equal(t, got, w.Revealed(), "re-clicking Continue must not change revealedCount")
}

func TestWizard_ContinueRejectsAutomaticSections(t *testing.T) {
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)
	assert.ErrorIs(t, w.ContinueFrom(SectionZip), ErrUnknownSection)
	assert.ErrorIs(t, w.ContinueFrom("bogus"), ErrUnknownSection)
}

func TestWizard_ContinueRequiresVisibleSection(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	// Only the zip section is visible; no Continue target exists yet.
	assert.ErrorIs(t, w.ContinueFrom(SectionContact), ErrSectionHidden)
	assert.ErrorIs(t, w.ContinueFrom(SectionDetails), ErrSectionHidden)
	assert.Equal(t, 1, w.Revealed())

	w.SetZip(ctx, "02139")
	w.SelectService("Leak Repair")
	assert.ErrorIs(t, w.ContinueFrom(SectionMedia), ErrSectionHidden, "cannot skip the details section")
	assert.NoError(t, w.ContinueFrom(SectionDetails))
}

func TestWizard_DetailsSetAndCleared(t *testing.T) {
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	w.SetDetails("Dripping under the kitchen sink")
	assert.Equal(t, "Dripping under the kitchen sink", w.FormState().Details)

	// Contact edits never touch the description.
	w.SetContact("Jane Doe", "10 Main St", "jane@example.com", "555-123-4567", "", nil)
	assert.Equal(t, "Dripping under the kitchen sink", w.FormState().Details)

	w.SetDetails("")
	assert.Empty(t, w.FormState().Details)
}

func TestWizard_SubtypeSectionAppearsOnlyWhenNeeded(t *testing.T) {
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	w.SelectService("Leak Repair")
	assert.Len(t, w.Sections(), 7)
	assert.Equal(t, -1, indexOf(w.Sections(), SectionSubtype))

	w.SelectService("Water Heater")
	assert.Len(t, w.Sections(), 8)
	assert.NotEqual(t, -1, indexOf(w.Sections(), SectionSubtype))
}

func TestWizard_LocationFastForwardsToContact(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	w.SetZip(ctx, "02139")
	w.SelectService("Leak Repair")
	w.SetLocationType("Home / Residence")

	contactIdx := indexOf(w.Sections(), SectionContact)
	assert.Equal(t, contactIdx+1, w.Revealed())
}

func TestWizard_ZipEnrichmentFillsCityState(t *testing.T) {
	ctx := context.Background()
	zips := new(MockZipLookup)
	zips.On("Lookup", mock.Anything, "02139").Return(geo.Place{City: "Cambridge", State: "MA"}, nil)

	w := newTestWizard(t, zips, new(MockLeadStore), nil)
	w.SetZip(ctx, "02139")

	f := w.FormState()
	assert.Equal(t, "Cambridge", f.City)
	assert.Equal(t, "MA", f.State)
	assert.Equal(t, 2, w.Revealed())
	zips.AssertExpectations(t)
}

func TestWizard_LookupFailureNeverBlocksReveal(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	w.SetZip(ctx, "99999")

	f := w.FormState()
	assert.Empty(t, f.City)
	assert.Empty(t, f.State)
	assert.Equal(t, 2, w.Revealed(), "lookup is enrichment, not a gate")
}

func TestWizard_Progress(t *testing.T) {
	ctx := context.Background()
	w := newTestWizard(t, lookupMiss(), new(MockLeadStore), nil)

	assert.Equal(t, 14, w.Progress()) // 1/7

	w.SetZip(ctx, "02139")
	assert.Equal(t, 29, w.Progress()) // 2/7

	w.SelectService("Leak Repair")
	w.SetLocationType("Home / Residence")
	_ = w.ContinueFrom(SectionContact)
	assert.Equal(t, 100, w.Progress())
}

func TestWizard_HoneypotFeignsSuccess(t *testing.T) {
	ctx := context.Background()
	store := new(MockLeadStore)
	objects := &recordingStorage{}
	w := newTestWizard(t, lookupMiss(), store, objects)

	// Every real field invalid; only the hidden field is set.
	w.SetContact("", "", "", "", "https://spam.example", nil)

	result, err := w.Submit(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "/quote/confirmation", result.Redirect)
	assert.Empty(t, result.LeadID)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, objects.urls)
}

func TestWizard_SubmitSuccess(t *testing.T) {
	ctx := context.Background()
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("*lead.Lead")).Return(nil).Once()

	w := newTestWizard(t, lookupMiss(), store, nil)
	fillValidForm(ctx, w)

	result, err := w.Submit(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "/quote/confirmation", result.Redirect)
	assert.Equal(t, "lead-1", result.LeadID)

	store.AssertExpectations(t)
	created := store.Calls[0].Arguments.Get(1).(*lead.Lead)
	assert.Equal(t, lead.StatusNew, created.Status)
	assert.Len(t, created.StatusHistory, 1)
	assert.Equal(t, lead.StatusNew, created.StatusHistory[0].Status)
	assert.Equal(t, "plumbing", created.ServiceSlug)
	assert.Equal(t, "Leak Repair", created.Option)
	assert.Equal(t, "Jane Doe", created.FullName)
	assert.Equal(t, "10 Main St", created.Address)

	// A finished session cannot be submitted twice.
	_, err = w.Submit(ctx)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestWizard_SubmitComposesEnrichedAddress(t *testing.T) {
	ctx := context.Background()
	zips := new(MockZipLookup)
	zips.On("Lookup", mock.Anything, "02139").Return(geo.Place{City: "Cambridge", State: "MA"}, nil)
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	w := newTestWizard(t, zips, store, nil)
	fillValidForm(ctx, w)

	_, err := w.Submit(ctx)
	assert.NoError(t, err)

	created := store.Calls[0].Arguments.Get(1).(*lead.Lead)
	assert.Equal(t, "10 Main St, Cambridge, MA", created.Address)
}

func TestWizard_ValidationFailureNeverPersists(t *testing.T) {
	ctx := context.Background()
	store := new(MockLeadStore)
	w := newTestWizard(t, lookupMiss(), store, nil)

	_, err := w.Submit(ctx)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotEmpty(t, w.FieldErrors())
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWizard_MediaUploadedInSelectionOrder(t *testing.T) {
	ctx := context.Background()
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	objects := &recordingStorage{}

	w := newTestWizard(t, lookupMiss(), store, objects)
	fillValidForm(ctx, w)

	for _, payload := range []string{"A", "B", "C"} {
		_, err := w.AddMedia(payload+".jpg", "image/jpeg", 1, strings.NewReader(payload))
		assert.NoError(t, err)
	}

	_, err := w.Submit(ctx)
	assert.NoError(t, err)

	want := []string{"https://cdn.test/A", "https://cdn.test/B", "https://cdn.test/C"}
	created := store.Calls[0].Arguments.Get(1).(*lead.Lead)
	assert.Equal(t, want, created.MediaURLs)
	assert.Equal(t, want, objects.urls)
}

func TestWizard_UploadFailureAbortsSubmission(t *testing.T) {
	ctx := context.Background()
	store := new(MockLeadStore)
	objects := &recordingStorage{err: errors.New("bucket unavailable")}

	w := newTestWizard(t, lookupMiss(), store, objects)
	fillValidForm(ctx, w)
	_, err := w.AddMedia("A.jpg", "image/jpeg", 1, strings.NewReader("A"))
	assert.NoError(t, err)

	_, err = w.Submit(ctx)
	assert.ErrorIs(t, err, ErrUploadFailed)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWizard_PersistenceFailureKeepsFormForRetry(t *testing.T) {
	ctx := context.Background()
	store := new(MockLeadStore)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("backend down")).Once()
	store.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	w := newTestWizard(t, lookupMiss(), store, nil)
	fillValidForm(ctx, w)

	_, err := w.Submit(ctx)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, "Jane Doe", w.FormState().FullName, "form must stay intact for retry")

	result, err := w.Submit(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	store.AssertExpectations(t)
}

func TestWizard_CancelledSessionSuppressesWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := new(MockLeadStore)
	w := newTestWizard(t, lookupMiss(), store, nil)
	fillValidForm(ctx, w)

	cancel()
	_, err := w.Submit(ctx)
	assert.ErrorIs(t, err, ErrPersistence)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
