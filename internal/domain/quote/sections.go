package quote

// SectionID identifies one form section of the quote wizard. The set is
// closed: sections are addressed through this enumeration, never by ad hoc
// string keys.
type SectionID string

const (
	SectionZip      SectionID = "zip"
	SectionService  SectionID = "service"
	SectionSubtype  SectionID = "subtype"
	SectionDetails  SectionID = "details"
	SectionMedia    SectionID = "media"
	SectionLocation SectionID = "location"
	SectionContact  SectionID = "contact"
	SectionReview   SectionID = "review"
)

// AdvanceMode says how a section hands off to the next one: Automatic
// sections advance as a data-driven side effect of filling a single field,
// Manual sections are optional and need an explicit Continue.
type AdvanceMode string

const (
	AdvanceAutomatic AdvanceMode = "automatic"
	AdvanceManual    AdvanceMode = "manual"
)

// Section is one row of the wizard's section-order table.
type Section struct {
	ID      SectionID   `json:"id"`
	Advance AdvanceMode `json:"advance"`
}

// SectionOrder returns the ordered section list. The subtype section is
// present only when the selected sub-service carries subtypes.
func SectionOrder(hasSubtypes bool) []Section {
	sections := []Section{
		{ID: SectionZip, Advance: AdvanceAutomatic},
		{ID: SectionService, Advance: AdvanceAutomatic},
		{ID: SectionSubtype, Advance: AdvanceAutomatic},
		{ID: SectionDetails, Advance: AdvanceManual},
		{ID: SectionMedia, Advance: AdvanceManual},
		{ID: SectionLocation, Advance: AdvanceAutomatic},
		{ID: SectionContact, Advance: AdvanceManual},
		{ID: SectionReview, Advance: AdvanceManual},
	}
	if hasSubtypes {
		return sections
	}
	out := make([]Section, 0, len(sections)-1)
	for _, s := range sections {
		if s.ID != SectionSubtype {
			out = append(out, s)
		}
	}
	return out
}

// indexOf returns the position of a section in the order, or -1.
func indexOf(sections []Section, id SectionID) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
