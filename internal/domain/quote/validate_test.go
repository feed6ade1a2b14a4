package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() Form {
	return Form{
		Zip:             "02139",
		ServiceSlug:     "plumbing",
		SelectedService: "Leak Repair",
		LocationType:    "Home / Residence",
		FullName:        "Jane Doe",
		Address:         "10 Main St",
		Email:           "jane@example.com",
		Phone:           "555-123-4567",
	}
}

func TestValidate_AcceptsWellFormedForm(t *testing.T) {
	f := validForm()
	assert.Nil(t, f.Validate())
}

func TestValidate_ReportsEveryInvalidField(t *testing.T) {
	f := Form{
		Zip:   "1234",
		Email: "not-an-email",
		Phone: "abc",
	}

	errs := f.Validate()
	for _, field := range []string{"zip", "selectedService", "locationType", "fullName", "address", "email", "phone"} {
		assert.Contains(t, errs, field)
	}
	assert.NotContains(t, errs, "subtype", "subtype is only checked once a service is selected")
}

func TestValidate_WhitespaceOnlyIsEmpty(t *testing.T) {
	f := validForm()
	f.FullName = "   "
	f.Address = "\t"

	errs := f.Validate()
	assert.Contains(t, errs, "fullName")
	assert.Contains(t, errs, "address")
}

func TestValidate_SubtypeRequiredOnlyWhenOptionHasSubtypes(t *testing.T) {
	f := validForm()
	f.SelectedService = "Water Heater"
	errs := f.Validate()
	assert.Contains(t, errs, "subtype")

	f.Subtype = "Repair"
	assert.Nil(t, f.Validate())

	f = validForm()
	f.SelectedService = "Leak Repair"
	f.Subtype = ""
	assert.Nil(t, f.Validate(), "options without subtypes never require one")
}

func TestValidate_ZipShape(t *testing.T) {
	for _, zip := range []string{"", "1234", "123456", "0213a", "02139-1234"} {
		f := validForm()
		f.Zip = zip
		assert.Contains(t, f.Validate(), "zip", "zip %q must be rejected", zip)
	}
}

func TestValidate_EmailShape(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com", "@c.com"} {
		f := validForm()
		f.Email = email
		assert.Contains(t, f.Validate(), "email", "email %q must be rejected", email)
	}
	f := validForm()
	f.Email = "user+tag@mail.example.org"
	assert.Nil(t, f.Validate())
}

func TestValidate_PhoneShape(t *testing.T) {
	for _, phone := range []string{"", "abc", "123456", "555-123x"} {
		f := validForm()
		f.Phone = phone
		assert.Contains(t, f.Validate(), "phone", "phone %q must be rejected", phone)
	}
	for _, phone := range []string{"5551234", "+1 (617) 555-0100", "617 555 0100"} {
		f := validForm()
		f.Phone = phone
		assert.Nil(t, f.Validate(), "phone %q must be accepted", phone)
	}
}
