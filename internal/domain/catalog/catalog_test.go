package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceBySlug(t *testing.T) {
	svc, ok := ServiceBySlug("plumbing")
	assert.True(t, ok)
	assert.Equal(t, "Plumbing", svc.Name)
	assert.Equal(t, CategoryTop, svc.Category)

	_, ok = ServiceBySlug("underwater-basket-weaving")
	assert.False(t, ok)
}

func TestServices_FilterByCategory(t *testing.T) {
	all := Services("")
	assert.Len(t, all, 15)

	top := Services(CategoryTop)
	assert.Len(t, top, 4)
	for _, s := range top {
		assert.Equal(t, CategoryTop, s.Category)
	}
}

func TestSubServices_FallsBackToDefaults(t *testing.T) {
	opts := SubServices("plumbing")
	assert.Equal(t, "Leak Repair", opts[0].Label)

	defaults := SubServices("gutter-cleaning")
	assert.Len(t, defaults, 5)
	assert.Equal(t, "Installation", defaults[0].Label)
	assert.Empty(t, defaults[0].Subtypes, "default options never carry subtypes")
}

func TestSubServiceByLabel(t *testing.T) {
	opt, ok := SubServiceByLabel("plumbing", "Water Heater")
	assert.True(t, ok)
	assert.Equal(t, []string{"Install", "Repair", "Replace"}, opt.Subtypes)

	opt, ok = SubServiceByLabel("plumbing", "Leak Repair")
	assert.True(t, ok)
	assert.Empty(t, opt.Subtypes)

	_, ok = SubServiceByLabel("plumbing", "Time Travel")
	assert.False(t, ok)

	// Unknown slugs resolve against the default list.
	opt, ok = SubServiceByLabel("masonry", "Repair")
	assert.True(t, ok)
	assert.Empty(t, opt.Subtypes)
}
