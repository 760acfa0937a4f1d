package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tests that we're returning current time.
func TestTimeNow(t *testing.T) {
	assert.InDelta(t, time.Now().UTC().Unix(), TimeNow(), 1)
}

// Tests slug conversions.
func TestSlugs(t *testing.T) {
	data := []struct {
		slug string
		name string
	}{
		{slug: "home", name: "Home"},
		{slug: "summer_house", name: "Summer house"},
		{slug: "MY_OFFICE", name: "My office"},
		{slug: "", name: ""},
	}

	for _, v := range data {
		assert.Equal(t, v.name, Deslugify(v.slug), v.slug)
	}

	assert.Equal(t, "summer_house", Slugify(" Summer House "))
	assert.Equal(t, "a_b_c", Slugify("a-b.c"))
}

// Tests location ID.
func TestLocationID(t *testing.T) {
	assert.Equal(t, "55.75-37.62", LocationID(55.75, 37.62))
	assert.Equal(t, "-33.8688-151", LocationID(-33.8688, 151))
}

// Tests pointer helpers.
func TestPointers(t *testing.T) {
	f := FloatPtr(1.5)
	s := StringPtr("x")
	assert.Equal(t, 1.5, *f)
	assert.Equal(t, "x", *s)
}
