package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSpotFields() SpotFields {
	return SpotFields{
		Address:     "123 Disney Lane",
		City:        "San Francisco",
		State:       "California",
		Country:     "United States of America",
		Lat:         37.7645358,
		Lng:         -122.4730327,
		Name:        "App Academy",
		Description: "Place where web developers are created",
		Price:       123,
	}
}

func TestSpotFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SpotFields)
		field   string
		message string
	}{
		{"valid", func(f *SpotFields) {}, "", ""},
		{"missing address", func(f *SpotFields) { f.Address = "" }, "address", MsgAddressRequired},
		{"whitespace address", func(f *SpotFields) { f.Address = "   " }, "address", MsgAddressRequired},
		{"missing city", func(f *SpotFields) { f.City = "" }, "city", MsgCityRequired},
		{"missing state", func(f *SpotFields) { f.State = "" }, "state", MsgStateRequired},
		{"missing country", func(f *SpotFields) { f.Country = "" }, "country", MsgCountryRequired},
		{"lat too low", func(f *SpotFields) { f.Lat = -90.1 }, "lat", MsgLatOutOfRange},
		{"lat too high", func(f *SpotFields) { f.Lat = 90.1 }, "lat", MsgLatOutOfRange},
		{"lng too low", func(f *SpotFields) { f.Lng = -180.5 }, "lng", MsgLngOutOfRange},
		{"lng too high", func(f *SpotFields) { f.Lng = 181 }, "lng", MsgLngOutOfRange},
		{"missing name", func(f *SpotFields) { f.Name = "" }, "name", MsgNameRequired},
		{"name too long", func(f *SpotFields) { f.Name = strings.Repeat("x", 51) }, "name", MsgNameTooLong},
		{"missing description", func(f *SpotFields) { f.Description = "" }, "description", MsgDescriptionRequired},
		{"zero price", func(f *SpotFields) { f.Price = 0 }, "price", MsgPriceNotPositive},
		{"negative price", func(f *SpotFields) { f.Price = -5 }, "price", MsgPriceNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validSpotFields()
			tt.mutate(&f)
			errs := SpotFieldErrors(f)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.message, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestSpotFieldErrorsBoundaryValues(t *testing.T) {
	f := validSpotFields()
	f.Lat = 90
	f.Lng = -180
	f.Name = strings.Repeat("y", 50)
	assert.Empty(t, SpotFieldErrors(f))
}

func TestSpotFieldErrorsCollectsAll(t *testing.T) {
	errs := SpotFieldErrors(SpotFields{Lat: 200, Lng: 300, Price: -1})
	assert.Len(t, errs, 9)
}

func TestReviewFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		review  string
		stars   int
		field   string
		message string
	}{
		{"valid", "Great place", 5, "", ""},
		{"empty review", "", 3, "review", MsgReviewRequired},
		{"whitespace review", "  ", 3, "review", MsgReviewRequired},
		{"stars too low", "Nice", 0, "stars", MsgStarsOutOfRange},
		{"stars too high", "Nice", 6, "stars", MsgStarsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ReviewFieldErrors(tt.review, tt.stars)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("demo@user.io"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password123"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("allletters"))
	assert.Error(t, ValidatePassword("12345678"))
}
