// Package validation provides input validation for the API's write surfaces.
package validation

import "strings"

// Public validation messages, keyed by field. These are part of the API
// contract: clients match on them.
const (
	MsgAddressRequired     = "Street address is required"
	MsgCityRequired        = "City is required"
	MsgStateRequired       = "State is required"
	MsgCountryRequired     = "Country is required"
	MsgLatOutOfRange       = "Latitude must be within -90 and 90"
	MsgLngOutOfRange       = "Longitude must be within -180 and 180"
	MsgNameTooLong         = "Name must be less than 50 characters"
	MsgNameRequired        = "Name is required"
	MsgDescriptionRequired = "Description is required"
	MsgPriceNotPositive    = "Price per day must be a positive number"
	MsgReviewRequired      = "Review text is required"
	MsgStarsOutOfRange     = "Stars must be an integer from 1 to 5"
)

// SpotFields holds the full set of spot attributes subject to validation.
// Update handlers populate it from the merged (existing + supplied) record so
// partial updates cannot bypass field invariants.
type SpotFields struct {
	Address     string
	City        string
	State       string
	Country     string
	Lat         float64
	Lng         float64
	Name        string
	Description string
	Price       float64
}

// SpotFieldErrors checks every spot invariant and returns a field→message
// map. An empty map means the fields are valid.
func SpotFieldErrors(f SpotFields) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = MsgAddressRequired
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = MsgCityRequired
	}
	if strings.TrimSpace(f.State) == "" {
		errs["state"] = MsgStateRequired
	}
	if strings.TrimSpace(f.Country) == "" {
		errs["country"] = MsgCountryRequired
	}
	if f.Lat < -90 || f.Lat > 90 {
		errs["lat"] = MsgLatOutOfRange
	}
	if f.Lng < -180 || f.Lng > 180 {
		errs["lng"] = MsgLngOutOfRange
	}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = MsgNameRequired
	} else if len(f.Name) > 50 {
		errs["name"] = MsgNameTooLong
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = MsgDescriptionRequired
	}
	if f.Price <= 0 {
		errs["price"] = MsgPriceNotPositive
	}

	return errs
}

// ReviewFieldErrors checks review invariants and returns a field→message map.
func ReviewFieldErrors(review string, stars int) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(review) == "" {
		errs["review"] = MsgReviewRequired
	}
	if stars < 1 || stars > 5 {
		errs["stars"] = MsgStarsOutOfRange
	}

	return errs
}
