package listing

import (
	"fmt"
	"strings"
	"unicode"

	"propertyservice/internal/pkg/errs"
)

// Status is the listing availability state of a property, orthogonal to the
// approval workflow.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSold      Status = "Sold"
	StatusRented    Status = "Rented"
)

// PropertyType classifies what kind of property is listed.
type PropertyType string

const (
	TypeLand      PropertyType = "Land"
	TypeHouse     PropertyType = "House"
	TypeApartment PropertyType = "Apartment"
)

// Region is the administrative region (province) of a location.
type Region string

const (
	RegionKoshi         Region = "Koshi"
	RegionMadhesh       Region = "Madhesh"
	RegionBagmati       Region = "Bagmati"
	RegionGandaki       Region = "Gandaki"
	RegionLumbini       Region = "Lumbini"
	RegionKarnali       Region = "Karnali"
	RegionSudurpashchim Region = "Sudurpashchim"
)

// canonicalize normalizes a free-form enum token to the canonical casing:
// first rune upper, the rest lower. Filter values arrive from the transport
// layer in whatever case the client sent.
func canonicalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(strings.TrimSpace(s)))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusAvailable: {},
		StatusSold:      {},
		StatusRented:    {},
	}
}

func validPropertyTypes() map[PropertyType]struct{} {
	return map[PropertyType]struct{}{
		TypeLand:      {},
		TypeHouse:     {},
		TypeApartment: {},
	}
}

func validRegions() map[Region]struct{} {
	return map[Region]struct{}{
		RegionKoshi:         {},
		RegionMadhesh:       {},
		RegionBagmati:       {},
		RegionGandaki:       {},
		RegionLumbini:       {},
		RegionKarnali:       {},
		RegionSudurpashchim: {},
	}
}

// ParseStatus converts a free-form string into a Status after case
// normalization. Unknown values fail with an invalid-argument error naming
// the "status" field.
func ParseStatus(s string) (Status, error) {
	status := Status(canonicalize(s))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the value is a known listing status.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid listing status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// ParsePropertyType converts a free-form string into a PropertyType after
// case normalization. Unknown values fail with an invalid-argument error
// naming the "type" field.
func ParsePropertyType(s string) (PropertyType, error) {
	t := PropertyType(canonicalize(s))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the value is a known property type.
func (t PropertyType) Validate() error {
	if _, ok := validPropertyTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not a valid property type", string(t)))
	}
	return nil
}

func (t PropertyType) String() string {
	return string(t)
}

// ParseRegion converts a free-form string into a Region after case
// normalization. Unknown values fail with an invalid-argument error naming
// the "state" field.
func ParseRegion(s string) (Region, error) {
	r := Region(canonicalize(s))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks that the value is a known administrative region.
func (r Region) Validate() error {
	if _, ok := validRegions()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state",
			fmt.Errorf("%q is not a valid region", string(r)))
	}
	return nil
}

func (r Region) String() string {
	return string(r)
}
