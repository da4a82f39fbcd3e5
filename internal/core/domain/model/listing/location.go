package listing

import (
	"errors"
	"fmt"

	"propertyservice/internal/pkg/errs"
)

const (
	maxAddressLength = 255
	maxCityLength    = 100

	// DefaultCountry and DefaultZipcode are applied when a creation payload
	// leaves them out.
	DefaultCountry = "Nepal"
	DefaultZipcode = 44200
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation or RestoreLocation")

// Location is the address record owned by exactly one Property. Its lifecycle
// is bound to its owner: it is created with the property, updated only
// through the property's update path, and removed when the property is
// deleted. It is never shared and never addressable on its own; the integer
// identity exists only for persistence.
type Location struct {
	id        int64
	address   string
	city      string
	state     Region
	country   string
	zipcode   int
	latitude  *float32
	longitude *float32

	isConstructed bool
}

// LocationPatch carries the optional fields of a partial location update.
// A nil field means "leave unchanged", never "clear".
type LocationPatch struct {
	Address   *string
	City      *string
	State     *Region
	Country   *string
	Zipcode   *int
	Latitude  *float32
	Longitude *float32
}

// NewLocation creates the owned address record for a new property.
// country and zipcode fall back to DefaultCountry / DefaultZipcode when
// empty or zero; latitude and longitude are optional.
func NewLocation(
	address string,
	city string,
	state Region,
	country string,
	zipcode int,
	latitude *float32,
	longitude *float32,
) (*Location, error) {
	loc := &Location{isConstructed: true}

	if country == "" {
		country = DefaultCountry
	}
	if zipcode == 0 {
		zipcode = DefaultZipcode
	}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setCity(city),
		loc.setState(state),
		loc.setCountry(country),
		loc.setZipcode(zipcode),
	); err != nil {
		return nil, err
	}

	loc.latitude = latitude
	loc.longitude = longitude
	return loc, nil
}

// RestoreLocation reconstructs a Location from persistence, including its
// store-assigned identity. Defaults are not applied; stored values are
// expected to be complete.
func RestoreLocation(
	id int64,
	address string,
	city string,
	state Region,
	country string,
	zipcode int,
	latitude *float32,
	longitude *float32,
) (*Location, error) {
	loc := &Location{isConstructed: true}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setCity(city),
		loc.setState(state),
		loc.setCountry(country),
		loc.setZipcode(zipcode),
	); err != nil {
		return nil, err
	}

	loc.id = id
	loc.latitude = latitude
	loc.longitude = longitude
	return loc, nil
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ApplyPatch applies the non-nil fields of a partial update, keeping the
// store identity intact. Validation rules match the constructors.
func (l *Location) ApplyPatch(patch LocationPatch) error {
	if patch.Address != nil {
		if err := l.setAddress(*patch.Address); err != nil {
			return err
		}
	}
	if patch.City != nil {
		if err := l.setCity(*patch.City); err != nil {
			return err
		}
	}
	if patch.State != nil {
		if err := l.setState(*patch.State); err != nil {
			return err
		}
	}
	if patch.Country != nil {
		if err := l.setCountry(*patch.Country); err != nil {
			return err
		}
	}
	if patch.Zipcode != nil {
		if err := l.setZipcode(*patch.Zipcode); err != nil {
			return err
		}
	}
	if patch.Latitude != nil {
		l.latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		l.longitude = patch.Longitude
	}
	return nil
}

// ID returns the store-assigned identity, zero before first persistence.
func (l *Location) ID() int64 {
	return l.id
}

// Address returns the street address.
func (l *Location) Address() string {
	return l.address
}

// City returns the city name.
func (l *Location) City() string {
	return l.city
}

// State returns the administrative region.
func (l *Location) State() Region {
	return l.state
}

// Country returns the country name.
func (l *Location) Country() string {
	return l.country
}

// Zipcode returns the postal code.
func (l *Location) Zipcode() int {
	return l.zipcode
}

// Latitude returns the optional latitude.
func (l *Location) Latitude() *float32 {
	return l.latitude
}

// Longitude returns the optional longitude.
func (l *Location) Longitude() *float32 {
	return l.longitude
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if len(address) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("length %d exceeds maximum of %d", len(address), maxAddressLength))
	}
	l.address = address
	return nil
}

func (l *Location) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) > maxCityLength {
		return errs.NewValueIsInvalidErrorWithCause("city",
			fmt.Errorf("length %d exceeds maximum of %d", len(city), maxCityLength))
	}
	l.city = city
	return nil
}

func (l *Location) setState(state Region) error {
	if err := state.Validate(); err != nil {
		return err
	}
	l.state = state
	return nil
}

func (l *Location) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	l.country = country
	return nil
}

func (l *Location) setZipcode(zipcode int) error {
	if zipcode < 0 {
		return errs.NewValueIsInvalidErrorWithCause("zipcode",
			fmt.Errorf("%d is negative", zipcode))
	}
	l.zipcode = zipcode
	return nil
}
