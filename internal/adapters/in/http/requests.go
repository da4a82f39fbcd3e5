package http

import (
	"propertyservice/internal/core/domain/model/listing"
)

// LocationRequest carries the address of a new listing.
type LocationRequest struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Zipcode   int      `json:"zipcode"`
	Latitude  *float32 `json:"latitude"`
	Longitude *float32 `json:"longitude"`
}

// CreatePropertyRequest is the body of a listing creation call.
// Type, status, country and zipcode are optional; defaults apply.
type CreatePropertyRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PropertyType string          `json:"property_type"`
	Status       string          `json:"status"`
	OwnerID      string          `json:"owner_id"`
	Location     LocationRequest `json:"location"`
}

// UpdateLocationRequest is a partial address update. Nil fields stay unchanged.
type UpdateLocationRequest struct {
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	Country   *string  `json:"country"`
	Zipcode   *int     `json:"zipcode"`
	Latitude  *float32 `json:"latitude"`
	Longitude *float32 `json:"longitude"`
}

// UpdatePropertyRequest is the body of a partial listing update.
// Nil fields stay unchanged; the owner of a listing cannot be changed.
type UpdatePropertyRequest struct {
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	PropertyType *string                `json:"property_type"`
	Status       *string                `json:"status"`
	Location     *UpdateLocationRequest `json:"location"`
}

// toPatch converts the request into a domain location patch, parsing the
// region when one was provided.
func (r *UpdateLocationRequest) toPatch() (listing.LocationPatch, error) {
	patch := listing.LocationPatch{}
	if r == nil {
		return patch, nil
	}

	patch.Address = r.Address
	patch.City = r.City
	patch.Country = r.Country
	patch.Zipcode = r.Zipcode
	patch.Latitude = r.Latitude
	patch.Longitude = r.Longitude

	if r.State != nil {
		region, err := listing.ParseRegion(*r.State)
		if err != nil {
			return listing.LocationPatch{}, err
		}
		patch.State = &region
	}

	return patch, nil
}
