package domain

import "time"

// Listing status values. Status only ever moves "A" -> "I"; deactivated
// listings are never reactivated or physically deleted.
const (
	StatusActive   = "A"
	StatusInactive = "I"
)

// Property is a rental listing owned by the user who posted it.
// ID and PostedBy are fixed at creation time.
type Property struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Eircode       string    `json:"eircode"`
	PostalCode    string    `json:"postalCode"`
	Description   string    `json:"description"`
	Rent          float64   `json:"rent"`
	Deposit       float64   `json:"deposit"`
	Area          float64   `json:"area"`
	AvailableFrom string    `json:"availableFrom"`
	EnergyRating  string    `json:"energyRatings"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	PropertyType  string    `json:"propertyType"`
	Status        string    `json:"status"`
	PostedBy      string    `json:"postedBy"`
	PostedOn      time.Time `json:"postedOn"`
	ModifiedOn    time.Time `json:"modifiedOn"`
}

// OwnedBy reports whether the acting user owns the listing. Update and
// Deactivate share this gate so the two call sites cannot drift.
func (p *Property) OwnedBy(username string) bool {
	return p.PostedBy == username
}

// Patch carries a partial update. Nil fields are left untouched on the
// stored listing; Amenities replaces the whole set, never a union.
// Identity, ownership, status, timestamps and images are not patchable.
type Patch struct {
	Name          *string   `json:"name"`
	Address       *string   `json:"address"`
	Eircode       *string   `json:"eircode"`
	PostalCode    *string   `json:"postalCode"`
	Description   *string   `json:"description"`
	Rent          *float64  `json:"rent"`
	Deposit       *float64  `json:"deposit"`
	Area          *float64  `json:"area"`
	AvailableFrom *string   `json:"availableFrom"`
	EnergyRating  *string   `json:"energyRatings"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	Amenities     *[]string `json:"amenities"`
}

// Apply overwrites each field that is present on the patch and refreshes
// the modified timestamp.
func (p *Property) Apply(patch Patch) {
	merge(&p.Name, patch.Name)
	merge(&p.Address, patch.Address)
	merge(&p.Eircode, patch.Eircode)
	merge(&p.PostalCode, patch.PostalCode)
	merge(&p.Description, patch.Description)
	merge(&p.Rent, patch.Rent)
	merge(&p.Deposit, patch.Deposit)
	merge(&p.Area, patch.Area)
	merge(&p.AvailableFrom, patch.AvailableFrom)
	merge(&p.EnergyRating, patch.EnergyRating)
	merge(&p.Bedrooms, patch.Bedrooms)
	merge(&p.Bathrooms, patch.Bathrooms)
	merge(&p.Amenities, patch.Amenities)
	p.ModifiedOn = time.Now().UTC()
}

func merge[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}
