package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProperty() Property {
	posted := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return Property{
		ID:            "11111111-1111-1111-1111-111111111111",
		Name:          "Sunny 2-bed apartment",
		Address:       "12 Dame Street, Dublin 2",
		Eircode:       "D02 XY45",
		PostalCode:    "D02",
		Description:   "Bright apartment near Trinity",
		Rent:          1500,
		Deposit:       1500,
		Area:          68.5,
		AvailableFrom: "2025-04-01",
		EnergyRating:  "B2",
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"parking", "wifi"},
		Images:        []string{"https://img.example/1.jpg"},
		PropertyType:  "apartment",
		Status:        StatusActive,
		PostedBy:      "alice",
		PostedOn:      posted,
		ModifiedOn:    posted,
	}
}

func TestApply_SingleFieldLeavesRestUntouched(t *testing.T) {
	p := sampleProperty()
	before := p

	rent := 1600.0
	p.Apply(Patch{Rent: &rent})

	assert.Equal(t, 1600.0, p.Rent)
	assert.True(t, p.ModifiedOn.After(before.ModifiedOn))

	// everything else keeps its prior value
	assert.Equal(t, before.Name, p.Name)
	assert.Equal(t, before.Address, p.Address)
	assert.Equal(t, before.Eircode, p.Eircode)
	assert.Equal(t, before.PostalCode, p.PostalCode)
	assert.Equal(t, before.Description, p.Description)
	assert.Equal(t, before.Deposit, p.Deposit)
	assert.Equal(t, before.Area, p.Area)
	assert.Equal(t, before.AvailableFrom, p.AvailableFrom)
	assert.Equal(t, before.EnergyRating, p.EnergyRating)
	assert.Equal(t, before.Bedrooms, p.Bedrooms)
	assert.Equal(t, before.Bathrooms, p.Bathrooms)
	assert.Equal(t, before.Amenities, p.Amenities)
	assert.Equal(t, before.Images, p.Images)
	assert.Equal(t, before.Status, p.Status)
	assert.Equal(t, before.PostedBy, p.PostedBy)
	assert.Equal(t, before.PostedOn, p.PostedOn)
}

func TestApply_AmenitiesReplacedWholesale(t *testing.T) {
	p := sampleProperty()

	amenities := []string{"gym"}
	p.Apply(Patch{Amenities: &amenities})

	// whole-set replace, not a union with the previous set
	assert.Equal(t, []string{"gym"}, p.Amenities)
}

func TestApply_MultipleFields(t *testing.T) {
	p := sampleProperty()

	name := "Renovated 2-bed apartment"
	bedrooms := 3
	p.Apply(Patch{Name: &name, Bedrooms: &bedrooms})

	assert.Equal(t, "Renovated 2-bed apartment", p.Name)
	assert.Equal(t, 3, p.Bedrooms)
	assert.Equal(t, 1500.0, p.Rent)
}

func TestOwnedBy(t *testing.T) {
	p := sampleProperty()

	assert.True(t, p.OwnedBy("alice"))
	assert.False(t, p.OwnedBy("bob"))
	assert.False(t, p.OwnedBy(""))
}

func TestResultConstructors(t *testing.T) {
	ok := Success("Operation Successful")
	require.Equal(t, OutcomeSuccess, ok.Outcome)
	assert.Empty(t, ok.Diagnostic)
	assert.Empty(t, ok.CreationID)

	created := Created("Operation Successful", "some-id")
	assert.Equal(t, OutcomeSuccess, created.Outcome)
	assert.Equal(t, "some-id", created.CreationID)
	assert.Empty(t, created.Diagnostic)

	denied := Unauthorized("Not Authorized To Update This Property")
	assert.Equal(t, OutcomeUnauthorized, denied.Outcome)
	assert.Empty(t, denied.Diagnostic)

	failed := Failure("Exception Occurred", assert.AnError)
	assert.Equal(t, OutcomeFailure, failed.Outcome)
	assert.Equal(t, assert.AnError.Error(), failed.Diagnostic)
}
