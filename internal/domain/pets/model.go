package pets

import "time"

// Species define the species accepted on the marketplace.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Sex of the pet.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ListingType says what the owner is offering: permanent adoption or
// temporary fostering.
type ListingType string

const (
	ListingAdoption ListingType = "adoption"
	ListingFoster   ListingType = "foster"
)

// PlacementStatus records the placement outcome of the pet. It is
// independent from Listed: Listed gates marketplace visibility, placement
// records where the pet ended up. No single operation mutates both.
type PlacementStatus string

const (
	PlacementAvailable PlacementStatus = "available"
	PlacementAdopted   PlacementStatus = "adopted"
	PlacementFostered  PlacementStatus = "fostered"
)

func ValidListingType(t ListingType) bool {
	return t == ListingAdoption || t == ListingFoster
}

// Pet is one listing on the marketplace.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex

	BirthDate   *time.Time
	Description string

	ListingType     ListingType
	PlacementStatus PlacementStatus

	// Listed is the admin visibility gate for the public catalog.
	Listed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
