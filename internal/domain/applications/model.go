package applications

import (
	"strings"
	"time"

	"pet-adoption-market/internal/domain/pets"
)

// Kind selects between the two parallel application tables.
type Kind string

const (
	KindAdoption Kind = "adoption"
	KindFoster   Kind = "foster"
)

func ValidKind(k Kind) bool {
	return k == KindAdoption || k == KindFoster
}

// PlacementOutcome is the terminal pet status an approved application of
// this kind produces.
func (k Kind) PlacementOutcome() pets.PlacementStatus {
	if k == KindFoster {
		return pets.PlacementFostered
	}
	return pets.PlacementAdopted
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Application is one user's request to adopt or foster one pet. It is
// created pending and mutated exactly once more, by the decision
// transaction, into a terminal state.
type Application struct {
	ID   string
	Kind Kind

	PetID           string
	ApplicantUserID string

	Status Status

	Address           string
	HouseholdSize     int
	HasOtherPets      bool
	AgreementAccepted bool
	Message           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseCompositeID splits the legacy delete-endpoint id of the form
// "adoption_<id>" or "foster_<id>".
func ParseCompositeID(s string) (Kind, string, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", ErrInvalidInput
	}
	kind := Kind(parts[0])
	if !ValidKind(kind) {
		return "", "", ErrInvalidInput
	}
	return kind, parts[1], nil
}
