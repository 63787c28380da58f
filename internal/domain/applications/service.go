package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrBadState: the target application already reached a terminal state.
	ErrBadState = errors.New("application already decided")

	// ErrConflict: the pet was placed by a concurrent approval; the losing
	// transaction writes nothing.
	ErrConflict = errors.New("pet no longer available")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SubmitInput struct {
	PetID           string
	ApplicantUserID string

	Address           string
	HouseholdSize     int
	HasOtherPets      bool
	AgreementAccepted bool
	Message           string
}

// Submit creates a new application. Status is always pending here no matter
// what the caller sent over the wire; duplicates (same applicant, same pet)
// are allowed.
func (s *Service) Submit(ctx context.Context, kind Kind, in SubmitInput) (Application, error) {
	if !ValidKind(kind) {
		return Application{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.PetID) == "" {
		return Application{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ApplicantUserID) == "" {
		return Application{}, ErrInvalidInput
	}

	now := s.now()
	a := Application{
		ID:                uuid.NewString(),
		Kind:              kind,
		PetID:             strings.TrimSpace(in.PetID),
		ApplicantUserID:   strings.TrimSpace(in.ApplicantUserID),
		Status:            StatusPending,
		Address:           strings.TrimSpace(in.Address),
		HouseholdSize:     in.HouseholdSize,
		HasOtherPets:      in.HasOtherPets,
		AgreementAccepted: in.AgreementAccepted,
		Message:           strings.TrimSpace(in.Message),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, kind Kind, id string) (Application, error) {
	id = strings.TrimSpace(id)
	if !ValidKind(kind) || id == "" {
		return Application{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, kind, id)
}

func (s *Service) ListPendingForPet(ctx context.Context, kind Kind, petID string) ([]Application, error) {
	petID = strings.TrimSpace(petID)
	if !ValidKind(kind) || petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListPendingForPet(ctx, kind, petID)
}

// Delete removes an application by the legacy composite id
// ("adoption_<id>" / "foster_<id>") and returns the deleted row.
func (s *Service) Delete(ctx context.Context, compositeID string) (Application, error) {
	kind, id, err := ParseCompositeID(compositeID)
	if err != nil {
		return Application{}, err
	}
	return s.repo.Delete(ctx, kind, id)
}

// Decide moves a pending application to a terminal state. Approval runs the
// three-statement transaction in the repository; rejection is a single
// unconditional update of the target row.
func (s *Service) Decide(ctx context.Context, kind Kind, id string, decision Decision) (Application, error) {
	id = strings.TrimSpace(id)
	if !ValidKind(kind) || id == "" {
		return Application{}, ErrInvalidInput
	}

	switch decision {
	case DecisionApprove:
		return s.repo.Approve(ctx, kind, id)
	case DecisionReject:
		return s.repo.Reject(ctx, kind, id)
	default:
		return Application{}, ErrInvalidInput
	}
}
