package pets

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
	ErrForbidden    = errors.New("forbidden")
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

type CreateInput struct {
	Name        string
	Species     string
	Breed       string
	Sex         string
	BirthDate   *time.Time
	Description string
	ListingType string
}

// Create registers a new listing. Placement starts as available and the
// listing stays hidden from the catalog until an admin lists it.
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	lt := ListingType(strings.TrimSpace(in.ListingType))
	if !ValidListingType(lt) {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:              uuid.NewString(),
		OwnerUserID:     ownerUserID,
		Name:            strings.TrimSpace(in.Name),
		Species:         Species(strings.TrimSpace(in.Species)),
		Breed:           strings.TrimSpace(in.Breed),
		Sex:             Sex(strings.TrimSpace(in.Sex)),
		BirthDate:       in.BirthDate,
		Description:     strings.TrimSpace(in.Description),
		ListingType:     lt,
		PlacementStatus: PlacementAvailable,
		Listed:          false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ListAvailable(ctx context.Context, listingType string) ([]Pet, error) {
	lt := ListingType(strings.TrimSpace(listingType))
	if lt != "" && !ValidListingType(lt) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListAvailable(ctx, lt)
}

// SetListed toggles catalog visibility. It must never touch PlacementStatus;
// the two flags are deliberately independent.
func (s *Service) SetListed(ctx context.Context, petID string, listed bool) (Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if p.Listed == listed {
		return p, nil
	}

	p.Listed = listed
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
