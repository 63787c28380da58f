package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)

	// ListAvailable returns listed pets still available for placement,
	// newest first. listingType filters by adoption/foster; empty means both.
	ListAvailable(ctx context.Context, listingType ListingType) ([]Pet, error)
}
