package lostfound

import "context"

type Repository interface {
	Create(ctx context.Context, rep Report) error
	Update(ctx context.Context, rep Report) error
	GetByID(ctx context.Context, id string) (Report, error)

	// ListOpen returns open reports, newest first. kind filters by
	// lost/found; empty means both.
	ListOpen(ctx context.Context, kind Kind) ([]Report, error)
}
