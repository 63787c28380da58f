package applications

import "context"

// Repository persists applications and runs the decision transition.
// Implementations return the sentinel errors declared in service.go:
// ErrNotFound for absent rows, ErrBadState for a target application that is
// no longer pending, ErrConflict when the pet was already placed by another
// approval.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, kind Kind, id string) (Application, error)

	// ListPendingForPet returns pending applications for the pet, newest
	// first. An empty slice is a normal outcome, not an error.
	ListPendingForPet(ctx context.Context, kind Kind, petID string) ([]Application, error)

	// Delete removes the row unconditionally and returns it.
	Delete(ctx context.Context, kind Kind, id string) (Application, error)

	// Approve atomically: flips the target pending application to approved,
	// places the pet (kind-terminal status, only while still available), and
	// rejects every sibling application of the same kind for the same pet.
	// All three writes commit together or not at all.
	Approve(ctx context.Context, kind Kind, id string) (Application, error)

	// Reject flips only the target application to rejected. No side effects
	// on the pet or sibling applications, and no pending precondition.
	Reject(ctx context.Context, kind Kind, id string) (Application, error)
}
