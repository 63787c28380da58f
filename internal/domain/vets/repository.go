package vets

import "context"

// Repository persists vet profiles and their credential records.
// Implementations return the sentinel errors declared in service.go.
type Repository interface {
	Create(ctx context.Context, v Vet) error
	Update(ctx context.Context, v Vet) error
	GetByID(ctx context.Context, id string) (Vet, error)
	GetByUserID(ctx context.Context, userID string) (Vet, error)
	ListPendingReview(ctx context.Context) ([]Vet, error)

	// AddCredentials stores the qualification/specialization/schedule rows
	// and the vet's state move in one write.
	AddCredentials(ctx context.Context, v Vet, qs []Qualification, sps []Specialization, slots []ScheduleSlot) error

	GetQualification(ctx context.Context, id string) (Qualification, error)
	ListQualifications(ctx context.Context, vetID string) ([]Qualification, error)
	ListSpecializations(ctx context.Context, vetID string) ([]Specialization, error)
	ListScheduleSlots(ctx context.Context, vetID string) ([]ScheduleSlot, error)

	// AddDocument stores the document row and the vet's state move together.
	AddDocument(ctx context.Context, v Vet, d ProofDocument) error
	ListDocuments(ctx context.Context, vetID string) ([]ProofDocument, error)

	// Verify marks the vet verified and promotes the owning user's role to
	// vet atomically (one transaction in the Postgres store). The write is
	// conditional on status pending_review.
	Verify(ctx context.Context, v Vet) error
}
