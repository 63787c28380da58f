package vets

import "time"

// Status is the verification pipeline state. Transitions are enforced by
// the service; out-of-order calls are refused instead of silently accepted.
//
//	draft -> qualifications_submitted -> documents_submitted -> pending_review
//	pending_review -> verified | declined
type Status string

const (
	StatusDraft                   Status = "draft"
	StatusQualificationsSubmitted Status = "qualifications_submitted"
	StatusDocumentsSubmitted      Status = "documents_submitted"
	StatusPendingReview           Status = "pending_review"
	StatusVerified                Status = "verified"
	StatusDeclined                Status = "declined"
)

// Vet is a verification profile attached to an existing user.
type Vet struct {
	ID     string
	UserID string

	ClinicName string
	Bio        string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
	DecidedAt *time.Time
}

type Qualification struct {
	ID          string
	VetID       string
	Title       string
	Institution string
	Year        int
}

type Specialization struct {
	ID    string
	VetID string
	Name  string
}

// ScheduleSlot is one weekly availability window. Times are "HH:MM".
type ScheduleSlot struct {
	ID      string
	VetID   string
	Weekday time.Weekday
	Start   string
	End     string
}

// ProofDocument records one uploaded credential image for a qualification.
type ProofDocument struct {
	ID              string
	VetID           string
	QualificationID string

	ObjectKey   string
	URL         string
	ContentType string

	CreatedAt time.Time
}
