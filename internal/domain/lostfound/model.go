package lostfound

import "time"

// Kind says whether the reporter lost a pet or found one.
type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

func ValidKind(k Kind) bool {
	return k == KindLost || k == KindFound
}

type Status string

const (
	StatusOpen     Status = "open"
	StatusReunited Status = "reunited"
)

// Report is one entry on the lost-and-found board.
type Report struct {
	ID             string
	ReporterUserID string

	Kind Kind

	PetName      string
	Species      string
	Description  string
	LastSeenCity string
	PhotoURL     string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}
