package lostfound

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
	Kind         string
	PetName      string
	Species      string
	Description  string
	LastSeenCity string
	PhotoURL     string
}

func (s *Service) Create(ctx context.Context, reporterUserID string, in CreateInput) (Report, error) {
	reporterUserID = strings.TrimSpace(reporterUserID)
	if reporterUserID == "" {
		return Report{}, ErrInvalidInput
	}
	kind := Kind(strings.TrimSpace(in.Kind))
	if !ValidKind(kind) {
		return Report{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" && strings.TrimSpace(in.PetName) == "" {
		return Report{}, ErrInvalidInput
	}

	now := s.now()
	rep := Report{
		ID:             uuid.NewString(),
		ReporterUserID: reporterUserID,
		Kind:           kind,
		PetName:        strings.TrimSpace(in.PetName),
		Species:        strings.TrimSpace(in.Species),
		Description:    strings.TrimSpace(in.Description),
		LastSeenCity:   strings.TrimSpace(in.LastSeenCity),
		PhotoURL:       strings.TrimSpace(in.PhotoURL),
		Status:         StatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListOpen(ctx context.Context, kind string) ([]Report, error) {
	k := Kind(strings.TrimSpace(kind))
	if k != "" && !ValidKind(k) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListOpen(ctx, k)
}

// MarkReunited closes a report. Reporter only; idempotent.
func (s *Service) MarkReunited(ctx context.Context, id, reporterUserID string) (Report, error) {
	id = strings.TrimSpace(id)
	reporterUserID = strings.TrimSpace(reporterUserID)
	if id == "" || reporterUserID == "" {
		return Report{}, ErrInvalidInput
	}

	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if rep.ReporterUserID != reporterUserID {
		return Report{}, ErrForbidden
	}
	if rep.Status == StatusReunited {
		return rep, nil
	}

	rep.Status = StatusReunited
	rep.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}
