package vets

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"pet-adoption-market/internal/ports/objectstore"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrExists       = errors.New("vet profile already exists")

	// ErrBadState: the endpoint was called out of pipeline order.
	ErrBadState = errors.New("invalid state for this step")
)

type Service struct {
	repo      Repository
	presigner objectstore.Presigner
	now       func() time.Time
}

func NewService(repo Repository, presigner objectstore.Presigner) *Service {
	return &Service{
		repo:      repo,
		presigner: presigner,
		now:       time.Now,
	}
}

type RegisterInput struct {
	ClinicName string
	Bio        string
}

// Register opens a draft verification profile for an existing user. One
// profile per user.
func (s *Service) Register(ctx context.Context, userID string, in RegisterInput) (Vet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Vet{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return Vet{}, ErrExists
	}

	now := s.now()
	v := Vet{
		ID:         uuid.NewString(),
		UserID:     userID,
		ClinicName: strings.TrimSpace(in.ClinicName),
		Bio:        strings.TrimSpace(in.Bio),
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vet{}, err
	}
	return v, nil
}

type QualificationInput struct {
	Title       string
	Institution string
	Year        int
}

type ScheduleSlotInput struct {
	Weekday int
	Start   string
	End     string
}

type CredentialsInput struct {
	Qualifications  []QualificationInput
	Specializations []string
	Schedule        []ScheduleSlotInput
}

// SubmitCredentials attaches qualifications, specializations and the weekly
// schedule in one step. Only allowed from draft; moves the vet to
// qualifications_submitted.
func (s *Service) SubmitCredentials(ctx context.Context, vetID string, in CredentialsInput) (Vet, error) {
	v, err := s.getVet(ctx, vetID)
	if err != nil {
		return Vet{}, err
	}
	if v.Status != StatusDraft {
		return Vet{}, ErrBadState
	}
	if len(in.Qualifications) == 0 {
		return Vet{}, ErrInvalidInput
	}

	qs := make([]Qualification, 0, len(in.Qualifications))
	for _, q := range in.Qualifications {
		title := strings.TrimSpace(q.Title)
		if title == "" || q.Year < 1900 || q.Year > s.now().Year() {
			return Vet{}, ErrInvalidInput
		}
		qs = append(qs, Qualification{
			ID:          uuid.NewString(),
			VetID:       v.ID,
			Title:       title,
			Institution: strings.TrimSpace(q.Institution),
			Year:        q.Year,
		})
	}

	sps := make([]Specialization, 0, len(in.Specializations))
	for _, name := range in.Specializations {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		sps = append(sps, Specialization{
			ID:    uuid.NewString(),
			VetID: v.ID,
			Name:  name,
		})
	}

	slots := make([]ScheduleSlot, 0, len(in.Schedule))
	for _, sl := range in.Schedule {
		if sl.Weekday < 0 || sl.Weekday > 6 || !validClock(sl.Start) || !validClock(sl.End) || sl.Start >= sl.End {
			return Vet{}, ErrInvalidInput
		}
		slots = append(slots, ScheduleSlot{
			ID:      uuid.NewString(),
			VetID:   v.ID,
			Weekday: time.Weekday(sl.Weekday),
			Start:   sl.Start,
			End:     sl.End,
		})
	}

	v.Status = StatusQualificationsSubmitted
	v.UpdatedAt = s.now()

	if err := s.repo.AddCredentials(ctx, v, qs, sps, slots); err != nil {
		return Vet{}, err
	}
	return v, nil
}

type DocumentUpload struct {
	Document ProofDocument
	Upload   objectstore.PresignedUpload
}

// AddProofDocument issues a presigned upload for one credential image and
// records the document row. Allowed while credentials are submitted but the
// profile is not yet under review; moves the vet to documents_submitted.
func (s *Service) AddProofDocument(ctx context.Context, vetID, qualificationID, filename, contentType string) (DocumentUpload, error) {
	v, err := s.getVet(ctx, vetID)
	if err != nil {
		return DocumentUpload{}, err
	}
	if v.Status != StatusQualificationsSubmitted && v.Status != StatusDocumentsSubmitted {
		return DocumentUpload{}, ErrBadState
	}

	qualificationID = strings.TrimSpace(qualificationID)
	if qualificationID == "" || strings.TrimSpace(contentType) == "" {
		return DocumentUpload{}, ErrInvalidInput
	}

	q, err := s.repo.GetQualification(ctx, qualificationID)
	if err != nil {
		return DocumentUpload{}, ErrNotFound
	}
	if q.VetID != v.ID {
		return DocumentUpload{}, ErrNotFound
	}

	docID := uuid.NewString()
	key := fmt.Sprintf("vets/%s/%s/%s%s", v.ID, q.ID, docID, path.Ext(filename))

	upload, err := s.presigner.PresignPut(ctx, key, contentType)
	if err != nil {
		return DocumentUpload{}, err
	}

	d := ProofDocument{
		ID:              docID,
		VetID:           v.ID,
		QualificationID: q.ID,
		ObjectKey:       key,
		URL:             s.presigner.PublicURL(key),
		ContentType:     strings.TrimSpace(contentType),
		CreatedAt:       s.now(),
	}

	v.Status = StatusDocumentsSubmitted
	v.UpdatedAt = s.now()

	if err := s.repo.AddDocument(ctx, v, d); err != nil {
		return DocumentUpload{}, err
	}

	return DocumentUpload{Document: d, Upload: upload}, nil
}

// SubmitForReview hands the profile to the admins.
func (s *Service) SubmitForReview(ctx context.Context, vetID string) (Vet, error) {
	v, err := s.getVet(ctx, vetID)
	if err != nil {
		return Vet{}, err
	}
	if v.Status != StatusDocumentsSubmitted {
		return Vet{}, ErrBadState
	}

	v.Status = StatusPendingReview
	v.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, v); err != nil {
		return Vet{}, err
	}
	return v, nil
}

// Verify approves a pending profile and promotes the user's role to vet in
// the same store transaction. Idempotent for an already verified vet.
func (s *Service) Verify(ctx context.Context, vetID string) (Vet, error) {
	v, err := s.getVet(ctx, vetID)
	if err != nil {
		return Vet{}, err
	}
	if v.Status == StatusVerified {
		return v, nil
	}
	if v.Status != StatusPendingReview {
		return Vet{}, ErrBadState
	}

	now := s.now()
	v.Status = StatusVerified
	v.UpdatedAt = now
	v.DecidedAt = &now

	if err := s.repo.Verify(ctx, v); err != nil {
		return Vet{}, err
	}
	return v, nil
}

// Decline refuses a pending profile. Idempotent for an already declined vet.
func (s *Service) Decline(ctx context.Context, vetID string) (Vet, error) {
	v, err := s.getVet(ctx, vetID)
	if err != nil {
		return Vet{}, err
	}
	if v.Status == StatusDeclined {
		return v, nil
	}
	if v.Status != StatusPendingReview {
		return Vet{}, ErrBadState
	}

	now := s.now()
	v.Status = StatusDeclined
	v.UpdatedAt = now
	v.DecidedAt = &now

	if err := s.repo.Update(ctx, v); err != nil {
		return Vet{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Vet, error) {
	return s.getVet(ctx, id)
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (Vet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Vet{}, ErrInvalidInput
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) ListPendingReview(ctx context.Context) ([]Vet, error) {
	return s.repo.ListPendingReview(ctx)
}

func (s *Service) ListQualifications(ctx context.Context, vetID string) ([]Qualification, error) {
	return s.repo.ListQualifications(ctx, strings.TrimSpace(vetID))
}

func (s *Service) ListDocuments(ctx context.Context, vetID string) ([]ProofDocument, error) {
	return s.repo.ListDocuments(ctx, strings.TrimSpace(vetID))
}

func (s *Service) getVet(ctx context.Context, id string) (Vet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
