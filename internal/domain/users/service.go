package users

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
	ErrEmailTaken   = errors.New("email already registered")
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

type RegisterInput struct {
	Name  string
	Email string
	City  string
}

// Register creates a new account. Everybody starts as a member; the vet role
// is only reachable through the verification workflow.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || !strings.Contains(email, "@") {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	now := s.now()
	u := User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		City:      strings.TrimSpace(in.City),
		Role:      RoleMember,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// PromoteRole is used by vet verification approval; in the Postgres store
// the promotion happens inside the verification transaction and this path
// only serves the in-memory mode.
func (s *Service) PromoteRole(ctx context.Context, userID string, role Role) (User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || !ValidRole(role) {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if u.Role == role {
		return u, nil
	}

	u.Role = role
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}
