package users

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byID    map[string]User
	byEmail map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:    map[string]User{},
		byEmail: map[string]string{},
	}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func TestService_Register_StartsAsMember(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:  "Ana",
		Email: "  ANA@Example.com ",
		City:  "Lima",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.Role != RoleMember {
		t.Fatalf("expected member, got %s", u.Role)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Other", Email: "Ana@Example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Register_RejectsBadEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	for _, email := range []string{"", "   ", "not-an-email"} {
		if _, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: email}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", email, err)
		}
	}
}

func TestService_PromoteRole(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	promoted, err := svc.PromoteRole(context.Background(), u.ID, RoleVet)
	if err != nil {
		t.Fatalf("PromoteRole returned error: %v", err)
	}
	if promoted.Role != RoleVet {
		t.Fatalf("expected vet, got %s", promoted.Role)
	}

	if _, err := svc.PromoteRole(context.Background(), u.ID, Role("boss")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}
