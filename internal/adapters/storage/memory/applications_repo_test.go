package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-adoption-market/internal/domain/applications"
	"pet-adoption-market/internal/domain/pets"
)

func seedPet(t *testing.T, repo *PetRepo, id string) {
	t.Helper()

	err := repo.Create(context.Background(), pets.Pet{
		ID:              id,
		OwnerUserID:     "owner-1",
		Name:            "Milo",
		Species:         pets.SpeciesDog,
		ListingType:     pets.ListingAdoption,
		PlacementStatus: pets.PlacementAvailable,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}
}

func seedApp(t *testing.T, repo *ApplicationsRepo, kind applications.Kind, id, petID, userID string) {
	t.Helper()

	err := repo.Create(context.Background(), applications.Application{
		ID:              id,
		Kind:            kind,
		PetID:           petID,
		ApplicantUserID: userID,
		Status:          applications.StatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	})
	if err != nil {
		t.Fatalf("seed application: %v", err)
	}
}

func TestApplicationsRepo_Approve_PlacesPetAndRejectsSiblings(t *testing.T) {
	petRepo := NewPetRepo()
	repo := NewApplicationsRepo(petRepo)

	seedPet(t, petRepo, "pet-1")
	seedApp(t, repo, applications.KindAdoption, "a1", "pet-1", "user-1")
	seedApp(t, repo, applications.KindAdoption, "a2", "pet-1", "user-2")
	seedApp(t, repo, applications.KindAdoption, "a3", "pet-1", "user-3")

	got, err := repo.Approve(context.Background(), applications.KindAdoption, "a2")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if got.Status != applications.StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}

	p, err := petRepo.GetByID(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	if p.PlacementStatus != pets.PlacementAdopted {
		t.Fatalf("expected adopted, got %s", p.PlacementStatus)
	}

	for _, id := range []string{"a1", "a3"} {
		a, err := repo.GetByID(context.Background(), applications.KindAdoption, id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if a.Status != applications.StatusRejected {
			t.Fatalf("expected %s rejected, got %s", id, a.Status)
		}
	}
}

func TestApplicationsRepo_Approve_FosterOutcome(t *testing.T) {
	petRepo := NewPetRepo()
	repo := NewApplicationsRepo(petRepo)

	seedPet(t, petRepo, "pet-1")
	seedApp(t, repo, applications.KindFoster, "f1", "pet-1", "user-1")

	if _, err := repo.Approve(context.Background(), applications.KindFoster, "f1"); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	p, _ := petRepo.GetByID(context.Background(), "pet-1")
	if p.PlacementStatus != pets.PlacementFostered {
		t.Fatalf("expected fostered, got %s", p.PlacementStatus)
	}
}

func TestApplicationsRepo_Approve_PetAlreadyPlaced_WritesNothing(t *testing.T) {
	petRepo := NewPetRepo()
	repo := NewApplicationsRepo(petRepo)

	seedPet(t, petRepo, "pet-1")
	seedApp(t, repo, applications.KindAdoption, "a1", "pet-1", "user-1")
	seedApp(t, repo, applications.KindFoster, "f1", "pet-1", "user-2")

	if _, err := repo.Approve(context.Background(), applications.KindAdoption, "a1"); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	_, err := repo.Approve(context.Background(), applications.KindFoster, "f1")
	if !errors.Is(err, applications.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The losing application is untouched.
	f, _ := repo.GetByID(context.Background(), applications.KindFoster, "f1")
	if f.Status != applications.StatusPending {
		t.Fatalf("expected pending after lost race, got %s", f.Status)
	}

	p, _ := petRepo.GetByID(context.Background(), "pet-1")
	if p.PlacementStatus != pets.PlacementAdopted {
		t.Fatalf("expected placement to keep first outcome, got %s", p.PlacementStatus)
	}
}

func TestApplicationsRepo_Approve_MissingAndDecided(t *testing.T) {
	petRepo := NewPetRepo()
	repo := NewApplicationsRepo(petRepo)

	seedPet(t, petRepo, "pet-1")
	seedApp(t, repo, applications.KindAdoption, "a1", "pet-1", "user-1")

	if _, err := repo.Approve(context.Background(), applications.KindAdoption, "nope"); !errors.Is(err, applications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := repo.Reject(context.Background(), applications.KindAdoption, "a1"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := repo.Approve(context.Background(), applications.KindAdoption, "a1"); !errors.Is(err, applications.ErrBadState) {
		t.Fatalf("expected ErrBadState, got %v", err)
	}

	// Rejecting a1 must not have placed the pet.
	p, _ := petRepo.GetByID(context.Background(), "pet-1")
	if p.PlacementStatus != pets.PlacementAvailable {
		t.Fatalf("expected available, got %s", p.PlacementStatus)
	}
}

func TestApplicationsRepo_Approve_ConcurrentSingleWinner(t *testing.T) {
	petRepo := NewPetRepo()
	repo := NewApplicationsRepo(petRepo)

	seedPet(t, petRepo, "pet-1")

	const n = 16
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a'+i)) + "-app"
		seedApp(t, repo, applications.KindAdoption, ids[i], "pet-1", "user-"+ids[i])
	}

	var wg sync.WaitGroup
	results := make(chan error, n)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := repo.Approve(context.Background(), applications.KindAdoption, id)
			results <- err
		}(id)
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, applications.ErrConflict), errors.Is(err, applications.ErrBadState):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning approval, got %d", wins)
	}

	approved := 0
	for _, id := range ids {
		a, _ := repo.GetByID(context.Background(), applications.KindAdoption, id)
		if a.Status == applications.StatusApproved {
			approved++
		}
		if a.Status == applications.StatusPending {
			t.Fatalf("no application may stay pending after the race, %s did", id)
		}
	}
	if approved != 1 {
		t.Fatalf("expected exactly one approved row, got %d", approved)
	}
}

func TestApplicationsRepo_ListPendingForPet_FiltersDecided(t *testing.T) {
	petRepo := NewPetRepo()
	repo := NewApplicationsRepo(petRepo)

	seedPet(t, petRepo, "pet-1")
	seedApp(t, repo, applications.KindAdoption, "a1", "pet-1", "user-1")
	seedApp(t, repo, applications.KindAdoption, "a2", "pet-1", "user-2")
	seedApp(t, repo, applications.KindFoster, "f1", "pet-1", "user-3")

	if _, err := repo.Reject(context.Background(), applications.KindAdoption, "a1"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	out, err := repo.ListPendingForPet(context.Background(), applications.KindAdoption, "pet-1")
	if err != nil {
		t.Fatalf("ListPendingForPet returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a2" {
		t.Fatalf("expected only a2 pending, got %#v", out)
	}
}
