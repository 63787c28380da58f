package applications

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testKey struct {
	kind Kind
	id   string
}

type testRepo struct {
	byID map[testKey]Application

	// placed maps pet id to its terminal status once an approval lands.
	placed map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:   map[testKey]Application{},
		placed: map[string]string{},
	}
}

func (r *testRepo) Create(ctx context.Context, a Application) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	k := testKey{kind: a.Kind, id: a.ID}
	if _, ok := r.byID[k]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[k] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, kind Kind, id string) (Application, error) {
	a, ok := r.byID[testKey{kind: kind, id: id}]
	if !ok {
		return Application{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListPendingForPet(ctx context.Context, kind Kind, petID string) ([]Application, error) {
	out := make([]Application, 0)
	for k, a := range r.byID {
		if k.kind == kind && a.PetID == petID && a.Status == StatusPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, kind Kind, id string) (Application, error) {
	k := testKey{kind: kind, id: id}
	a, ok := r.byID[k]
	if !ok {
		return Application{}, ErrNotFound
	}
	delete(r.byID, k)
	return a, nil
}

func (r *testRepo) Approve(ctx context.Context, kind Kind, id string) (Application, error) {
	k := testKey{kind: kind, id: id}
	target, ok := r.byID[k]
	if !ok {
		return Application{}, ErrNotFound
	}
	if target.Status != StatusPending {
		return Application{}, ErrBadState
	}
	if _, taken := r.placed[target.PetID]; taken {
		return Application{}, ErrConflict
	}

	r.placed[target.PetID] = string(kind.PlacementOutcome())
	target.Status = StatusApproved
	r.byID[k] = target

	for sk, sibling := range r.byID {
		if sk.kind != kind || sk.id == id || sibling.PetID != target.PetID {
			continue
		}
		sibling.Status = StatusRejected
		r.byID[sk] = sibling
	}
	return target, nil
}

func (r *testRepo) Reject(ctx context.Context, kind Kind, id string) (Application, error) {
	k := testKey{kind: kind, id: id}
	a, ok := r.byID[k]
	if !ok {
		return Application{}, ErrNotFound
	}
	a.Status = StatusRejected
	r.byID[k] = a
	return a, nil
}

// -------------------------
// Tests
// -------------------------

func submitPending(t *testing.T, svc *Service, kind Kind, petID, userID string) Application {
	t.Helper()

	a, err := svc.Submit(context.Background(), kind, SubmitInput{
		PetID:             petID,
		ApplicantUserID:   userID,
		Address:           "123 Main St",
		HouseholdSize:     2,
		AgreementAccepted: true,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	return a
}

func TestService_Submit_AlwaysStartsPending(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Submit(context.Background(), KindAdoption, SubmitInput{
		PetID:           "pet-1",
		ApplicantUserID: "user-1",
		Message:         "  we have a garden  ",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if a.Status != StatusPending {
		t.Fatalf("expected pending, got %s", a.Status)
	}
	if a.CreatedAt != now || a.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if a.Message != "we have a garden" {
		t.Fatalf("expected trimmed message, got %q", a.Message)
	}
	if a.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestService_Submit_RejectsMissingFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name string
		kind Kind
		in   SubmitInput
	}{
		{"bad kind", Kind("rehome"), SubmitInput{PetID: "pet-1", ApplicantUserID: "user-1"}},
		{"no pet", KindAdoption, SubmitInput{ApplicantUserID: "user-1"}},
		{"no applicant", KindFoster, SubmitInput{PetID: "pet-1"}},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(context.Background(), tc.kind, tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestService_Submit_AllowsDuplicates(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a1 := submitPending(t, svc, KindAdoption, "pet-1", "user-1")
	a2 := submitPending(t, svc, KindAdoption, "pet-1", "user-1")

	if a1.ID == a2.ID {
		t.Fatalf("expected distinct applications for repeat submit")
	}
	if len(repo.byID) != 2 {
		t.Fatalf("expected 2 stored applications, got %d", len(repo.byID))
	}
}

func TestService_Decide_Approve_RejectsSiblings(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a1 := submitPending(t, svc, KindAdoption, "pet-1", "user-1")
	a2 := submitPending(t, svc, KindAdoption, "pet-1", "user-2")
	a3 := submitPending(t, svc, KindAdoption, "pet-1", "user-3")
	other := submitPending(t, svc, KindAdoption, "pet-2", "user-4")

	got, err := svc.Decide(context.Background(), KindAdoption, a2.ID, DecisionApprove)
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if got.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", got.Status)
	}

	for _, id := range []string{a1.ID, a3.ID} {
		s, _ := repo.GetByID(context.Background(), KindAdoption, id)
		if s.Status != StatusRejected {
			t.Fatalf("expected sibling %s rejected, got %s", id, s.Status)
		}
	}

	// A different pet's application is untouched.
	o, _ := repo.GetByID(context.Background(), KindAdoption, other.ID)
	if o.Status != StatusPending {
		t.Fatalf("expected unrelated application to stay pending, got %s", o.Status)
	}

	if repo.placed["pet-1"] != "adopted" {
		t.Fatalf("expected pet-1 adopted, got %q", repo.placed["pet-1"])
	}
}

func TestService_Decide_ApproveFoster_MarksFostered(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := submitPending(t, svc, KindFoster, "pet-1", "user-1")

	if _, err := svc.Decide(context.Background(), KindFoster, a.ID, DecisionApprove); err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if repo.placed["pet-1"] != "fostered" {
		t.Fatalf("expected pet-1 fostered, got %q", repo.placed["pet-1"])
	}
}

func TestService_Decide_Reject_TouchesOnlyTarget(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a1 := submitPending(t, svc, KindAdoption, "pet-1", "user-1")
	a2 := submitPending(t, svc, KindAdoption, "pet-1", "user-2")

	got, err := svc.Decide(context.Background(), KindAdoption, a1.ID, DecisionReject)
	if err != nil {
		t.Fatalf("Decide returned error: %v", err)
	}
	if got.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", got.Status)
	}

	s, _ := repo.GetByID(context.Background(), KindAdoption, a2.ID)
	if s.Status != StatusPending {
		t.Fatalf("expected sibling to stay pending, got %s", s.Status)
	}
	if len(repo.placed) != 0 {
		t.Fatalf("expected no placement on reject, got %#v", repo.placed)
	}
}

func TestService_Decide_UnknownApplication(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Decide(context.Background(), KindAdoption, "missing", DecisionApprove)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Decide_SecondApprovalConflicts(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	adopt := submitPending(t, svc, KindAdoption, "pet-1", "user-1")
	foster := submitPending(t, svc, KindFoster, "pet-1", "user-2")

	if _, err := svc.Decide(context.Background(), KindAdoption, adopt.ID, DecisionApprove); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	// The foster application is still pending (the cascade is per kind),
	// but the pet was already placed.
	_, err := svc.Decide(context.Background(), KindFoster, foster.ID, DecisionApprove)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	f, _ := repo.GetByID(context.Background(), KindFoster, foster.ID)
	if f.Status != StatusPending {
		t.Fatalf("losing application must stay pending, got %s", f.Status)
	}
}

func TestService_Decide_AlreadyDecided(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := submitPending(t, svc, KindAdoption, "pet-1", "user-1")
	if _, err := svc.Decide(context.Background(), KindAdoption, a.ID, DecisionReject); err != nil {
		t.Fatalf("reject: %v", err)
	}

	_, err := svc.Decide(context.Background(), KindAdoption, a.ID, DecisionApprove)
	if !errors.Is(err, ErrBadState) {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}

func TestService_Delete_CompositeID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a := submitPending(t, svc, KindFoster, "pet-1", "user-1")

	got, err := svc.Delete(context.Background(), "foster_"+a.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("expected deleted row back, got %s", got.ID)
	}
	if _, err := repo.GetByID(context.Background(), KindFoster, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}
}

func TestService_Delete_BadCompositeID(t *testing.T) {
	svc := NewService(newTestRepo())

	for _, id := range []string{"", "adoption", "rehome_abc", "adoption_", "_abc"} {
		if _, err := svc.Delete(context.Background(), id); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%q: expected ErrInvalidInput, got %v", id, err)
		}
	}
}

func TestParseCompositeID(t *testing.T) {
	kind, id, err := ParseCompositeID("adoption_abc-123")
	if err != nil {
		t.Fatalf("ParseCompositeID returned error: %v", err)
	}
	if kind != KindAdoption || id != "abc-123" {
		t.Fatalf("got kind=%s id=%s", kind, id)
	}

	// Only the first underscore splits; ids may contain more.
	kind, id, err = ParseCompositeID("foster_a_b_c")
	if err != nil {
		t.Fatalf("ParseCompositeID returned error: %v", err)
	}
	if kind != KindFoster || id != "a_b_c" {
		t.Fatalf("got kind=%s id=%s", kind, id)
	}
}
