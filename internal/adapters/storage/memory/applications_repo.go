package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pet-adoption-market/internal/domain/applications"
)

type appKey struct {
	kind applications.Kind
	id   string
}

// ApplicationsRepo mirrors the Postgres decision semantics in memory: the
// approve path is one critical section, so no interleaving exposes a
// partially decided pet.
type ApplicationsRepo struct {
	mu   sync.RWMutex
	byID map[appKey]applications.Application
	pets *PetRepo
}

func NewApplicationsRepo(pets *PetRepo) *ApplicationsRepo {
	return &ApplicationsRepo{
		byID: make(map[appKey]applications.Application),
		pets: pets,
	}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("application id required")
	}
	k := appKey{kind: a.Kind, id: a.ID}
	if _, exists := r.byID[k]; exists {
		return errors.New("application already exists")
	}
	r.byID[k] = a
	return nil
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[appKey{kind: kind, id: id}]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	return a, nil
}

func (r *ApplicationsRepo) ListPendingForPet(ctx context.Context, kind applications.Kind, petID string) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, 0)
	for k, a := range r.byID {
		if k.kind != kind || a.PetID != petID || a.Status != applications.StatusPending {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ApplicationsRepo) Delete(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := appKey{kind: kind, id: id}
	a, ok := r.byID[k]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	delete(r.byID, k)
	return a, nil
}

func (r *ApplicationsRepo) Approve(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := appKey{kind: kind, id: id}
	target, ok := r.byID[k]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}
	if target.Status != applications.StatusPending {
		return applications.Application{}, applications.ErrBadState
	}

	// Place the pet first: if it is no longer available nothing at all is
	// written, same as the rolled-back SQL transaction.
	if !r.pets.placeIfAvailable(target.PetID, kind.PlacementOutcome()) {
		return applications.Application{}, applications.ErrConflict
	}

	now := time.Now()
	target.Status = applications.StatusApproved
	target.UpdatedAt = now
	r.byID[k] = target

	for sk, sibling := range r.byID {
		if sk.kind != kind || sk.id == id || sibling.PetID != target.PetID {
			continue
		}
		sibling.Status = applications.StatusRejected
		sibling.UpdatedAt = now
		r.byID[sk] = sibling
	}

	return target, nil
}

func (r *ApplicationsRepo) Reject(ctx context.Context, kind applications.Kind, id string) (applications.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := appKey{kind: kind, id: id}
	a, ok := r.byID[k]
	if !ok {
		return applications.Application{}, applications.ErrNotFound
	}

	a.Status = applications.StatusRejected
	a.UpdatedAt = time.Now()
	r.byID[k] = a
	return a, nil
}
