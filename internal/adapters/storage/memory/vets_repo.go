package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-adoption-market/internal/domain/vets"
)

type VetsRepo struct {
	mu        sync.RWMutex
	byID      map[string]vets.Vet
	quals     map[string]vets.Qualification
	specs     map[string]vets.Specialization
	slots     map[string]vets.ScheduleSlot
	documents map[string]vets.ProofDocument
	users     *UserRepo
}

func NewVetsRepo(users *UserRepo) *VetsRepo {
	return &VetsRepo{
		byID:      make(map[string]vets.Vet),
		quals:     make(map[string]vets.Qualification),
		specs:     make(map[string]vets.Specialization),
		slots:     make(map[string]vets.ScheduleSlot),
		documents: make(map[string]vets.ProofDocument),
		users:     users,
	}
}

func (r *VetsRepo) Create(ctx context.Context, v vets.Vet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.ID == "" {
		return errors.New("vet id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("vet already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Vet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vets.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Vet{}, vets.ErrNotFound
	}
	return v, nil
}

func (r *VetsRepo) GetByUserID(ctx context.Context, userID string) (vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.UserID == userID {
			return v, nil
		}
	}
	return vets.Vet{}, vets.ErrNotFound
}

func (r *VetsRepo) ListPendingReview(ctx context.Context) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0)
	for _, v := range r.byID {
		if v.Status == vets.StatusPendingReview {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *VetsRepo) AddCredentials(ctx context.Context, v vets.Vet, qs []vets.Qualification, sps []vets.Specialization, slots []vets.ScheduleSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vets.ErrNotFound
	}
	for _, q := range qs {
		r.quals[q.ID] = q
	}
	for _, sp := range sps {
		r.specs[sp.ID] = sp
	}
	for _, sl := range slots {
		r.slots[sl.ID] = sl
	}
	r.byID[v.ID] = v
	return nil
}

func (r *VetsRepo) GetQualification(ctx context.Context, id string) (vets.Qualification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quals[id]
	if !ok {
		return vets.Qualification{}, vets.ErrNotFound
	}
	return q, nil
}

func (r *VetsRepo) ListQualifications(ctx context.Context, vetID string) ([]vets.Qualification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Qualification, 0)
	for _, q := range r.quals {
		if q.VetID == vetID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year > out[j].Year
	})
	return out, nil
}

func (r *VetsRepo) ListSpecializations(ctx context.Context, vetID string) ([]vets.Specialization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Specialization, 0)
	for _, sp := range r.specs {
		if sp.VetID == vetID {
			out = append(out, sp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *VetsRepo) ListScheduleSlots(ctx context.Context, vetID string) ([]vets.ScheduleSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.ScheduleSlot, 0)
	for _, sl := range r.slots {
		if sl.VetID == vetID {
			out = append(out, sl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weekday != out[j].Weekday {
			return out[i].Weekday < out[j].Weekday
		}
		return out[i].Start < out[j].Start
	})
	return out, nil
}

func (r *VetsRepo) AddDocument(ctx context.Context, v vets.Vet, d vets.ProofDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vets.ErrNotFound
	}
	r.documents[d.ID] = d
	r.byID[v.ID] = v
	return nil
}

func (r *VetsRepo) ListDocuments(ctx context.Context, vetID string) ([]vets.ProofDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.ProofDocument, 0)
	for _, d := range r.documents {
		if d.VetID == vetID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *VetsRepo) Verify(ctx context.Context, v vets.Vet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[v.ID]
	if !exists {
		return vets.ErrNotFound
	}
	if current.Status != vets.StatusPendingReview {
		return vets.ErrBadState
	}

	r.byID[v.ID] = v
	r.users.promoteToVet(v.UserID)
	return nil
}
