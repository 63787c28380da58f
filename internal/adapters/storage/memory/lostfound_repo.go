package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-adoption-market/internal/domain/lostfound"
)

type LostFoundRepo struct {
	mu   sync.RWMutex
	byID map[string]lostfound.Report
}

func NewLostFoundRepo() *LostFoundRepo {
	return &LostFoundRepo{
		byID: make(map[string]lostfound.Report),
	}
}

func (r *LostFoundRepo) Create(ctx context.Context, rep lostfound.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rep.ID == "" {
		return errors.New("report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return errors.New("report already exists")
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *LostFoundRepo) Update(ctx context.Context, rep lostfound.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rep.ID]; !exists {
		return lostfound.ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *LostFoundRepo) GetByID(ctx context.Context, id string) (lostfound.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return lostfound.Report{}, lostfound.ErrNotFound
	}
	return rep, nil
}

func (r *LostFoundRepo) ListOpen(ctx context.Context, kind lostfound.Kind) ([]lostfound.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lostfound.Report, 0)
	for _, rep := range r.byID {
		if rep.Status != lostfound.StatusOpen {
			continue
		}
		if kind != "" && rep.Kind != kind {
			continue
		}
		out = append(out, rep)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
