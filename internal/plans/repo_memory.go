package plans

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

// NewMemoryRepo returns a repo pre-seeded with the default catalog.
func NewMemoryRepo() *MemoryRepo {
	r := &MemoryRepo{plans: make(map[string]Plan)}
	for _, p := range Defaults() {
		r.plans[p.Code] = p
	}
	return r
}

func (r *MemoryRepo) List(ctx context.Context) ([]Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plan, 0, len(r.plans))
	for _, p := range r.plans {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	return out, nil
}

func (r *MemoryRepo) GetByCode(ctx context.Context, code string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[code]
	if !ok {
		return Plan{}, ErrNotFound
	}
	return p, nil
}
