package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"kundali-api/internal/domain/charts"
)

type chartsRepo struct {
	mu   sync.RWMutex
	byID map[string]charts.SavedChart
}

func NewChartsRepo() charts.Repository {
	return &chartsRepo{
		byID: make(map[string]charts.SavedChart),
	}
}

func (r *chartsRepo) Create(ctx context.Context, c charts.SavedChart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("chart id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("chart already exists")
	}
	for _, other := range r.byID {
		if other.UserID == c.UserID && other.Name == c.Name {
			return charts.ErrDuplicateName
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *chartsRepo) Update(ctx context.Context, c charts.SavedChart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return charts.ErrNotFound
	}
	for _, other := range r.byID {
		if other.ID != c.ID && other.UserID == c.UserID && other.Name == c.Name {
			return charts.ErrDuplicateName
		}
	}
	r.byID[c.ID] = c
	return nil
}

func (r *chartsRepo) GetByID(ctx context.Context, id string) (charts.SavedChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return charts.SavedChart{}, charts.ErrNotFound
	}
	return c, nil
}

func (r *chartsRepo) ListByUser(ctx context.Context, userID string) ([]charts.SavedChart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]charts.SavedChart, 0)
	for _, c := range r.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *chartsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return charts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
