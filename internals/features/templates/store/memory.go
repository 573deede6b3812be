package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"desaku_backend/internals/features/templates/model"
	"desaku_backend/internals/sentinel"
)

type InMemory struct {
	mu        sync.RWMutex
	templates map[uint]model.TemplateModel
	nextID    uint
}

func NewInMemory() *InMemory {
	return &InMemory{
		templates: make(map[uint]model.TemplateModel),
		nextID:    1,
	}
}

func (s *InMemory) List(_ context.Context) ([]model.TemplateModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TemplateModel, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) GetByID(_ context.Context, id uint) (*model.TemplateModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return nil, sentinel.With(sentinel.ErrNotFound, "Template tidak ditemukan")
	}
	return &t, nil
}

func (s *InMemory) Create(_ context.Context, t *model.TemplateModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextID
	s.nextID++
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.templates[t.ID] = *t
	return nil
}

func (s *InMemory) Update(_ context.Context, t *model.TemplateModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[t.ID]; !ok {
		return sentinel.With(sentinel.ErrNotFound, "Template tidak ditemukan")
	}
	t.UpdatedAt = time.Now()
	s.templates[t.ID] = *t
	return nil
}

func (s *InMemory) Delete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return sentinel.With(sentinel.ErrNotFound, "Template tidak ditemukan")
	}
	delete(s.templates, id)
	return nil
}
