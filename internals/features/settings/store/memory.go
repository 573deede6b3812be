package store

import (
	"context"
	"sync"
	"time"

	"desaku_backend/internals/features/settings/model"
	"desaku_backend/internals/sentinel"
)

type InMemory struct {
	mu      sync.RWMutex
	current *model.OrganizationModel
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Get(_ context.Context) (*model.OrganizationModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, sentinel.With(sentinel.ErrNotFound, "Pengaturan organisasi belum diisi")
	}
	out := *s.current
	return &out, nil
}

func (s *InMemory) Upsert(_ context.Context, o *model.OrganizationModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = 1
	o.UpdatedAt = time.Now()
	stored := *o
	s.current = &stored
	return nil
}
