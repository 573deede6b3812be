package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/sentinel"
)

// InMemory adalah identity store berbasis map dengan mutex.
// Dipakai saat pengembangan (tanpa DB) dan di unit test.
type InMemory struct {
	mu     sync.RWMutex
	users  map[uint]model.UserModel
	nextID uint
	now    func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{
		users:  make(map[uint]model.UserModel),
		nextID: 1,
		now:    time.Now,
	}
}

func (s *InMemory) GetByID(_ context.Context, id uint) (*model.UserModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}
	return &u, nil
}

func (s *InMemory) GetByUsername(_ context.Context, username string) (*model.UserModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(func(u *model.UserModel) bool {
		return strings.EqualFold(u.Username, username)
	})
}

func (s *InMemory) GetByEmail(_ context.Context, email string) (*model.UserModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(func(u *model.UserModel) bool {
		return strings.EqualFold(u.Email, email)
	})
}

func (s *InMemory) GetByNIK(_ context.Context, nik string) (*model.UserModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(func(u *model.UserModel) bool {
		return u.NIK != nil && *u.NIK == nik
	})
}

func (s *InMemory) List(_ context.Context) ([]model.UserModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.UserModel, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemory) Create(_ context.Context, u *model.UserModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// keunikan dicek di bawah lock yang sama dengan penulisan,
	// jadi dua registrasi beruntun tidak bisa lolos dua-duanya
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return sentinel.With(sentinel.ErrConflict, "Username sudah digunakan")
		}
		if strings.EqualFold(existing.Email, u.Email) {
			return sentinel.With(sentinel.ErrConflict, "Email sudah digunakan")
		}
		if u.NIK != nil && existing.NIK != nil && *existing.NIK == *u.NIK {
			return sentinel.With(sentinel.ErrConflict, "NIK sudah terdaftar")
		}
	}

	u.SetDefaultValues()
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = s.now()
	s.users[u.ID] = *u
	return nil
}

func (s *InMemory) UpdateProfile(_ context.Context, id uint, upd ProfileUpdate) (*model.UserModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}

	if upd.Email != nil && !strings.EqualFold(*upd.Email, u.Email) {
		for _, existing := range s.users {
			if existing.ID != id && strings.EqualFold(existing.Email, *upd.Email) {
				return nil, sentinel.With(sentinel.ErrConflict, "Email sudah digunakan")
			}
		}
		u.Email = *upd.Email
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		u.Phone = upd.Phone
	}

	s.users[id] = u
	return &u, nil
}

func (s *InMemory) UpdatePassword(_ context.Context, id uint, hashed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}
	u.Password = hashed
	s.users[id] = u
	return nil
}

func (s *InMemory) UpdateRole(_ context.Context, id uint, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}
	u.Role = role
	s.users[id] = u
	return nil
}

func (s *InMemory) findLocked(match func(*model.UserModel) bool) (*model.UserModel, error) {
	for _, u := range s.users {
		if match(&u) {
			found := u
			return &found, nil
		}
	}
	return nil, sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
}
