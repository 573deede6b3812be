package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"desaku_backend/internals/features/submissions/model"
	userStore "desaku_backend/internals/features/users/user/store"
	"desaku_backend/internals/sentinel"
)

// InMemory menyimpan pengajuan di map dengan mutex. Potret pemilik diambil
// dari identity store saat dibaca, meniru join denormalisasi di versi DB.
type InMemory struct {
	mu          sync.RWMutex
	submissions map[string]model.SubmissionModel
	seqByYear   map[int]int
	users       userStore.Store
	now         func() time.Time
}

func NewInMemory(users userStore.Store) *InMemory {
	return &InMemory{
		submissions: make(map[string]model.SubmissionModel),
		seqByYear:   make(map[int]int),
		users:       users,
		now:         time.Now,
	}
}

// SetClock mengganti sumber waktu. Hanya untuk test.
func (s *InMemory) SetClock(now func() time.Time) {
	s.now = now
}

func (s *InMemory) Create(ctx context.Context, sub *model.SubmissionModel) (*model.SubmissionWithUser, error) {
	s.mu.Lock()

	created := s.now()
	year := created.Year()
	s.seqByYear[year]++ // nomor urut reset tiap tahun berjalan

	sub.ID = fmt.Sprintf("AK-%d-%04d", year, s.seqByYear[year])
	sub.Status = model.StatusPending
	sub.AdminNotes = nil
	sub.AdminFiles = []string{}
	if sub.Documents == nil {
		sub.Documents = []string{}
	}
	sub.CreatedAt = created
	sub.UpdatedAt = created

	s.submissions[sub.ID] = *sub
	s.mu.Unlock()

	return s.enrich(ctx, sub)
}

func (s *InMemory) GetByID(ctx context.Context, id string) (*model.SubmissionWithUser, error) {
	s.mu.RLock()
	sub, ok := s.submissions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, sentinel.With(sentinel.ErrNotFound, "Pengajuan tidak ditemukan")
	}
	return s.enrich(ctx, &sub)
}

func (s *InMemory) ListAll(ctx context.Context) ([]model.SubmissionWithUser, error) {
	return s.list(ctx, func(*model.SubmissionModel) bool { return true })
}

func (s *InMemory) ListByUser(ctx context.Context, userID uint) ([]model.SubmissionWithUser, error) {
	return s.list(ctx, func(sub *model.SubmissionModel) bool { return sub.UserID == userID })
}

func (s *InMemory) Update(ctx context.Context, id string, upd Update) (*model.SubmissionWithUser, error) {
	s.mu.Lock()

	sub, ok := s.submissions[id]
	if !ok {
		s.mu.Unlock()
		return nil, sentinel.With(sentinel.ErrNotFound, "Pengajuan tidak ditemukan")
	}

	if upd.Status != nil {
		sub.Status = *upd.Status
	}
	if upd.AdminNotes != nil {
		notes := *upd.AdminNotes
		sub.AdminNotes = &notes
	}
	if upd.AdminFiles != nil {
		sub.AdminFiles = append([]string(nil), (*upd.AdminFiles)...)
	}
	sub.UpdatedAt = s.now()

	s.submissions[id] = sub
	s.mu.Unlock()

	return s.enrich(ctx, &sub)
}

func (s *InMemory) list(ctx context.Context, match func(*model.SubmissionModel) bool) ([]model.SubmissionWithUser, error) {
	s.mu.RLock()
	selected := make([]model.SubmissionModel, 0, len(s.submissions))
	for _, sub := range s.submissions {
		if match(&sub) {
			selected = append(selected, sub)
		}
	}
	s.mu.RUnlock()

	// terbaru dulu; kalau created_at persis sama, ID menurun
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].CreatedAt.Equal(selected[j].CreatedAt) {
			return selected[i].ID > selected[j].ID
		}
		return selected[i].CreatedAt.After(selected[j].CreatedAt)
	})

	out := make([]model.SubmissionWithUser, 0, len(selected))
	for i := range selected {
		enriched, err := s.enrich(ctx, &selected[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *enriched)
	}
	return out, nil
}

func (s *InMemory) enrich(ctx context.Context, sub *model.SubmissionModel) (*model.SubmissionWithUser, error) {
	out := model.SubmissionWithUser{SubmissionModel: *sub}

	owner, err := s.users.GetByID(ctx, sub.UserID)
	if err == nil {
		out.User = &model.OwnerSnapshot{
			ID:       owner.ID,
			Username: owner.Username,
			FullName: owner.FullName,
			Email:    owner.Email,
			NIK:      owner.NIK,
			Phone:    owner.Phone,
		}
	}
	// pemilik yang tidak ketemu bukan error fatal: record tetap dikirim tanpa potret
	return &out, nil
}
