package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"desaku_backend/internals/features/submissions/model"
	userModel "desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/sentinel"
)

// Gorm adalah implementasi Store di atas PostgreSQL.
// Nomor urut ID dijaga mutex proses dan di-seed dari MAX(id) tahun berjalan,
// jadi tidak ada duplikat walau aplikasi restart.
type Gorm struct {
	db *gorm.DB

	seqMu     sync.Mutex
	seqByYear map[int]int
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{
		db:        db,
		seqByYear: make(map[int]int),
	}
}

func (s *Gorm) Create(ctx context.Context, sub *model.SubmissionModel) (*model.SubmissionWithUser, error) {
	now := time.Now()

	id, err := s.nextID(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	sub.ID = id
	sub.Status = model.StatusPending
	sub.AdminNotes = nil
	sub.AdminFiles = []string{}
	if sub.Documents == nil {
		sub.Documents = []string{}
	}
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return s.enrich(ctx, sub)
}

func (s *Gorm) GetByID(ctx context.Context, id string) (*model.SubmissionWithUser, error) {
	var sub model.SubmissionModel
	if err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sentinel.With(sentinel.ErrNotFound, "Pengajuan tidak ditemukan")
		}
		return nil, err
	}
	return s.enrich(ctx, &sub)
}

func (s *Gorm) ListAll(ctx context.Context) ([]model.SubmissionWithUser, error) {
	return s.list(ctx, s.db.WithContext(ctx))
}

func (s *Gorm) ListByUser(ctx context.Context, userID uint) ([]model.SubmissionWithUser, error) {
	return s.list(ctx, s.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (s *Gorm) Update(ctx context.Context, id string, upd Update) (*model.SubmissionWithUser, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.AdminNotes != nil {
		updates["admin_notes"] = *upd.AdminNotes
	}
	if upd.AdminFiles != nil {
		updates["admin_files"] = pq.StringArray(*upd.AdminFiles)
	}

	res := s.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, sentinel.With(sentinel.ErrNotFound, "Pengajuan tidak ditemukan")
	}
	return s.GetByID(ctx, id)
}

func (s *Gorm) list(ctx context.Context, q *gorm.DB) ([]model.SubmissionWithUser, error) {
	var subs []model.SubmissionModel
	if err := q.Order("created_at DESC, id DESC").Find(&subs).Error; err != nil {
		return nil, err
	}

	out := make([]model.SubmissionWithUser, 0, len(subs))
	for i := range subs {
		enriched, err := s.enrich(ctx, &subs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *enriched)
	}
	return out, nil
}

func (s *Gorm) enrich(ctx context.Context, sub *model.SubmissionModel) (*model.SubmissionWithUser, error) {
	out := model.SubmissionWithUser{SubmissionModel: *sub}

	var owner userModel.UserModel
	if err := s.db.WithContext(ctx).First(&owner, sub.UserID).Error; err == nil {
		out.User = &model.OwnerSnapshot{
			ID:       owner.ID,
			Username: owner.Username,
			FullName: owner.FullName,
			Email:    owner.Email,
			NIK:      owner.NIK,
			Phone:    owner.Phone,
		}
	}
	return &out, nil
}

func (s *Gorm) nextID(ctx context.Context, year int) (string, error) {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	if _, seeded := s.seqByYear[year]; !seeded {
		last, err := s.lastSequence(ctx, year)
		if err != nil {
			return "", err
		}
		s.seqByYear[year] = last
	}

	s.seqByYear[year]++
	return fmt.Sprintf("AK-%d-%04d", year, s.seqByYear[year]), nil
}

func (s *Gorm) lastSequence(ctx context.Context, year int) (int, error) {
	prefix := fmt.Sprintf("AK-%d-", year)

	var lastID string
	err := s.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Select("id").
		Where("id LIKE ?", prefix+"%").
		Order("id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return 0, err
	}
	if lastID == "" {
		return 0, nil
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(lastID, prefix))
	if err != nil {
		return 0, fmt.Errorf("format id pengajuan tidak dikenal: %s", lastID)
	}
	return seq, nil
}
