package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"desaku_backend/internals/features/submissions/model"
	userModel "desaku_backend/internals/features/users/user/model"
	userStore "desaku_backend/internals/features/users/user/store"
	"desaku_backend/internals/sentinel"
)

// fakeClock: waktu maju manual supaya urutan dan reset tahunan bisa diuji.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time {
	return f.current
}

func (f *fakeClock) advance(d time.Duration) {
	f.current = f.current.Add(d)
}

type SubmissionStoreSuite struct {
	suite.Suite
	users *userStore.InMemory
	store *InMemory
	clock *fakeClock
	ctx   context.Context
	owner *userModel.UserModel
}

func (s *SubmissionStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = userStore.NewInMemory()
	s.store = NewInMemory(s.users)
	s.clock = &fakeClock{current: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	s.store.SetClock(s.clock.now)

	s.owner = &userModel.UserModel{
		Username: "budi",
		Password: "hash",
		FullName: "Budi Santoso",
		Email:    "budi@mail.com",
	}
	s.Require().NoError(s.users.Create(s.ctx, s.owner))
}

func TestSubmissionStoreSuite(t *testing.T) {
	suite.Run(t, new(SubmissionStoreSuite))
}

func (s *SubmissionStoreSuite) create(title string) *model.SubmissionWithUser {
	created, err := s.store.Create(s.ctx, &model.SubmissionModel{
		UserID:      s.owner.ID,
		Type:        model.TypeKTP,
		Title:       title,
		Description: "KTP saya hilang saat banjir",
		Documents:   []string{"/uploads/ktp-lama.jpg"},
	})
	s.Require().NoError(err)
	return created
}

func (s *SubmissionStoreSuite) TestCreateDefaults() {
	created := s.create("Pembaruan KTP hilang")

	s.Equal("AK-2026-0001", created.ID)
	s.Equal(model.StatusPending, created.Status)
	s.Nil(created.AdminNotes)
	s.Empty(created.AdminFiles)
	s.True(created.CreatedAt.Equal(created.UpdatedAt))

	s.Require().NotNil(created.User)
	s.Equal("Budi Santoso", created.User.FullName)
}

func (s *SubmissionStoreSuite) TestIDFormatAndUniqueness() {
	seen := make(map[string]struct{})
	for i := 0; i < 12; i++ {
		created := s.create(fmt.Sprintf("Pengajuan ke-%d", i))
		s.Regexp(`^AK-\d{4}-\d{4}$`, created.ID)
		_, dup := seen[created.ID]
		s.False(dup, "ID %s terpakai dua kali", created.ID)
		seen[created.ID] = struct{}{}
	}
	// dua digit: padding tetap empat angka
	s.Contains(seen, "AK-2026-0012")
}

func (s *SubmissionStoreSuite) TestSequenceResetsPerYear() {
	first := s.create("Pengajuan akhir tahun")
	s.Equal("AK-2026-0001", first.ID)

	// lewati pergantian tahun
	s.clock.current = time.Date(2027, 1, 2, 8, 0, 0, 0, time.UTC)

	second := s.create("Pengajuan awal tahun")
	s.Equal("AK-2027-0001", second.ID)
}

func (s *SubmissionStoreSuite) TestRoundTrip() {
	created := s.create("Pembaruan KTP hilang")

	got, err := s.store.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.SubmissionModel, got.SubmissionModel)
	s.True(got.UpdatedAt.Equal(got.CreatedAt))
}

func (s *SubmissionStoreSuite) TestGetUnknown() {
	_, err := s.store.GetByID(s.ctx, "AK-2026-9999")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *SubmissionStoreSuite) TestListOrdering() {
	oldest := s.create("Pertama")
	s.clock.advance(time.Minute)
	middle := s.create("Kedua")
	s.clock.advance(time.Minute)
	newest := s.create("Ketiga")

	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(newest.ID, all[0].ID)
	s.Equal(middle.ID, all[1].ID)
	s.Equal(oldest.ID, all[2].ID)
}

func (s *SubmissionStoreSuite) TestListOrderingTieBreak() {
	// created_at identik: ID menurun yang menentukan
	first := s.create("Satu")
	second := s.create("Dua")

	all, err := s.store.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID)
	s.Equal(first.ID, all[1].ID)
}

func (s *SubmissionStoreSuite) TestListByUser() {
	other := &userModel.UserModel{
		Username: "siti",
		Password: "hash",
		FullName: "Siti Aminah",
		Email:    "siti@mail.com",
	}
	s.Require().NoError(s.users.Create(s.ctx, other))

	mine := s.create("Milik budi")
	_, err := s.store.Create(s.ctx, &model.SubmissionModel{
		UserID:      other.ID,
		Type:        model.TypeKK,
		Title:       "Milik siti",
		Description: "Pembaruan kartu keluarga",
	})
	s.Require().NoError(err)

	got, err := s.store.ListByUser(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(mine.ID, got[0].ID)
}

func (s *SubmissionStoreSuite) TestUpdateMergesAndAdvancesUpdatedAt() {
	created := s.create("Pembaruan KTP hilang")

	s.clock.advance(time.Hour)
	status := model.StatusProcessing
	notes := "Sedang diverifikasi"
	updated, err := s.store.Update(s.ctx, created.ID, Update{
		Status:     &status,
		AdminNotes: &notes,
	})
	s.Require().NoError(err)
	s.Equal(model.StatusProcessing, updated.Status)
	s.Require().NotNil(updated.AdminNotes)
	s.Equal(notes, *updated.AdminNotes)
	s.True(updated.UpdatedAt.After(updated.CreatedAt))

	// field yang tidak dikirim tidak tersentuh
	s.Equal(created.Title, updated.Title)
	s.Equal(created.Documents, updated.Documents)
}

func (s *SubmissionStoreSuite) TestUpdateReplacesAdminFiles() {
	created := s.create("Pengajuan domisili")

	files := []string{"/uploads/hasil-a.pdf"}
	_, err := s.store.Update(s.ctx, created.ID, Update{AdminFiles: &files})
	s.Require().NoError(err)

	replacement := []string{"/uploads/hasil-b.pdf"}
	updated, err := s.store.Update(s.ctx, created.ID, Update{AdminFiles: &replacement})
	s.Require().NoError(err)

	// mengganti, bukan menambah
	s.Equal([]string{"/uploads/hasil-b.pdf"}, []string(updated.AdminFiles))
}

func (s *SubmissionStoreSuite) TestUpdateUnknown() {
	status := model.StatusProcessing
	_, err := s.store.Update(s.ctx, "AK-2026-9999", Update{Status: &status})
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
