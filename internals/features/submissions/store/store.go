// Package store menyimpan pengajuan dokumen di balik interface sempit.
// Store bertanggung jawab atas pembangkitan ID AK-YYYY-NNNN, urutan listing
// (terbaru dulu), dan pengayaan potret profil pemilik. Validasi transisi
// status adalah urusan service, bukan store.
package store

import (
	"context"

	"desaku_backend/internals/features/submissions/model"
)

// Update: partial update dari admin. Field nil berarti tidak diubah.
type Update struct {
	Status     *string
	AdminNotes *string
	AdminFiles *[]string
}

type Store interface {
	// Create mengisi ID, status pending, dan kedua timestamp, lalu
	// mengembalikan record lengkap dengan potret pemilik.
	Create(ctx context.Context, s *model.SubmissionModel) (*model.SubmissionWithUser, error)

	GetByID(ctx context.Context, id string) (*model.SubmissionWithUser, error)

	// ListAll / ListByUser: urut created_at menurun, seri diputus ID menurun.
	ListAll(ctx context.Context) ([]model.SubmissionWithUser, error)
	ListByUser(ctx context.Context, userID uint) ([]model.SubmissionWithUser, error)

	// Update menggabungkan field yang terisi dan selalu memajukan updated_at.
	Update(ctx context.Context, id string, upd Update) (*model.SubmissionWithUser, error)
}
