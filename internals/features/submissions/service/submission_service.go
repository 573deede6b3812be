// Package service menggabungkan access policy dan state machine status di
// depan submission store: setiap mutasi lewat sini dulu sebelum menyentuh data.
package service

import (
	"context"
	"fmt"

	"desaku_backend/internals/features/authz"
	"desaku_backend/internals/features/submissions/dto"
	"desaku_backend/internals/features/submissions/model"
	"desaku_backend/internals/features/submissions/store"
	"desaku_backend/internals/sentinel"
)

type SubmissionService struct {
	store store.Store
}

func NewSubmissionService(s store.Store) *SubmissionService {
	return &SubmissionService{store: s}
}

// Create membuat pengajuan baru atas nama aktor sendiri. Status selalu pending.
func (s *SubmissionService) Create(ctx context.Context, actor authz.Actor, req dto.CreateSubmissionRequest) (*model.SubmissionWithUser, error) {
	if actor.IsAnonymous() {
		return nil, sentinel.With(sentinel.ErrUnauthenticated, "Silakan login terlebih dahulu")
	}
	if !authz.CanCreateSubmission(actor) {
		return nil, sentinel.With(sentinel.ErrForbidden, "Akses ditolak")
	}
	if !model.ValidType(req.Type) {
		return nil, sentinel.With(sentinel.ErrValidation, fmt.Sprintf("Jenis dokumen %q tidak dikenal", req.Type))
	}

	sub := model.SubmissionModel{
		UserID:      actor.ID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Documents:   req.Documents,
	}
	return s.store.Create(ctx, &sub)
}

// Get mengambil satu pengajuan; user biasa hanya boleh melihat miliknya.
func (s *SubmissionService) Get(ctx context.Context, actor authz.Actor, id string) (*model.SubmissionWithUser, error) {
	if actor.IsAnonymous() {
		return nil, sentinel.With(sentinel.ErrUnauthenticated, "Silakan login terlebih dahulu")
	}

	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanViewSubmission(actor, sub.UserID) {
		return nil, sentinel.With(sentinel.ErrForbidden, "Akses ditolak")
	}
	return sub, nil
}

// ListAll mengembalikan seluruh pengajuan. Khusus admin.
func (s *SubmissionService) ListAll(ctx context.Context, actor authz.Actor) ([]model.SubmissionWithUser, error) {
	if actor.IsAnonymous() {
		return nil, sentinel.With(sentinel.ErrUnauthenticated, "Silakan login terlebih dahulu")
	}
	if !authz.CanListAllSubmissions(actor) {
		return nil, sentinel.With(sentinel.ErrForbidden, "Akses ditolak")
	}
	return s.store.ListAll(ctx)
}

// ListOwn mengembalikan pengajuan milik aktor sendiri.
func (s *SubmissionService) ListOwn(ctx context.Context, actor authz.Actor) ([]model.SubmissionWithUser, error) {
	if actor.IsAnonymous() {
		return nil, sentinel.With(sentinel.ErrUnauthenticated, "Silakan login terlebih dahulu")
	}
	return s.store.ListByUser(ctx, actor.ID)
}

// Update menerapkan perubahan status/catatan/berkas admin. Khusus admin.
// Transisi status divalidasi terhadap daftar putih sebelum ditulis.
func (s *SubmissionService) Update(ctx context.Context, actor authz.Actor, id string, req dto.UpdateSubmissionRequest) (*model.SubmissionWithUser, error) {
	if actor.IsAnonymous() {
		return nil, sentinel.With(sentinel.ErrUnauthenticated, "Silakan login terlebih dahulu")
	}
	if !authz.CanUpdateSubmission(actor) {
		return nil, sentinel.With(sentinel.ErrForbidden, "Akses ditolak")
	}

	current, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !model.CanTransition(current.Status, *req.Status) {
		return nil, sentinel.With(sentinel.ErrInvalidTransition,
			fmt.Sprintf("Status %s tidak bisa diubah menjadi %s", current.Status, *req.Status))
	}

	return s.store.Update(ctx, id, store.Update{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
		AdminFiles: req.AdminFiles,
	})
}
