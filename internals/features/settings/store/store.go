package store

import (
	"context"

	"desaku_backend/internals/features/settings/model"
)

type Store interface {
	// Get mengembalikan baris pengaturan, atau ErrNotFound kalau belum pernah diisi.
	Get(ctx context.Context) (*model.OrganizationModel, error)
	// Upsert menimpa seluruh baris pengaturan (ID dipaksa 1).
	Upsert(ctx context.Context, o *model.OrganizationModel) error
}
