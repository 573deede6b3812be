// Package store menyimpan data warga/admin di balik interface sempit,
// supaya implementasi memori (dev/test) dan Postgres bisa saling menggantikan
// tanpa menyentuh lapisan policy maupun controller.
package store

import (
	"context"

	"desaku_backend/internals/features/users/user/model"
)

// ProfileUpdate: partial update profil. Field nil berarti tidak diubah.
type ProfileUpdate struct {
	FullName *string
	Email    *string
	Phone    *string
}

type Store interface {
	GetByID(ctx context.Context, id uint) (*model.UserModel, error)
	// GetByUsername / GetByEmail mencocokkan case-insensitive; NIK exact match.
	GetByUsername(ctx context.Context, username string) (*model.UserModel, error)
	GetByEmail(ctx context.Context, email string) (*model.UserModel, error)
	GetByNIK(ctx context.Context, nik string) (*model.UserModel, error)
	List(ctx context.Context) ([]model.UserModel, error)

	// Create memeriksa keunikan username/email/NIK secara atomik di dalam store
	// dan mengembalikan sentinel.ErrConflict kalau sudah dipakai.
	Create(ctx context.Context, u *model.UserModel) error

	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*model.UserModel, error)
	UpdatePassword(ctx context.Context, id uint, hashed string) error
	UpdateRole(ctx context.Context, id uint, role string) error
}
