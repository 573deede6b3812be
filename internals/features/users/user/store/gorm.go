package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/sentinel"
)

// Gorm adalah implementasi Store di atas PostgreSQL.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) GetByID(ctx context.Context, id uint) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (s *Gorm) GetByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&u).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (s *Gorm) GetByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&u).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (s *Gorm) GetByNIK(ctx context.Context, nik string) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.db.WithContext(ctx).
		Where("nik = ?", nik).
		First(&u).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (s *Gorm) List(ctx context.Context) ([]model.UserModel, error) {
	var users []model.UserModel
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Gorm) Create(ctx context.Context, u *model.UserModel) error {
	u.SetDefaultValues()

	// cek keunikan di transaksi yang sama dengan insert
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.UserModel{}).
			Where("LOWER(username) = LOWER(?)", u.Username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return sentinel.With(sentinel.ErrConflict, "Username sudah digunakan")
		}

		if err := tx.Model(&model.UserModel{}).
			Where("LOWER(email) = LOWER(?)", u.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return sentinel.With(sentinel.ErrConflict, "Email sudah digunakan")
		}

		if u.NIK != nil {
			if err := tx.Model(&model.UserModel{}).
				Where("nik = ?", *u.NIK).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return sentinel.With(sentinel.ErrConflict, "NIK sudah terdaftar")
			}
		}

		return tx.Create(u).Error
	})
}

func (s *Gorm) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*model.UserModel, error) {
	updates := map[string]interface{}{}
	if upd.FullName != nil {
		updates["full_name"] = *upd.FullName
	}
	if upd.Email != nil {
		updates["email"] = *upd.Email
	}
	if upd.Phone != nil {
		updates["phone"] = upd.Phone
	}

	var u model.UserModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, id).Error; err != nil {
			return translateNotFound(err)
		}
		if upd.Email != nil {
			var count int64
			if err := tx.Model(&model.UserModel{}).
				Where("LOWER(email) = LOWER(?) AND id <> ?", *upd.Email, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return sentinel.With(sentinel.ErrConflict, "Email sudah digunakan")
			}
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&u).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&u, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Gorm) UpdatePassword(ctx context.Context, id uint, hashed string) error {
	res := s.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}
	return nil
}

func (s *Gorm) UpdateRole(ctx context.Context, id uint, role string) error {
	res := s.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel.With(sentinel.ErrNotFound, "User tidak ditemukan")
	}
	return err
}
