package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"desaku_backend/internals/features/settings/model"
	"desaku_backend/internals/sentinel"
)

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Get(ctx context.Context) (*model.OrganizationModel, error) {
	var o model.OrganizationModel
	if err := s.db.WithContext(ctx).First(&o, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sentinel.With(sentinel.ErrNotFound, "Pengaturan organisasi belum diisi")
		}
		return nil, err
	}
	return &o, nil
}

func (s *Gorm) Upsert(ctx context.Context, o *model.OrganizationModel) error {
	o.ID = 1
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(o).Error
}
