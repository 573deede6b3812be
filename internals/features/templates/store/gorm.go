package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"desaku_backend/internals/features/templates/model"
	"desaku_backend/internals/sentinel"
)

type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) List(ctx context.Context) ([]model.TemplateModel, error) {
	var out []model.TemplateModel
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Gorm) GetByID(ctx context.Context, id uint) (*model.TemplateModel, error) {
	var t model.TemplateModel
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sentinel.With(sentinel.ErrNotFound, "Template tidak ditemukan")
		}
		return nil, err
	}
	return &t, nil
}

func (s *Gorm) Create(ctx context.Context, t *model.TemplateModel) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *Gorm) Update(ctx context.Context, t *model.TemplateModel) error {
	res := s.db.WithContext(ctx).Model(&model.TemplateModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"type":    t.Type,
			"name":    t.Name,
			"content": t.Content,
			"fields":  t.Fields,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sentinel.With(sentinel.ErrNotFound, "Template tidak ditemukan")
	}
	return nil
}

func (s *Gorm) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.TemplateModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return sentinel.With(sentinel.ErrNotFound, "Template tidak ditemukan")
	}
	return nil
}
