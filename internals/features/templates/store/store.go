package store

import (
	"context"

	"desaku_backend/internals/features/templates/model"
)

type Store interface {
	List(ctx context.Context) ([]model.TemplateModel, error)
	GetByID(ctx context.Context, id uint) (*model.TemplateModel, error)
	Create(ctx context.Context, t *model.TemplateModel) error
	Update(ctx context.Context, t *model.TemplateModel) error
	Delete(ctx context.Context, id uint) error
}
