package dto

import "gorm.io/datatypes"

type CreateTemplateRequest struct {
	Type    string         `json:"type" validate:"required,oneof=na ktp kk usaha domisili tidak_sengketa pengantar lainnya"`
	Name    string         `json:"name" validate:"required,min=3,max=100"`
	Content string         `json:"content" validate:"required"`
	Fields  datatypes.JSON `json:"fields"`
}

type UpdateTemplateRequest struct {
	Type    *string         `json:"type" validate:"omitempty,oneof=na ktp kk usaha domisili tidak_sengketa pengantar lainnya"`
	Name    *string         `json:"name" validate:"omitempty,min=3,max=100"`
	Content *string         `json:"content"`
	Fields  *datatypes.JSON `json:"fields"`
}
