package model

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateModel: templat surat per jenis dokumen. Fields berisi definisi
// isian dinamis (nama field, label, wajib/tidak) dalam JSON.
type TemplateModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string         `gorm:"size:30;not null;index" json:"type"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Fields    datatypes.JSON `gorm:"type:jsonb" json:"fields,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TemplateModel) TableName() string {
	return "templates"
}
