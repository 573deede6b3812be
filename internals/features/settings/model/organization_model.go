package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrganizationModel: profil kelurahan/desa untuk kop surat dan halaman depan.
// Satu baris saja (ID selalu 1).
type OrganizationModel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	VillageName string         `gorm:"size:100;not null" json:"village_name"`
	Address     string         `gorm:"size:255" json:"address"`
	Phone       string         `gorm:"size:20" json:"phone"`
	Email       string         `gorm:"size:255" json:"email"`
	Extra       datatypes.JSON `gorm:"type:jsonb" json:"extra,omitempty"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrganizationModel) TableName() string {
	return "organization_settings"
}
