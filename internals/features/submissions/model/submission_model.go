package model

import (
	"time"

	"github.com/lib/pq"
)

/* ==========================
   Jenis dokumen & status
========================== */

const (
	TypeNA            = "na"             // surat keterangan nikah (NA)
	TypeKTP           = "ktp"            // pembaruan KTP
	TypeKK            = "kk"             // kartu keluarga
	TypeUsaha         = "usaha"          // surat keterangan usaha
	TypeDomisili      = "domisili"       // surat keterangan domisili
	TypeTidakSengketa = "tidak_sengketa" // surat keterangan tidak sengketa
	TypePengantar     = "pengantar"      // surat pengantar
	TypeLainnya       = "lainnya"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

var submissionTypes = map[string]struct{}{
	TypeNA: {}, TypeKTP: {}, TypeKK: {}, TypeUsaha: {},
	TypeDomisili: {}, TypeTidakSengketa: {}, TypePengantar: {}, TypeLainnya: {},
}

func ValidType(t string) bool {
	_, ok := submissionTypes[t]
	return ok
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

/* ==========================
   State machine status
========================== */

// allowedTransitions: daftar putih transisi status. completed dan rejected
// terminal; transisi ke status yang sama diperbolehkan (admin menyimpan ulang
// catatan tanpa mengubah status) dan tetap memajukan updated_at.
var allowedTransitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusProcessing: {},
		StatusCompleted:  {},
		StatusRejected:   {},
	},
	StatusProcessing: {
		StatusCompleted: {},
		StatusRejected:  {},
	},
	StatusCompleted: {},
	StatusRejected:  {},
}

func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	_, ok := allowedTransitions[from][to]
	return ok
}

func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusRejected
}

/* ==========================
   Model
========================== */

// SubmissionModel merepresentasikan tabel submissions.
// ID berformat AK-YYYY-NNNN, dibangkitkan store saat create.
type SubmissionModel struct {
	ID          string         `gorm:"primaryKey;size:20" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Type        string         `gorm:"size:30;not null" json:"type"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Documents   pq.StringArray `gorm:"type:text[]" json:"documents"`
	Status      string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminNotes  *string        `gorm:"type:text" json:"admin_notes,omitempty"`
	AdminFiles  pq.StringArray `gorm:"type:text[]" json:"admin_files"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

// OwnerSnapshot adalah potret profil publik pemilik yang ikut dikirim saat
// pengajuan dibaca (denormalized join, bukan relasi tersimpan).
type OwnerSnapshot struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	NIK      *string `json:"nik,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type SubmissionWithUser struct {
	SubmissionModel
	User *OwnerSnapshot `json:"user,omitempty"`
}
