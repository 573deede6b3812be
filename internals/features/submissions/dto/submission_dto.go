package dto

/* ==========================
   Requests
========================== */

type CreateSubmissionRequest struct {
	Type        string   `json:"type" validate:"required,oneof=na ktp kk usaha domisili tidak_sengketa pengantar lainnya"`
	Title       string   `json:"title" validate:"required,min=5,max=200"`
	Description string   `json:"description" validate:"required,min=10"`
	Documents   []string `json:"documents" validate:"omitempty,dive,required"`
}

// UpdateSubmissionRequest: hanya admin. Field nil berarti tidak diubah.
// AdminNotes dan AdminFiles mengganti nilai lama, bukan menambah.
type UpdateSubmissionRequest struct {
	Status     *string   `json:"status" validate:"omitempty,oneof=pending processing completed rejected"`
	AdminNotes *string   `json:"admin_notes"`
	AdminFiles *[]string `json:"admin_files"`
}
