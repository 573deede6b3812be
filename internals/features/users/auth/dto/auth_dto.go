package dto

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=3,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	NIK      *string `json:"nik" validate:"omitempty,len=16,numeric"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	// Role opsional: tab login di klien ("user" / "admin"). Kalau terisi dan
	// tidak cocok dengan role akun, login ditolak.
	Role string `json:"role" validate:"omitempty,oneof=user admin"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
