package seeds

import (
	"context"
	"errors"
	"log"

	"desaku_backend/internals/configs"
	"desaku_backend/internals/constants"
	authService "desaku_backend/internals/features/users/auth/service"
	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/features/users/user/store"
	"desaku_backend/internals/sentinel"
)

// EnsureDefaultAdmin membuat akun admin bawaan kalau belum ada,
// supaya portal bisa langsung dikelola setelah deploy pertama.
func EnsureDefaultAdmin(ctx context.Context, users store.Store) {
	const adminUsername = "admin"

	if _, err := users.GetByUsername(ctx, adminUsername); err == nil {
		return
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		log.Printf("⚠️ Gagal cek akun admin: %v", err)
		return
	}

	password := configs.GetEnv("DEFAULT_ADMIN_PASSWORD", "admin12345")
	hashed, err := authService.HashPassword(password)
	if err != nil {
		log.Printf("⚠️ Gagal hash password admin: %v", err)
		return
	}

	admin := model.UserModel{
		Username: adminUsername,
		Password: hashed,
		FullName: "Admin Desa",
		Email:    "admin@desaairkulim.desa.id",
		Role:     constants.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Printf("⚠️ Gagal membuat akun admin bawaan: %v", err)
		return
	}
	log.Println("✅ Akun admin bawaan dibuat.")
}
