package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/constants"
	authDto "desaku_backend/internals/features/users/auth/dto"
	"desaku_backend/internals/features/users/auth/service"
	userDto "desaku_backend/internals/features/users/user/dto"
	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/features/users/user/store"
	helper "desaku_backend/internals/helpers"
)

type AuthController struct {
	Users store.Store
}

func NewAuthController(users store.Store) *AuthController {
	return &AuthController{Users: users}
}

// POST /api/register — pendaftaran mandiri warga. Role selalu dipaksa "user".
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		Email:    req.Email,
		NIK:      req.NIK,
		Phone:    req.Phone,
		Role:     constants.RoleUser,
	}
	if err := ac.Users.Create(c.UserContext(), &user); err != nil {
		return helper.JsonFromError(c, err)
	}

	token, expiresAt, err := service.IssueAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	setAccessCookie(c, token, expiresAt)

	return helper.JsonCreated(c, "Pendaftaran berhasil", fiber.Map{
		"user":         userDto.FromUserModel(&user),
		"access_token": token,
	})
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ac.Users.GetByUsername(c.UserContext(), req.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err := service.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	// tab login (user/admin) harus cocok dengan role akun
	if req.Role != "" && user.Role != req.Role {
		message := "Silakan login sebagai admin"
		if req.Role == constants.RoleAdmin {
			message = "Akun ini bukan akun administrator"
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, message)
	}

	token, expiresAt, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	setAccessCookie(c, token, expiresAt)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":         userDto.FromUserModel(user),
		"access_token": token,
	})
}

// POST /api/logout — hapus cookie; token stateless kedaluwarsa sendiri.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/user
func (ac *AuthController) Me(c *fiber.Ctx) error {
	actor := helper.ActorFromContext(c)
	user, err := ac.Users.GetByID(c.UserContext(), actor.ID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", userDto.FromUserModel(user))
}

// PATCH /api/user/profile — hanya nama/email/telepon milik sendiri.
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var req userDto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actor := helper.ActorFromContext(c)
	user, err := ac.Users.UpdateProfile(c.UserContext(), actor.ID, store.ProfileUpdate{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", userDto.FromUserModel(user))
}

// POST /api/user/change-password — wajib verifikasi password lama.
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req authDto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actor := helper.ActorFromContext(c)
	user, err := ac.Users.GetByID(c.UserContext(), actor.ID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	if err := service.CheckPasswordHash(user.Password, req.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password saat ini tidak valid")
	}

	newHash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password baru")
	}
	if err := ac.Users.UpdatePassword(c.UserContext(), actor.ID, newHash); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Password berhasil diperbarui", nil)
}

func setAccessCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
