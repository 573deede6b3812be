package controller

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/constants"
	authService "desaku_backend/internals/features/users/auth/service"
	"desaku_backend/internals/features/users/user/dto"
	"desaku_backend/internals/features/users/user/model"
	"desaku_backend/internals/features/users/user/store"
	helper "desaku_backend/internals/helpers"
)

// UserController: manajemen user oleh admin (route di balik OnlyAdmin).
type UserController struct {
	Users store.Store
}

func NewUserController(users store.Store) *UserController {
	return &UserController{Users: users}
}

// GET /api/users
func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.Users.List(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", dto.FromUserModels(users))
}

// POST /api/users — admin boleh membuat akun dengan role apa pun.
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	role := req.Role
	if role == "" {
		role = constants.RoleUser
	}

	user := model.UserModel{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		Email:    req.Email,
		NIK:      req.NIK,
		Phone:    req.Phone,
		Role:     role,
	}
	if err := uc.Users.Create(c.UserContext(), &user); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromUserModel(&user))
}

// PATCH /api/users/:id/role — mutasi role sengaja dipisah dari update profil.
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := uc.Users.UpdateRole(c.UserContext(), uint(id), req.Role); err != nil {
		return helper.JsonFromError(c, err)
	}

	user, err := uc.Users.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Role berhasil diperbarui", dto.FromUserModel(user))
}
