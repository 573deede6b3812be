package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"desaku_backend/internals/features/settings/model"
	"desaku_backend/internals/features/settings/store"
	helper "desaku_backend/internals/helpers"
)

type SettingsController struct {
	Settings store.Store
}

func NewSettingsController(settings store.Store) *SettingsController {
	return &SettingsController{Settings: settings}
}

type organizationRequest struct {
	VillageName string         `json:"village_name" validate:"required,min=3,max=100"`
	Address     string         `json:"address" validate:"omitempty,max=255"`
	Phone       string         `json:"phone" validate:"omitempty,max=20"`
	Email       string         `json:"email" validate:"omitempty,email"`
	Extra       datatypes.JSON `json:"extra"`
}

// GET /api/settings/organization — dipakai klien untuk kop surat.
func (sc *SettingsController) Get(c *fiber.Ctx) error {
	o, err := sc.Settings.Get(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", o)
}

// POST /api/settings/organization (admin)
func (sc *SettingsController) Update(c *fiber.Ctx) error {
	var req organizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	o := model.OrganizationModel{
		VillageName: req.VillageName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Extra:       req.Extra,
	}
	if err := sc.Settings.Upsert(c.UserContext(), &o); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengaturan organisasi berhasil diperbarui", o)
}
