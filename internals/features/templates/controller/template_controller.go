package controller

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/features/templates/dto"
	"desaku_backend/internals/features/templates/model"
	"desaku_backend/internals/features/templates/store"
	helper "desaku_backend/internals/helpers"
)

type TemplateController struct {
	Templates store.Store
}

func NewTemplateController(templates store.Store) *TemplateController {
	return &TemplateController{Templates: templates}
}

// GET /api/templates — warga juga boleh (memilih jenis surat saat mengajukan).
func (tc *TemplateController) List(c *fiber.Ctx) error {
	templates, err := tc.Templates.List(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", templates)
}

// POST /api/templates (admin)
func (tc *TemplateController) Create(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	t := model.TemplateModel{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
		Fields:  req.Fields,
	}
	if err := tc.Templates.Create(c.UserContext(), &t); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Template berhasil disimpan", t)
}

// PUT /api/templates/:id (admin)
func (tc *TemplateController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	t, err := tc.Templates.GetByID(c.UserContext(), uint(id))
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if req.Fields != nil {
		t.Fields = *req.Fields
	}

	if err := tc.Templates.Update(c.UserContext(), t); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Template berhasil diperbarui", t)
}

// DELETE /api/templates/:id (admin)
func (tc *TemplateController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}
	if err := tc.Templates.Delete(c.UserContext(), uint(id)); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Template berhasil dihapus", nil)
}
