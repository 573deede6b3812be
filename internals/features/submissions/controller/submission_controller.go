package controller

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/features/submissions/dto"
	"desaku_backend/internals/features/submissions/service"
	helper "desaku_backend/internals/helpers"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(s *service.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: s}
}

// POST /api/submissions
func (sc *SubmissionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actor := helper.ActorFromContext(c)
	sub, err := sc.Service.Create(c.UserContext(), actor, req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Pengajuan berhasil dibuat", sub)
}

// GET /api/submissions (admin)
func (sc *SubmissionController) ListAll(c *fiber.Ctx) error {
	actor := helper.ActorFromContext(c)
	subs, err := sc.Service.ListAll(c.UserContext(), actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", subs)
}

// GET /api/submissions/user
func (sc *SubmissionController) ListOwn(c *fiber.Ctx) error {
	actor := helper.ActorFromContext(c)
	subs, err := sc.Service.ListOwn(c.UserContext(), actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", subs)
}

// GET /api/submissions/:id
func (sc *SubmissionController) Get(c *fiber.Ctx) error {
	actor := helper.ActorFromContext(c)
	sub, err := sc.Service.Get(c.UserContext(), actor, c.Params("id"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", sub)
}

// PATCH /api/submissions/:id (admin)
func (sc *SubmissionController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actor := helper.ActorFromContext(c)
	sub, err := sc.Service.Update(c.UserContext(), actor, c.Params("id"), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Pengajuan berhasil diperbarui", sub)
}
