package controller

import (
	"github.com/gofiber/fiber/v2"

	"desaku_backend/internals/features/uploads/service"
	helper "desaku_backend/internals/helpers"
)

type UploadController struct {
	Service *service.UploadService
}

func NewUploadController(s *service.UploadService) *UploadController {
	return &UploadController{Service: s}
}

// POST /api/upload — multipart field "files", maksimal sesuai konfigurasi.
func (uc *UploadController) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format multipart tidak valid")
	}

	files := form.File["files"]
	refs, err := uc.Service.SaveBatch(files)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "File berhasil diunggah", fiber.Map{
		"file_urls": refs,
	})
}

// GET /uploads/:filename — unduh berkas, hanya untuk yang sudah login.
func (uc *UploadController) Serve(c *fiber.Ctx) error {
	path, err := uc.Service.Resolve(c.Params("filename"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return c.SendFile(path)
}
