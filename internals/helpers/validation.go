package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator instance dipakai bersama oleh semua controller.
var Validate = validator.New()

// ValidationError mengubah error validator.v10 menjadi response 422
// dengan pesan per field dalam Bahasa Indonesia.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Format input tidak valid")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		fieldErrors[fieldErr.Field()] = append(fieldErrors[fieldErr.Field()], messageForTag(fieldErr))
	}
	return JsonValidationError(c, fieldErrors)
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "min":
		return fe.Field() + " harus minimal " + fe.Param() + " karakter."
	case "max":
		return fe.Field() + " harus kurang dari " + fe.Param() + " karakter."
	case "oneof":
		return fe.Field() + " harus salah satu dari " + fe.Param() + "."
	case "numeric":
		return fe.Field() + " harus berupa angka."
	case "len":
		return fe.Field() + " harus tepat " + fe.Param() + " karakter."
	default:
		return "Format tidak valid."
	}
}
