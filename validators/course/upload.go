package courseValidator

import (
	"strings"

	"topclass/middleware"

	"github.com/gofiber/fiber/v2"
)

// MaxImageSize is the upload ceiling, enforced before any network call.
const MaxImageSize = 10 * 1024 * 1024 // 10 MiB

var validUploadSlots = map[string]bool{
	"thumbnail": true,
	"detail":    true,
}

// UploadImage validates the multipart image upload request
func UploadImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slot := strings.TrimSpace(c.FormValue("type"))
		if !validUploadSlots[slot] {
			return middleware.Fail(c, fiber.StatusBadRequest, "Upload type must be thumbnail or detail!")
		}

		file, err := c.FormFile("file")
		if err != nil {
			return middleware.Fail(c, fiber.StatusBadRequest, "File is required!")
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return middleware.Fail(c, fiber.StatusBadRequest, "Only image files can be uploaded!")
		}

		if file.Size > MaxImageSize {
			return middleware.Fail(c, fiber.StatusBadRequest, "File size cannot exceed 10MB!")
		}

		c.Locals("uploadSlot", slot)
		c.Locals("uploadFile", file)
		return c.Next()
	}
}
