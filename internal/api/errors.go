package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/logger"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	log "github.com/sirupsen/logrus"
)

func statusFromError(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a taxonomy error to its status code. Internal errors are
// logged with their cause; the client only ever sees the generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := statusFromError(err)
	if status == fiber.StatusInternalServerError {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
			Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": apperrors.UserMessage(err)})
}
