package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/samber/lo"
)

type applicationRequest struct {
	ResumeID int     `json:"resumeId"`
	JobID    int     `json:"jobId"`
	Message  *string `json:"message"`
}

func (s *Server) createApplication(c *fiber.Ctx) error {

	var req applicationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	application, err := s.svc.Applications.Create(c.Context(), identity(c), services.CreateApplicationInput{
		ResumeID: req.ResumeID,
		JobID:    req.JobID,
		Message:  req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toApplicationResponse(*application))
}

func (s *Server) myApplications(c *fiber.Ctx) error {

	applications, err := s.svc.Applications.GetMine(c.Context(), identity(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(applications, func(a entities.Application, _ int) applicationResponse {
		return toApplicationResponse(a)
	}))
}
