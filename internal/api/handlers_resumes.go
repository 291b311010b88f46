package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/maxaizer/job-platform/pkg/apperrors"
)

type resumeRequest struct {
	UserID         int      `json:"userid"`
	Title          string   `json:"title"`
	Language       []string `json:"language"`
	Skills         []string `json:"skills"`
	Description    string   `json:"description"`
	WorkExperience float64  `json:"workExperience"`
}

func (s *Server) createResume(c *fiber.Ctx) error {

	var req resumeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	resume, err := s.svc.Resumes.Create(c.Context(), identity(c), services.CreateResumeInput{
		OwnerID:         req.UserID,
		Title:           req.Title,
		Languages:       req.Language,
		Skills:          req.Skills,
		Description:     req.Description,
		YearsExperience: req.WorkExperience,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toResumeResponse(*resume))
}

func (s *Server) getResume(c *fiber.Ctx) error {

	ownerID, err := c.ParamsInt("user_id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}

	resume, err := s.svc.Resumes.GetByOwner(c.Context(), identity(c), ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toResumeResponse(*resume))
}
