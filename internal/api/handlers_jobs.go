package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/repositories"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/samber/lo"
)

type jobRequest struct {
	CompanyID      int      `json:"companyId"`
	Salary         *float64 `json:"salary"`
	Name           string   `json:"name"`
	WorkExperience *string  `json:"workExperience"`
	WorkSchedule   *string  `json:"workSchedule"`
	WorkShift      *string  `json:"workShift"`
	WorkHours      *int     `json:"workHours"`
	Skills         []string `json:"skills"`
	Language       []string `json:"language"`
	Remote         bool     `json:"remote"`
	Hybrid         bool     `json:"hybrid"`
}

func (s *Server) createJob(c *fiber.Ctx) error {

	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	job, err := s.svc.Jobs.Create(c.Context(), identity(c), services.CreateJobInput{
		CompanyID:  req.CompanyID,
		Salary:     req.Salary,
		Name:       req.Name,
		Experience: req.WorkExperience,
		Schedule:   req.WorkSchedule,
		Shift:      req.WorkShift,
		Hours:      req.WorkHours,
		Skills:     req.Skills,
		Languages:  req.Language,
		Remote:     req.Remote,
		Hybrid:     req.Hybrid,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toJobResponse(*job))
}

func (s *Server) listJobs(c *fiber.Ctx) error {

	jobs, err := s.svc.Jobs.Get(c.Context(), c.QueryInt("limit", 100), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(jobs, func(job entities.Job, _ int) jobResponse {
		return toJobResponse(job)
	}))
}

func (s *Server) getJob(c *fiber.Ctx) error {

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid job id"))
	}

	job, err := s.svc.Jobs.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toJobResponse(*job))
}

func (s *Server) employerJobs(c *fiber.Ctx) error {

	jobs, err := s.svc.Jobs.GetMine(c.Context(), identity(c),
		c.QueryInt("limit", 100), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(jobs, func(job entities.Job, _ int) jobResponse {
		return toJobResponse(job)
	}))
}

func (s *Server) employerJobsApplied(c *fiber.Ctx) error {

	aggregates, err := s.svc.Jobs.GetMineWithApplications(c.Context(), identity(c),
		c.QueryInt("limit", 100), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(aggregates, func(a repositories.JobWithApplications, _ int) jobWithApplicationsResponse {
		return toJobWithApplicationsResponse(a)
	}))
}
