package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/samber/lo"
)

type companyRequest struct {
	Title         string   `json:"title"`
	City          string   `json:"city"`
	BusinessAreas []string `json:"businessAreas"`
}

func (s *Server) createCompany(c *fiber.Ctx) error {

	var req companyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	company, err := s.svc.Companies.Create(c.Context(), identity(c), services.CreateCompanyInput{
		Title:         req.Title,
		City:          req.City,
		BusinessAreas: req.BusinessAreas,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toCompanyResponse(*company))
}

func (s *Server) listCompanies(c *fiber.Ctx) error {

	companies, err := s.svc.Companies.GetAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(companies, func(company entities.Company, _ int) companyResponse {
		return toCompanyResponse(company)
	}))
}

func (s *Server) getCompany(c *fiber.Ctx) error {

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid company id"))
	}

	company, err := s.svc.Companies.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCompanyResponse(*company))
}
