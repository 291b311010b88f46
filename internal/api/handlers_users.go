package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/samber/lo"
)

func (s *Server) listUsers(c *fiber.Ctx) error {

	users, err := s.svc.Users.Get(c.Context(), c.QueryInt("limit", 100), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(users, func(u entities.User, _ int) userResponse {
		return toUserResponse(u)
	}))
}

func (s *Server) getUser(c *fiber.Ctx) error {

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}

	user, err := s.svc.Users.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toUserResponse(*user))
}

func (s *Server) getUserCompanies(c *fiber.Ctx) error {

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid user id"))
	}

	companies, err := s.svc.Companies.GetByUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(companies, func(company entities.Company, _ int) companyResponse {
		return toCompanyResponse(company)
	}))
}
