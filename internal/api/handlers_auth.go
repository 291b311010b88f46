package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/maxaizer/job-platform/pkg/apperrors"
)

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "message": "Job Platform API is running"})
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Age      int    `json:"age"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (s *Server) register(c *fiber.Ctx) error {

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	user, err := s.svc.Users.Register(c.Context(), services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Surname:  req.Surname,
		Age:      req.Age,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(*user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *fiber.Ctx) error {

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	token, user, err := s.svc.Users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(*user),
	})
}

func (s *Server) profile(c *fiber.Ctx) error {
	return c.JSON(toUserResponse(*currentUser(c)))
}

func (s *Server) verifyToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"valid": true, "user": toUserResponse(*currentUser(c))})
}
