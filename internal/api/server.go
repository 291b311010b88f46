package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/auth"
	"github.com/maxaizer/job-platform/internal/config"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type authUserRepository interface {
	GetByID(ctx context.Context, id int) (*entities.User, error)
}

// Services bundles the application services the HTTP layer dispatches to.
type Services struct {
	Users        *services.UserService
	Companies    *services.CompanyService
	Jobs         *services.JobService
	Resumes      *services.ResumeService
	Applications *services.ApplicationService
	Chats        *services.ChatService
}

type Server struct {
	app       *fiber.App
	port      int
	tokens    *auth.TokenService
	authUsers authUserRepository
	logins    *loginLimiter
	svc       Services
}

func NewServer(cfg config.ServerConfig, tokens *auth.TokenService, authUsers authUserRepository, svc Services) (*Server, error) {

	if tokens == nil {
		return nil, errors.New("token service is nil")
	}
	if authUsers == nil {
		return nil, errors.New("auth users repository is nil")
	}
	if svc.Users == nil || svc.Companies == nil || svc.Jobs == nil ||
		svc.Resumes == nil || svc.Applications == nil || svc.Chats == nil {
		return nil, errors.New("all services must be set")
	}

	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		port:      cfg.Port,
		tokens:    tokens,
		authUsers: authUsers,
		logins:    newLoginLimiter(cfg.LoginRatePerMinute),
		svc:       svc,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {

	s.app.Use(recordMetrics)

	s.app.Get("/health", s.health)
	s.app.Post("/register", s.register)
	s.app.Post("/login", s.limitLogins, s.login)
	s.app.Get("/users", s.listUsers)
	s.app.Get("/users/:id", s.getUser)
	s.app.Get("/jobs", s.listJobs)
	s.app.Get("/jobs/:id", s.getJob)
	s.app.Get("/companies", s.listCompanies)
	s.app.Get("/companies/:id", s.getCompany)

	s.app.Get("/profile", s.authenticate, s.profile)
	s.app.Get("/verify-token", s.authenticate, s.verifyToken)
	s.app.Post("/jobs", s.authenticate, s.createJob)
	s.app.Get("/employer/jobs", s.authenticate, s.employerJobs)
	s.app.Get("/employer/jobs/applied", s.authenticate, s.employerJobsApplied)
	s.app.Post("/resumes", s.authenticate, s.createResume)
	s.app.Get("/resumes/:user_id", s.authenticate, s.getResume)
	s.app.Post("/companies", s.authenticate, s.createCompany)
	s.app.Get("/users/:id/companies", s.authenticate, s.getUserCompanies)
	s.app.Post("/applications", s.authenticate, s.createApplication)
	s.app.Get("/applications/user", s.authenticate, s.myApplications)
	s.app.Post("/chats", s.authenticate, s.createChat)
	s.app.Get("/chats", s.authenticate, s.listChats)
	s.app.Get("/chats/:id", s.authenticate, s.getChat)
	s.app.Get("/chats/:id/messages", s.authenticate, s.chatMessages)
	s.app.Post("/message", s.authenticate, s.sendMessage)
}

// App exposes the underlying fiber application for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Infof("http server listening on port %d", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(5 * time.Second)
}
