package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-platform/internal/api"
	"github.com/maxaizer/job-platform/internal/auth"
	"github.com/maxaizer/job-platform/internal/config"
	"github.com/maxaizer/job-platform/internal/logger"
	"github.com/maxaizer/job-platform/internal/metrics"
	"github.com/maxaizer/job-platform/internal/repositories"
	"github.com/maxaizer/job-platform/internal/services"
	log "github.com/sirupsen/logrus"
)

func buildServices(cfg *config.Config, dbContext *repositories.DbContext,
	tokens *auth.TokenService, bus EventBus.Bus) api.Services {

	users := repositories.NewUsersRepository(dbContext.DB)
	companies := repositories.NewCompaniesRepository(dbContext.DB)
	resumes := repositories.NewResumesRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	chats := repositories.NewChatsRepository(dbContext.DB)

	userService, err := services.NewUserService(users, tokens, bus, cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatalf("can't create user service: %v", err)
	}

	companyService, err := services.NewCompanyService(companies, users)
	if err != nil {
		log.Fatalf("can't create company service: %v", err)
	}

	jobService, err := services.NewJobService(jobs, companies)
	if err != nil {
		log.Fatalf("can't create job service: %v", err)
	}

	resumeService, err := services.NewResumeService(resumes)
	if err != nil {
		log.Fatalf("can't create resume service: %v", err)
	}

	applicationService, err := services.NewApplicationService(applications, resumes, jobs, bus)
	if err != nil {
		log.Fatalf("can't create application service: %v", err)
	}

	chatService, err := services.NewChatService(chats, users, bus)
	if err != nil {
		log.Fatalf("can't create chat service: %v", err)
	}

	return api.Services{
		Users:        userService,
		Companies:    companyService,
		Jobs:         jobService,
		Resumes:      resumeService,
		Applications: applicationService,
		Chats:        chatService,
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JwtSecret, cfg.Auth.TokenTTLMinutes)
	if err != nil {
		log.Fatalf("can't create token service: %v", err)
	}

	bus := EventBus.New()

	recorder, err := services.NewActivityRecorder(bus)
	if err != nil {
		log.Fatalf("can't create activity recorder: %v", err)
	}
	defer recorder.Stop()

	users := repositories.NewUsersRepository(dbContext.DB)
	reporter, err := services.NewStatsReporter(map[string]services.EntityCounter{
		"users":        users,
		"companies":    repositories.NewCompaniesRepository(dbContext.DB),
		"resumes":      repositories.NewResumesRepository(dbContext.DB),
		"jobs":         repositories.NewJobsRepository(dbContext.DB),
		"applications": repositories.NewApplicationsRepository(dbContext.DB),
		"chats":        repositories.NewChatsRepository(dbContext.DB),
	})
	if err != nil {
		log.Fatalf("can't create stats reporter: %v", err)
	}
	defer reporter.Stop()

	server, err := api.NewServer(cfg.Server, tokens, repositories.NewCachedUsers(users), buildServices(cfg, dbContext, tokens, bus))
	if err != nil {
		log.Fatalf("can't create http server: %v", err)
	}

	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("http server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	if err := server.Shutdown(); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
