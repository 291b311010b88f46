package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-platform/internal/authz"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/events"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type applicationRepository interface {
	Create(ctx context.Context, application *entities.Application) error
	GetByResumeOwner(ctx context.Context, ownerID int) ([]entities.Application, error)
}

type ApplicationService struct {
	applications applicationRepository
	resumes      resumeRepository
	jobs         jobRepository
	bus          EventBus.Bus
}

func NewApplicationService(applications applicationRepository, resumes resumeRepository,
	jobs jobRepository, bus EventBus.Bus) (*ApplicationService, error) {

	if applications == nil {
		return nil, errors.New("applications repository is nil")
	}
	if resumes == nil {
		return nil, errors.New("resumes repository is nil")
	}
	if jobs == nil {
		return nil, errors.New("jobs repository is nil")
	}
	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	return &ApplicationService{applications: applications, resumes: resumes, jobs: jobs, bus: bus}, nil
}

type CreateApplicationInput struct {
	ResumeID int
	JobID    int
	Message  *string
}

func (s *ApplicationService) Create(ctx context.Context, id authz.Identity, input CreateApplicationInput) (*entities.Application, error) {

	resume, err := s.resumes.GetByID(ctx, input.ResumeID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperrors.NotFound("resume")
	}

	if err = authz.CanApplyWithResume(id, *resume); err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NotFound("job")
	}

	application := &entities.Application{
		ResumeID: input.ResumeID,
		JobID:    input.JobID,
		Message:  input.Message,
	}

	if err = s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	log.Infof("application %v submitted for job %v", application.ID, application.JobID)
	s.bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{
		ApplicationID: application.ID,
		ResumeID:      application.ResumeID,
		JobID:         application.JobID,
	})

	return application, nil
}

// GetMine lists applications submitted with the caller's resume.
func (s *ApplicationService) GetMine(ctx context.Context, id authz.Identity) ([]entities.Application, error) {
	return s.applications.GetByResumeOwner(ctx, id.UserID)
}
