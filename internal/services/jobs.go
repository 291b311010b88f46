package services

import (
	"context"

	"github.com/maxaizer/job-platform/internal/authz"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/repositories"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
)

type jobRepository interface {
	Create(ctx context.Context, job *entities.Job) error
	GetByID(ctx context.Context, id int) (*entities.Job, error)
	Get(ctx context.Context, limit int, offset int) ([]entities.Job, error)
	GetByCompanies(ctx context.Context, companyIDs []int, limit int, offset int) ([]entities.Job, error)
	GetWithApplications(ctx context.Context, companyIDs []int, limit int, offset int) ([]repositories.JobWithApplications, error)
}

type JobService struct {
	jobs      jobRepository
	companies companyRepository
}

func NewJobService(jobs jobRepository, companies companyRepository) (*JobService, error) {
	if jobs == nil {
		return nil, errors.New("jobs repository is nil")
	}
	if companies == nil {
		return nil, errors.New("companies repository is nil")
	}
	return &JobService{jobs: jobs, companies: companies}, nil
}

type CreateJobInput struct {
	CompanyID  int
	Salary     *float64
	Name       string
	Experience *string
	Schedule   *string
	Shift      *string
	Hours      *int
	Skills     []string
	Languages  []string
	Remote     bool
	Hybrid     bool
}

func (s *JobService) Create(ctx context.Context, id authz.Identity, input CreateJobInput) (*entities.Job, error) {

	if input.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	var schedule *entities.Schedule
	if input.Schedule != nil {
		parsed, err := entities.ToSchedule(*input.Schedule)
		if err != nil {
			return nil, apperrors.Validation("%v", err)
		}
		schedule = &parsed
	}

	var shift *entities.Shift
	if input.Shift != nil {
		parsed, err := entities.ToShift(*input.Shift)
		if err != nil {
			return nil, apperrors.Validation("%v", err)
		}
		shift = &parsed
	}

	company, err := s.companies.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperrors.NotFound("company")
	}

	if err = authz.CanCreateJob(id, *company); err != nil {
		return nil, err
	}

	job := &entities.Job{
		CompanyID:  input.CompanyID,
		Salary:     input.Salary,
		Name:       input.Name,
		Experience: input.Experience,
		Schedule:   schedule,
		Shift:      shift,
		Hours:      input.Hours,
		Skills:     input.Skills,
		Languages:  input.Languages,
		Remote:     input.Remote,
		Hybrid:     input.Hybrid,
	}

	if err = s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Get(ctx context.Context, limit, offset int) ([]entities.Job, error) {
	if err := validatePagination(limit, offset); err != nil {
		return nil, err
	}
	return s.jobs.Get(ctx, limit, offset)
}

func (s *JobService) GetByID(ctx context.Context, jobID int) (*entities.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NotFound("job")
	}
	return job, nil
}

// GetMine lists the jobs of the calling employer's companies.
func (s *JobService) GetMine(ctx context.Context, id authz.Identity, limit, offset int) ([]entities.Job, error) {

	if err := authz.CanListEmployerJobs(id); err != nil {
		return nil, err
	}
	if err := validatePagination(limit, offset); err != nil {
		return nil, err
	}

	companyIDs, err := ownedCompanyIDs(ctx, s.companies, id.UserID)
	if err != nil {
		return nil, err
	}
	if len(companyIDs) == 0 {
		return []entities.Job{}, nil
	}

	return s.jobs.GetByCompanies(ctx, companyIDs, limit, offset)
}

// GetMineWithApplications returns the employer aggregate: jobs that received
// applications, with nested applicant and resume detail.
func (s *JobService) GetMineWithApplications(ctx context.Context, id authz.Identity, limit, offset int) ([]repositories.JobWithApplications, error) {

	if err := authz.CanListEmployerJobs(id); err != nil {
		return nil, err
	}
	if err := validatePagination(limit, offset); err != nil {
		return nil, err
	}

	companyIDs, err := ownedCompanyIDs(ctx, s.companies, id.UserID)
	if err != nil {
		return nil, err
	}
	if len(companyIDs) == 0 {
		return []repositories.JobWithApplications{}, nil
	}

	return s.jobs.GetWithApplications(ctx, companyIDs, limit, offset)
}
