package services

import (
	"context"

	"github.com/maxaizer/job-platform/internal/authz"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
)

type resumeRepository interface {
	Create(ctx context.Context, resume *entities.Resume) error
	GetByID(ctx context.Context, id int) (*entities.Resume, error)
	GetByOwner(ctx context.Context, ownerID int) (*entities.Resume, error)
}

type ResumeService struct {
	resumes resumeRepository
}

func NewResumeService(resumes resumeRepository) (*ResumeService, error) {
	if resumes == nil {
		return nil, errors.New("resumes repository is nil")
	}
	return &ResumeService{resumes: resumes}, nil
}

type CreateResumeInput struct {
	OwnerID         int
	Title           string
	Languages       []string
	Skills          []string
	Description     string
	YearsExperience float64
}

func (s *ResumeService) Create(ctx context.Context, id authz.Identity, input CreateResumeInput) (*entities.Resume, error) {

	if err := authz.CanCreateResume(id, input.OwnerID); err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if input.YearsExperience < 0 {
		return nil, apperrors.Validation("years of experience must be non-negative")
	}

	resume := &entities.Resume{
		OwnerID:         input.OwnerID,
		Title:           input.Title,
		Languages:       input.Languages,
		Skills:          input.Skills,
		Description:     input.Description,
		YearsExperience: input.YearsExperience,
	}

	if err := s.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) GetByOwner(ctx context.Context, id authz.Identity, ownerID int) (*entities.Resume, error) {

	if err := authz.CanReadResume(id, ownerID); err != nil {
		return nil, err
	}

	resume, err := s.resumes.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, apperrors.NotFound("resume")
	}
	return resume, nil
}
