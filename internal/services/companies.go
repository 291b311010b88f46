package services

import (
	"context"

	"github.com/maxaizer/job-platform/internal/authz"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type companyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id int) (*entities.Company, error)
	GetAll(ctx context.Context) ([]entities.Company, error)
	GetByOwner(ctx context.Context, ownerID int) ([]entities.Company, error)
}

type CompanyService struct {
	companies companyRepository
	users     userRepository
}

func NewCompanyService(companies companyRepository, users userRepository) (*CompanyService, error) {
	if companies == nil {
		return nil, errors.New("companies repository is nil")
	}
	if users == nil {
		return nil, errors.New("users repository is nil")
	}
	return &CompanyService{companies: companies, users: users}, nil
}

type CreateCompanyInput struct {
	Title         string
	City          string
	BusinessAreas []string
}

func (s *CompanyService) Create(ctx context.Context, id authz.Identity, input CreateCompanyInput) (*entities.Company, error) {

	if err := authz.CanCreateCompany(id); err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, apperrors.Validation("title is required")
	}

	for _, area := range input.BusinessAreas {
		if _, err := entities.ToBusinessArea(area); err != nil {
			return nil, apperrors.Validation("%v", err)
		}
	}

	company := &entities.Company{
		OwnerID:       id.UserID,
		Title:         input.Title,
		City:          input.City,
		BusinessAreas: input.BusinessAreas,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) GetByID(ctx context.Context, companyID int) (*entities.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperrors.NotFound("company")
	}
	return company, nil
}

func (s *CompanyService) GetAll(ctx context.Context) ([]entities.Company, error) {
	return s.companies.GetAll(ctx)
}

// GetByUser lists a user's companies. A non-employer target is not an
// error: such users simply own no companies, so the result is empty.
func (s *CompanyService) GetByUser(ctx context.Context, targetUserID int) ([]entities.Company, error) {

	user, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user")
	}
	if user.Role != entities.RoleEmployer {
		return []entities.Company{}, nil
	}

	return s.companies.GetByOwner(ctx, targetUserID)
}

// ownedCompanyIDs is shared by the employer job listings.
func ownedCompanyIDs(ctx context.Context, companies companyRepository, ownerID int) ([]int, error) {
	owned, err := companies.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return lo.Map(owned, func(company entities.Company, _ int) int {
		return company.ID
	}), nil
}
