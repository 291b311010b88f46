package repositories

import (
	"context"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

func (repo *Companies) Create(ctx context.Context, company *entities.Company) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Company{}).
			Where("owner_id = ? AND title = ?", company.OwnerID, company.Title).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check company uniqueness")
		}
		if count > 0 {
			return apperrors.Conflict("company with this name already exists for your account")
		}
		return tx.Create(company).Error
	})

	if isDuplicate(err) {
		return apperrors.Conflict("company with this name already exists for your account")
	}
	return err
}

func (repo *Companies) GetByID(ctx context.Context, id int) (*entities.Company, error) {
	var company entities.Company
	if err := repo.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (repo *Companies) GetAll(ctx context.Context) ([]entities.Company, error) {
	var companies []entities.Company
	if err := repo.db.WithContext(ctx).Order("id").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (repo *Companies) GetByOwner(ctx context.Context, ownerID int) ([]entities.Company, error) {
	var companies []entities.Company
	if err := repo.db.WithContext(ctx).Order("id").Find(&companies, "owner_id = ?", ownerID).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (repo *Companies) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Company{}).Count(&count).Error
	return count, err
}
