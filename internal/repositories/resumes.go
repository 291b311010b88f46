package repositories

import (
	"context"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Resumes struct {
	db *gorm.DB
}

func NewResumesRepository(db *gorm.DB) *Resumes {
	return &Resumes{db: db}
}

func (repo *Resumes) Create(ctx context.Context, resume *entities.Resume) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Resume{}).Where("owner_id = ?", resume.OwnerID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check resume uniqueness")
		}
		if count > 0 {
			return apperrors.Conflict("resume already exists for this user")
		}
		return tx.Create(resume).Error
	})

	if isDuplicate(err) {
		return apperrors.Conflict("resume already exists for this user")
	}
	return err
}

func (repo *Resumes) GetByID(ctx context.Context, id int) (*entities.Resume, error) {
	var resume entities.Resume
	if err := repo.db.WithContext(ctx).First(&resume, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resume, nil
}

func (repo *Resumes) GetByOwner(ctx context.Context, ownerID int) (*entities.Resume, error) {
	var resume entities.Resume
	if err := repo.db.WithContext(ctx).First(&resume, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resume, nil
}

func (repo *Resumes) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Resume{}).Count(&count).Error
	return count, err
}
