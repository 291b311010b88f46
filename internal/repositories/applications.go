package repositories

import (
	"context"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Create(ctx context.Context, application *entities.Application) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Application{}).
			Where("resume_id = ? AND job_id = ?", application.ResumeID, application.JobID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check application uniqueness")
		}
		if count > 0 {
			return apperrors.Conflict("application already exists")
		}
		return tx.Create(application).Error
	})

	if isDuplicate(err) {
		return apperrors.Conflict("application already exists")
	}
	return err
}

// GetByResumeOwner lists the applications submitted with resumes belonging
// to ownerID, newest first.
func (repo *Applications) GetByResumeOwner(ctx context.Context, ownerID int) ([]entities.Application, error) {
	var applications []entities.Application
	if err := repo.db.WithContext(ctx).
		Joins("JOIN resumes ON resumes.id = applications.resume_id").
		Where("resumes.owner_id = ?", ownerID).
		Order("applications.created_at DESC, applications.id DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Application{}).Count(&count).Error
	return count, err
}
