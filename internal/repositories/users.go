package repositories

import (
	"context"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts the user after checking email uniqueness; check and insert
// run in one transaction so concurrent registrations can't both pass the
// check. The unique index backs this up at the store level.
func (repo *Users) Create(ctx context.Context, user *entities.User) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if count > 0 {
			return apperrors.Conflict("user with this email already exists")
		}
		return tx.Create(user).Error
	})

	if isDuplicate(err) {
		return apperrors.Conflict("user with this email already exists")
	}
	return err
}

func (repo *Users) GetByID(ctx context.Context, id int) (*entities.User, error) {
	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := repo.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) Get(ctx context.Context, limit int, offset int) ([]entities.User, error) {
	var users []entities.User
	if err := repo.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *Users) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}
