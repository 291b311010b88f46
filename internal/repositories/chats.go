package repositories

import (
	"context"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Chats struct {
	db *gorm.DB
}

func NewChatsRepository(db *gorm.DB) *Chats {
	return &Chats{db: db}
}

func (repo *Chats) Create(ctx context.Context, chat *entities.Chat) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Chat{}).
			Where("employer_id = ? AND worker_id = ?", chat.EmployerID, chat.WorkerID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check chat uniqueness")
		}
		if count > 0 {
			return apperrors.Conflict("chat already exists")
		}
		return tx.Create(chat).Error
	})

	if isDuplicate(err) {
		return apperrors.Conflict("chat already exists")
	}
	return err
}

func (repo *Chats) GetByID(ctx context.Context, id int) (*entities.Chat, error) {
	var chat entities.Chat
	if err := repo.db.WithContext(ctx).First(&chat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

func (repo *Chats) GetByParticipant(ctx context.Context, userID int) ([]entities.Chat, error) {
	var chats []entities.Chat
	if err := repo.db.WithContext(ctx).
		Where("employer_id = ? OR worker_id = ?", userID, userID).
		Order("id DESC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (repo *Chats) CreateMessage(ctx context.Context, message *entities.Message) error {
	return repo.db.WithContext(ctx).Create(message).Error
}

// GetMessages returns a chat's messages oldest first, the order a polling
// client renders them in.
func (repo *Chats) GetMessages(ctx context.Context, chatID int) ([]entities.Message, error) {
	var messages []entities.Message
	if err := repo.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *Chats) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Chat{}).Count(&count).Error
	return count, err
}

func (repo *Chats) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Message{}).Count(&count).Error
	return count, err
}
