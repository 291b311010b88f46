package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-platform/internal/authz"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/events"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/pkg/errors"
)

type chatRepository interface {
	Create(ctx context.Context, chat *entities.Chat) error
	GetByID(ctx context.Context, id int) (*entities.Chat, error)
	GetByParticipant(ctx context.Context, userID int) ([]entities.Chat, error)
	CreateMessage(ctx context.Context, message *entities.Message) error
	GetMessages(ctx context.Context, chatID int) ([]entities.Message, error)
}

type ChatService struct {
	chats chatRepository
	users userRepository
	bus   EventBus.Bus
}

func NewChatService(chats chatRepository, users userRepository, bus EventBus.Bus) (*ChatService, error) {
	if chats == nil {
		return nil, errors.New("chats repository is nil")
	}
	if users == nil {
		return nil, errors.New("users repository is nil")
	}
	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	return &ChatService{chats: chats, users: users, bus: bus}, nil
}

type CreateChatInput struct {
	EmployerID int
	WorkerID   int
}

// Create opens a chat between two existing users. Any authenticated user
// may open one; only the pair itself is constrained (it must be new).
func (s *ChatService) Create(ctx context.Context, id authz.Identity, input CreateChatInput) (*entities.Chat, error) {

	for _, userID := range []int{input.EmployerID, input.WorkerID} {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperrors.NotFound("one or more users")
		}
	}

	chat := &entities.Chat{EmployerID: input.EmployerID, WorkerID: input.WorkerID}
	if err := s.chats.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) GetMine(ctx context.Context, id authz.Identity) ([]entities.Chat, error) {
	return s.chats.GetByParticipant(ctx, id.UserID)
}

func (s *ChatService) GetByID(ctx context.Context, id authz.Identity, chatID int) (*entities.Chat, error) {

	chat, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, apperrors.NotFound("chat")
	}

	if err = authz.CanAccessChat(id, *chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) GetMessages(ctx context.Context, id authz.Identity, chatID int) ([]entities.Message, error) {

	if _, err := s.GetByID(ctx, id, chatID); err != nil {
		return nil, err
	}
	return s.chats.GetMessages(ctx, chatID)
}

type SendMessageInput struct {
	ChatID   int
	SenderID int
	Text     string
}

func (s *ChatService) SendMessage(ctx context.Context, id authz.Identity, input SendMessageInput) (*entities.Message, error) {

	if input.Text == "" {
		return nil, apperrors.Validation("text is required")
	}

	chat, err := s.chats.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, apperrors.NotFound("chat")
	}

	if err = authz.CanSendMessage(id, *chat, input.SenderID); err != nil {
		return nil, err
	}

	message := &entities.Message{
		ChatID:   input.ChatID,
		SenderID: input.SenderID,
		Text:     input.Text,
	}

	if err = s.chats.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	s.bus.Publish(events.MessageSentTopic, events.MessageSent{
		MessageID: message.ID,
		ChatID:    message.ChatID,
		SenderID:  message.SenderID,
	})

	return message, nil
}
