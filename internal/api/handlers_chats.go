package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/maxaizer/job-platform/pkg/apperrors"
	"github.com/samber/lo"
)

type chatRequest struct {
	EmploymentID int `json:"employmentId"`
	WorkerID     int `json:"workerId"`
}

func (s *Server) createChat(c *fiber.Ctx) error {

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	chat, err := s.svc.Chats.Create(c.Context(), identity(c), services.CreateChatInput{
		EmployerID: req.EmploymentID,
		WorkerID:   req.WorkerID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toChatResponse(*chat))
}

func (s *Server) listChats(c *fiber.Ctx) error {

	chats, err := s.svc.Chats.GetMine(c.Context(), identity(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(chats, func(chat entities.Chat, _ int) chatResponse {
		return toChatResponse(chat)
	}))
}

func (s *Server) getChat(c *fiber.Ctx) error {

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid chat id"))
	}

	chat, err := s.svc.Chats.GetByID(c.Context(), identity(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toChatResponse(*chat))
}

func (s *Server) chatMessages(c *fiber.Ctx) error {

	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, apperrors.Validation("invalid chat id"))
	}

	messages, err := s.svc.Chats.GetMessages(c.Context(), identity(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(lo.Map(messages, func(m entities.Message, _ int) messageResponse {
		return toMessageResponse(m)
	}))
}

type messageRequest struct {
	SenderID int    `json:"senderId"`
	ChatID   int    `json:"chatId"`
	Text     string `json:"text"`
}

func (s *Server) sendMessage(c *fiber.Ctx) error {

	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.Validation("invalid request body"))
	}

	message, err := s.svc.Chats.SendMessage(c.Context(), identity(c), services.SendMessageInput{
		ChatID:   req.ChatID,
		SenderID: req.SenderID,
		Text:     req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toMessageResponse(*message))
}
