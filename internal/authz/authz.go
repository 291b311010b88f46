// Package authz holds the per-operation authorization rules. Every rule is a
// pure function over the authenticated identity and entities already loaded
// from the store; nil means allow, anything else is a taxonomy error the API
// layer maps to a status code.
package authz

import (
	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/pkg/apperrors"
)

// Identity is the (user id, role) pair recovered from a validated token.
type Identity struct {
	UserID int
	Role   entities.Role
}

func CanCreateCompany(id Identity) error {
	if id.Role != entities.RoleEmployer {
		return apperrors.Forbidden("only employers can create companies")
	}
	return nil
}

func CanCreateJob(id Identity, company entities.Company) error {
	if company.OwnerID != id.UserID {
		return apperrors.Forbidden("cannot create job for another user's company")
	}
	return nil
}

func CanCreateResume(id Identity, ownerID int) error {
	if ownerID != id.UserID {
		return apperrors.Forbidden("cannot create resume for another user")
	}
	if id.Role != entities.RoleWorker {
		return apperrors.Forbidden("only workers can create resumes")
	}
	return nil
}

func CanReadResume(id Identity, ownerID int) error {
	if ownerID != id.UserID {
		return apperrors.Forbidden("cannot access another user's resume")
	}
	return nil
}

func CanApplyWithResume(id Identity, resume entities.Resume) error {
	if resume.OwnerID != id.UserID {
		return apperrors.Forbidden("cannot apply with another user's resume")
	}
	return nil
}

func CanAccessChat(id Identity, chat entities.Chat) error {
	if !chat.HasParticipant(id.UserID) {
		return apperrors.Forbidden("access denied to this chat")
	}
	return nil
}

func CanSendMessage(id Identity, chat entities.Chat, senderID int) error {
	if senderID != id.UserID {
		return apperrors.Forbidden("cannot send message as another user")
	}
	if !chat.HasParticipant(senderID) {
		return apperrors.Forbidden("you are not a participant of this chat")
	}
	return nil
}

func CanListEmployerJobs(id Identity) error {
	if id.Role != entities.RoleEmployer {
		return apperrors.Forbidden("only employers can access this endpoint")
	}
	return nil
}
