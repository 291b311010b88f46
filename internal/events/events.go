package events

import "github.com/maxaizer/job-platform/internal/entities"

var (
	UserRegisteredTopic       = "UserRegisteredEvent"
	ApplicationSubmittedTopic = "ApplicationSubmittedEvent"
	MessageSentTopic          = "MessageSentEvent"
)

type UserRegistered struct {
	UserID int
	Role   entities.Role
}

type ApplicationSubmitted struct {
	ApplicationID int
	ResumeID      int
	JobID         int
}

type MessageSent struct {
	MessageID int
	ChatID    int
	SenderID  int
}
