package entities

import "time"

// Chat pairs an employer-side user with a worker-side user; the pair is
// unique, so a second chat between the same two users is a conflict.
type Chat struct {
	ID         int `gorm:"primaryKey"`
	EmployerID int `gorm:"index;not null"`
	WorkerID   int `gorm:"index;not null"`
	CreatedAt  time.Time
}

// HasParticipant reports whether userID occupies one of the chat's two
// participant slots.
func (c Chat) HasParticipant(userID int) bool {
	return userID == c.EmployerID || userID == c.WorkerID
}

type Message struct {
	ID        int `gorm:"primaryKey"`
	ChatID    int `gorm:"index;not null"`
	SenderID  int `gorm:"not null"`
	Text      string
	CreatedAt time.Time
}
