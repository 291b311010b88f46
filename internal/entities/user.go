package entities

import (
	"errors"
	"time"
)

type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(RoleWorker):
		return RoleWorker, nil
	case string(RoleEmployer):
		return RoleEmployer, nil
	default:
		return "", errors.New("role must be 'worker' or 'employer'")
	}
}

// User is the identity every other entity hangs off. Role is fixed at
// registration and never changes afterwards.
type User struct {
	ID           int    `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	Surname      string `gorm:"not null"`
	Age          int    `gorm:"not null"`
	Role         Role   `gorm:"type:text;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}
