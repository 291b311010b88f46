package entities

import "time"

// Application links a resume to a job. A worker applies to a given job at
// most once: the (resume_id, job_id) pair is unique.
type Application struct {
	ID        int `gorm:"primaryKey"`
	ResumeID  int `gorm:"index;not null"`
	JobID     int `gorm:"index;not null"`
	Message   *string
	CreatedAt time.Time
}
