package entities

import "time"

// Resume is a worker's single profile document; the unique index on OwnerID
// enforces at most one resume per user at the store level.
type Resume struct {
	ID              int `gorm:"primaryKey"`
	OwnerID         int `gorm:"uniqueIndex;not null"`
	Title           string
	Languages       StringList `gorm:"type:text"`
	Skills          StringList `gorm:"type:text"`
	Description     string
	YearsExperience float64
	CreatedAt       time.Time
}
