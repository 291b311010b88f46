package entities

import (
	"errors"
	"time"
)

type BusinessArea string

const (
	AreaDevOps        BusinessArea = "DevOps"
	AreaWebDev        BusinessArea = "Web Development"
	AreaMobileDev     BusinessArea = "Mobile Development"
	AreaDataScience   BusinessArea = "Data Science"
	AreaAIML          BusinessArea = "AI/ML"
	AreaCybersecurity BusinessArea = "Cybersecurity"
	AreaBlockchain    BusinessArea = "Blockchain"
	AreaGameDev       BusinessArea = "Game Development"
	AreaUIUXDesign    BusinessArea = "UI/UX Design"
)

var businessAreas = map[BusinessArea]struct{}{
	AreaDevOps: {}, AreaWebDev: {}, AreaMobileDev: {}, AreaDataScience: {},
	AreaAIML: {}, AreaCybersecurity: {}, AreaBlockchain: {}, AreaGameDev: {},
	AreaUIUXDesign: {},
}

func ToBusinessArea(s string) (BusinessArea, error) {
	if _, ok := businessAreas[BusinessArea(s)]; !ok {
		return "", errors.New("invalid business area: " + s)
	}
	return BusinessArea(s), nil
}

// Company belongs to an employer. The (owner, title) pair is unique, so one
// employer can't register the same company twice but two employers may share
// a title.
type Company struct {
	ID            int    `gorm:"primaryKey"`
	OwnerID       int    `gorm:"index;not null"`
	Title         string `gorm:"not null"`
	City          string
	BusinessAreas StringList `gorm:"type:text"`
	CreatedAt     time.Time
}
