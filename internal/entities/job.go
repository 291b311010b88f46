package entities

import (
	"errors"
	"time"
)

type Schedule string

const (
	ScheduleFullTime Schedule = "полная занятость"
	SchedulePartTime Schedule = "частичная занятость"
	ScheduleFlexible Schedule = "гибкий график"
	ScheduleShift    Schedule = "сменный график"
	ScheduleRemote   Schedule = "удаленно"
	ScheduleHybrid   Schedule = "гибрид"
)

func ToSchedule(s string) (Schedule, error) {
	switch s {
	case string(ScheduleFullTime), string(SchedulePartTime), string(ScheduleFlexible),
		string(ScheduleShift), string(ScheduleRemote), string(ScheduleHybrid):
		return Schedule(s), nil
	default:
		return "", errors.New("invalid work schedule: " + s)
	}
}

type Shift string

const (
	ShiftFiveTwo  Shift = "5/2"
	ShiftTwoTwo   Shift = "2/2"
	ShiftThreeTwo Shift = "3/2"
	ShiftOneOne   Shift = "1/1"
)

func ToShift(s string) (Shift, error) {
	switch s {
	case string(ShiftFiveTwo), string(ShiftTwoTwo), string(ShiftThreeTwo), string(ShiftOneOne):
		return Shift(s), nil
	default:
		return "", errors.New("invalid work shift: " + s)
	}
}

type Job struct {
	ID         int `gorm:"primaryKey"`
	CompanyID  int `gorm:"index;not null"`
	Salary     *float64
	Name       string `gorm:"not null"`
	Experience *string
	Schedule   *Schedule `gorm:"type:text"`
	Shift      *Shift    `gorm:"type:text"`
	Hours      *int
	Skills     StringList `gorm:"type:text"`
	Languages  StringList `gorm:"type:text"`
	Remote     bool
	Hybrid     bool
	CreatedAt  time.Time
}
