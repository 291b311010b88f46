package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToRole_KnownLabels_Parse(t *testing.T) {

	role, err := ToRole("worker")
	assert.NoError(t, err)
	assert.Equal(t, RoleWorker, role)

	role, err = ToRole("employer")
	assert.NoError(t, err)
	assert.Equal(t, RoleEmployer, role)
}

func Test_ToRole_UnknownLabel_ReturnsError(t *testing.T) {
	_, err := ToRole("admin")
	assert.Error(t, err)
}

func Test_ToBusinessArea_KnownLabel_Parses(t *testing.T) {

	area, err := ToBusinessArea("Web Development")
	assert.NoError(t, err)
	assert.Equal(t, AreaWebDev, area)
}

func Test_ToBusinessArea_UnknownLabel_ReturnsError(t *testing.T) {
	_, err := ToBusinessArea("Gardening")
	assert.Error(t, err)
}

func Test_ToSchedule_KnownLabel_Parses(t *testing.T) {

	schedule, err := ToSchedule("полная занятость")
	assert.NoError(t, err)
	assert.Equal(t, ScheduleFullTime, schedule)
}

func Test_ToSchedule_UnknownLabel_ReturnsError(t *testing.T) {
	_, err := ToSchedule("full time")
	assert.Error(t, err)
}

func Test_ToShift_KnownLabel_Parses(t *testing.T) {

	shift, err := ToShift("5/2")
	assert.NoError(t, err)
	assert.Equal(t, ShiftFiveTwo, shift)
}

func Test_ToShift_UnknownLabel_ReturnsError(t *testing.T) {
	_, err := ToShift("7/0")
	assert.Error(t, err)
}
