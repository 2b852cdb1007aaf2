package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sention-aktivitus/klientportal-api/internal/domain/appointment"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

func TestDaysGrid_MonthStartingOnWednesday(t *testing.T) {
	// May 2024 starts on a Wednesday: Monday and Tuesday are blank.
	grid := DaysGrid(2024, time.May)

	require.Len(t, grid, 2+31)
	assert.Equal(t, 0, grid[0])
	assert.Equal(t, 0, grid[1])
	assert.Equal(t, 1, grid[2])
	assert.Equal(t, 31, grid[len(grid)-1])
}

func TestDaysGrid_MonthStartingOnMonday(t *testing.T) {
	// April 2024 starts on a Monday: no blanks at all.
	grid := DaysGrid(2024, time.April)

	require.Len(t, grid, 30)
	assert.Equal(t, 1, grid[0])
}

func TestDaysGrid_MonthStartingOnSunday(t *testing.T) {
	// September 2024 starts on a Sunday: six blanks in a Monday-first week.
	grid := DaysGrid(2024, time.September)

	require.Len(t, grid, 6+30)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 0, grid[i])
	}
	assert.Equal(t, 1, grid[6])
}

func TestDaysGrid_LeapFebruary(t *testing.T) {
	// February 2024 starts on a Thursday and has 29 days.
	grid := DaysGrid(2024, time.February)

	require.Len(t, grid, 3+29)
	assert.Equal(t, 29, grid[len(grid)-1])
}

func TestMonthIndex_OnlyRequestedMonth(t *testing.T) {
	clients := []models.Client{
		{
			ID:                    "c1",
			Name:                  "Anna",
			NextDoctorAppointment: "2024-05-10",
			NextShortContact:      "2024-06-10", // other month
			NextTest:              "2023-05-10", // other year, same month number
		},
	}

	index := MonthIndex(clients, 2024, time.May)

	require.Len(t, index, 1)
	require.Len(t, index[10], 1)
	assert.Equal(t, appointment.KindDoctor, index[10][0].Kind)
}

func TestMonthIndex_ClientAppearsOncePerKind(t *testing.T) {
	// Two kinds on the same day are two entries; there is no
	// de-duplication by client.
	clients := []models.Client{
		{
			ID:               "c1",
			Name:             "Anna",
			NextTest:         "2024-05-07",
			NextMeeting:      "2024-05-07",
			NextShortContact: "2024-05-20",
		},
	}

	index := MonthIndex(clients, 2024, time.May)

	require.Len(t, index[7], 2)
	assert.Equal(t, appointment.KindTest, index[7][0].Kind)
	assert.Equal(t, appointment.KindMeeting, index[7][1].Kind)
	require.Len(t, index[20], 1)
}

func TestMonthIndex_CarriesPersonAndDetails(t *testing.T) {
	clients := []models.Client{
		{
			ID:                    "c1",
			Name:                  "Anna",
			NextDoctorAppointment: "2024-05-10",
			DoctorName:            "Dr Lind",
			DoctorDetails:         "Årskontroll",
		},
	}

	index := MonthIndex(clients, 2024, time.May)

	require.Len(t, index[10], 1)
	assert.Equal(t, "Dr Lind", index[10][0].Person)
	assert.Equal(t, "Årskontroll", index[10][0].Details)
	assert.Equal(t, "Läkartid", index[10][0].KindLabel)
}

func TestIsToday(t *testing.T) {
	now := time.Date(2024, time.May, 15, 9, 30, 0, 0, time.UTC)

	assert.True(t, IsToday(2024, time.May, 15, now))
	// Same day number in another displayed month must not highlight.
	assert.False(t, IsToday(2024, time.June, 15, now))
	assert.False(t, IsToday(2023, time.May, 15, now))
	assert.False(t, IsToday(2024, time.May, 14, now))
}
