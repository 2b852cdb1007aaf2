package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

func date(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func TestNextForClient_PicksEarliestDate(t *testing.T) {
	c := &models.Client{
		ID:                    "c1",
		Name:                  "Anna Andersson",
		NextDoctorAppointment: "2024-05-10",
		NextShortContact:      "2024-05-03",
		NextTest:              "2024-06-01",
	}

	next := NextForClient(c)
	require.NotNil(t, next)
	assert.Equal(t, KindShortContact, next.Kind)
	assert.Equal(t, "2024-05-03", next.Date)
}

func TestNextForClient_OnlyDoctorDateSet(t *testing.T) {
	// Client with doctor-date 2024-05-10 and everything else empty.
	c := &models.Client{
		ID:                    "c1",
		Name:                  "Anna Andersson",
		NextDoctorAppointment: "2024-05-10",
		DoctorName:            "Dr Lind",
	}

	next := NextForClient(c)
	require.NotNil(t, next)
	assert.Equal(t, KindDoctor, next.Kind)
	assert.Equal(t, "2024-05-10", next.Date)
	assert.Equal(t, "Dr Lind", next.Person)
}

func TestNextForClient_NoDatesReturnsNil(t *testing.T) {
	c := &models.Client{ID: "c1", Name: "Anna Andersson"}
	assert.Nil(t, NextForClient(c))
}

func TestNextForClient_EqualDatesKeepKindOrder(t *testing.T) {
	c := &models.Client{
		ID:          "c1",
		NextTest:    "2024-05-10",
		NextMeeting: "2024-05-10",
	}

	next := NextForClient(c)
	require.NotNil(t, next)
	assert.Equal(t, KindTest, next.Kind, "test comes before meeting in the fixed order")
}

func TestUpcoming_DropsPastKeepsToday(t *testing.T) {
	clients := []models.Client{
		{
			ID:                    "c1",
			Name:                  "Anna",
			NextDoctorAppointment: "2024-04-30", // past
			NextShortContact:      "2024-05-01", // today
			NextTest:              "2024-05-07",
		},
	}

	got := Upcoming(clients, date("2024-05-01"))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-01", got[0].Date)
	assert.Equal(t, "2024-05-07", got[1].Date)
	for _, e := range got {
		assert.GreaterOrEqual(t, e.Date, "2024-05-01")
	}
}

func TestUpcoming_TodayNormalizedToMidnight(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "Anna", NextMeeting: "2024-05-01"},
	}

	// Late in the day, the same-day meeting must still be included.
	lateToday := time.Date(2024, 5, 1, 23, 15, 0, 0, time.UTC)
	got := Upcoming(clients, lateToday)
	require.Len(t, got, 1)
	assert.Equal(t, KindMeeting, got[0].Kind)
}

func TestUpcoming_SortedAndCapped(t *testing.T) {
	var clients []models.Client
	dates := []string{
		"2024-05-09", "2024-05-03", "2024-05-06", "2024-05-02",
		"2024-05-08", "2024-05-05", "2024-05-04", "2024-05-10",
		"2024-05-07", "2024-05-11",
	}
	for i, d := range dates {
		clients = append(clients, models.Client{
			ID:                    string(rune('a' + i)),
			NextDoctorAppointment: d,
		})
	}

	got := Upcoming(clients, date("2024-05-01"))
	require.Len(t, got, UpcomingLimit)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Date, got[i].Date)
	}
	// The two latest dates fell off the end.
	assert.Equal(t, "2024-05-09", got[len(got)-1].Date)
}

func TestUpcoming_SameClientSameDateFollowsKindOrder(t *testing.T) {
	clients := []models.Client{
		{
			ID:                   "c1",
			Name:                 "Anna",
			NextMeeting:          "2024-05-10",
			NextTest:             "2024-05-10",
			NextLongConversation: "2024-05-10",
			NextShortContact:     "2024-05-10",
		},
	}

	got := Upcoming(clients, date("2024-05-01"))
	require.Len(t, got, 4)
	assert.Equal(t, []Kind{KindShortContact, KindLongConversation, KindTest, KindMeeting},
		[]Kind{got[0].Kind, got[1].Kind, got[2].Kind, got[3].Kind})
}

func TestUpcoming_EmptyInput(t *testing.T) {
	assert.Empty(t, Upcoming(nil, date("2024-05-01")))
}

func TestCountWithinWeek(t *testing.T) {
	entries := []Entry{
		{Date: "2024-05-01"}, // Wednesday
		{Date: "2024-05-05"}, // the coming Sunday
		{Date: "2024-05-06"}, // next Monday
	}

	// 2024-05-01 is a Wednesday; the week runs through Sunday the 5th.
	assert.Equal(t, 2, CountWithinWeek(entries, date("2024-05-01")))
}

func TestInactive(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", InterventionStatus: models.StatusPlanned},
		{ID: "c2", InterventionStatus: models.StatusPlanned, NextTest: "2024-05-10"},
		{ID: "c3", InterventionStatus: models.StatusCompleted},
	}

	got := Inactive(clients)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("long_conversation")
	assert.True(t, ok)
	assert.Equal(t, KindLongConversation, k)

	_, ok = ParseKind("massage")
	assert.False(t, ok)
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "Läkartid", KindDoctor.Label())
	assert.Equal(t, "Kort kontakt", KindShortContact.Label())
	assert.Equal(t, "Möte", KindMeeting.Label())
}

func TestSetFields(t *testing.T) {
	var c models.Client
	SetFields(&c, KindShortContact, "2024-05-10", "Maria", "Uppföljning per telefon")

	date, person, details := Fields(&c, KindShortContact)
	assert.Equal(t, "2024-05-10", date)
	assert.Equal(t, "Maria", person)
	assert.Equal(t, "Uppföljning per telefon", details)

	// The other kinds stay untouched.
	date, _, _ = Fields(&c, KindDoctor)
	assert.Empty(t, date)
}
