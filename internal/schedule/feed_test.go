package schedule

import (
	"testing"
	"time"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday. The surrounding Monday-to-Sunday week is Mar 10 - Mar 16.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)

func TestThisWeek(t *testing.T) {
	pred := ThisWeek()

	inWeek := Schedule{Date: "2025-03-14", StartTime: "19:00"}
	monday := Schedule{Date: "2025-03-10", StartTime: "00:00"}
	sunday := Schedule{Date: "2025-03-16", StartTime: "23:00"}
	lastWeek := Schedule{Date: "2025-03-09", StartTime: "19:00"}
	nextWeek := Schedule{Date: "2025-03-17", StartTime: "00:00"}

	assert.True(t, pred(inWeek, testNow))
	assert.True(t, pred(monday, testNow))
	assert.True(t, pred(sunday, testNow))
	assert.False(t, pred(lastWeek, testNow))
	assert.False(t, pred(nextWeek, testNow))
}

func TestThisWeek_SundayNow(t *testing.T) {
	// On a Sunday the week still starts the previous Monday.
	sundayNow := time.Date(2025, 3, 16, 12, 0, 0, 0, time.Local)
	pred := ThisWeek()

	assert.True(t, pred(Schedule{Date: "2025-03-10", StartTime: "08:00"}, sundayNow))
	assert.False(t, pred(Schedule{Date: "2025-03-17", StartTime: "08:00"}, sundayNow))
}

func TestHasParticipant(t *testing.T) {
	s := Schedule{Participants: []int{1, 2, 3}}

	assert.True(t, HasParticipant(2)(s, testNow))
	assert.False(t, HasParticipant(9)(s, testNow))
}

func TestUpcoming(t *testing.T) {
	future := Schedule{Date: "2025-03-13", StartTime: "19:00"}
	past := Schedule{Date: "2025-03-11", StartTime: "19:00"}

	assert.True(t, Upcoming()(future, testNow))
	assert.False(t, Upcoming()(past, testNow))
}

func TestBuildFeed_WeekWindow(t *testing.T) {
	schedules := []Schedule{
		{ID: 1, Date: "2025-03-09", StartTime: "19:00", Status: StatusPending}, // before window
		{ID: 2, Date: "2025-03-14", StartTime: "19:00", Status: StatusPending}, // within
		{ID: 3, Date: "2025-03-11", StartTime: "08:00", Status: StatusPending}, // within
		{ID: 4, Date: "2025-03-20", StartTime: "19:00", Status: StatusPending}, // after window
	}

	feed := BuildFeed(schedules, nil, ThisWeek(), testNow)

	require.Len(t, feed, 2)
	// Ascending by start datetime.
	assert.Equal(t, 3, feed[0].ID)
	assert.Equal(t, 2, feed[1].ID)
}

func TestBuildFeed_PendingOnly(t *testing.T) {
	schedules := []Schedule{
		{ID: 1, Date: "2025-03-11", StartTime: "19:00", Status: StatusDone},
		{ID: 2, Date: "2025-03-12", StartTime: "19:00", Status: StatusPending},
	}

	feed := BuildFeed(schedules, nil, StatusIs(StatusPending), testNow)

	require.Len(t, feed, 1)
	assert.Equal(t, 2, feed[0].ID)
}

func TestBuildFeed_DropsUnparseableDates(t *testing.T) {
	schedules := []Schedule{
		{ID: 1, Date: "not-a-date", StartTime: "19:00", Status: StatusPending},
		{ID: 2, Date: "2025-03-12", StartTime: "25:99", Status: StatusPending},
		{ID: 3, Date: "2025-03-12", StartTime: "19:00", Status: StatusPending},
	}

	feed := BuildFeed(schedules, nil, StatusIs(StatusPending), testNow)

	require.Len(t, feed, 1)
	assert.Equal(t, 3, feed[0].ID)
}

func TestBuildFeed_StableTieBreak(t *testing.T) {
	schedules := []Schedule{
		{ID: 7, Date: "2025-03-12", StartTime: "19:00", Status: StatusPending},
		{ID: 3, Date: "2025-03-12", StartTime: "19:00", Status: StatusPending},
		{ID: 5, Date: "2025-03-12", StartTime: "19:00", Status: StatusPending},
	}

	feed := BuildFeed(schedules, nil, StatusIs(StatusPending), testNow)

	require.Len(t, feed, 3)
	assert.Equal(t, []int{feed[0].ID, feed[1].ID, feed[2].ID}, []int{7, 3, 5})
}

func TestBuildFeed_Enrichment(t *testing.T) {
	courts := []court.Court{
		{ID: 1, Name: "Q7", PricePerHour: 150000},
	}
	schedules := []Schedule{
		// Snapshot price is stale: the court's rate went up since booking.
		{ID: 1, CourtID: 1, Date: "2025-03-12", StartTime: "19:00", Hours: 2, NumberOfCourts: 2, CourtPrice: 400000, Status: StatusPending},
		// References a deleted court.
		{ID: 2, CourtID: 99, Date: "2025-03-13", StartTime: "19:00", Hours: 1, NumberOfCourts: 1, Status: StatusPending},
	}

	feed := BuildFeed(schedules, courts, StatusIs(StatusPending), testNow)

	require.Len(t, feed, 2)

	require.NotNil(t, feed[0].Court)
	assert.Equal(t, "Q7", feed[0].Court.Name)
	// 2 courts * 2 hours * 150000, independent of the stored 400000 snapshot.
	assert.Equal(t, 600000.0, feed[0].TotalCourtPrice)
	assert.Equal(t, 400000.0, feed[0].CourtPrice)

	assert.Nil(t, feed[1].Court)
	assert.Equal(t, 0.0, feed[1].TotalCourtPrice)
}

func TestBuildFeed_State(t *testing.T) {
	schedules := []Schedule{
		{ID: 1, Date: "2025-03-12", StartTime: "19:00", Hours: 2, Status: StatusPending},
	}

	feed := BuildFeed(schedules, nil, StatusIs(StatusPending), testNow)

	require.Len(t, feed, 1)
	assert.Equal(t, StateUpcoming, feed[0].State)
}
