package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecms/internal/model"
	"sitecms/internal/store"
)

func TestUpsertByDayCreatesThenUpdates(t *testing.T) {
	st := store.NewMemStore()
	repo := NewBusinessHourRepo(st, testLogger())
	ctx := context.Background()

	first, err := repo.UpsertByDay(ctx, model.BusinessHour{
		Day:       "monday",
		IsOpen:    true,
		OpenTime:  "09:00",
		CloseTime: "17:00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Equal(t, 1, st.Count(collHours))

	// Same day again: same record, updated in place.
	second, err := repo.UpsertByDay(ctx, model.BusinessHour{
		Day:       "monday",
		IsOpen:    true,
		OpenTime:  "10:00",
		CloseTime: "16:00",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second, "upsert keeps the existing identifier")
	assert.Equal(t, 1, st.Count(collHours), "no duplicate record for the day")

	h, err := repo.GetByDay(ctx, "monday")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "10:00", h.OpenTime)
}

func TestUpsertByDayNormalizesDayCase(t *testing.T) {
	st := store.NewMemStore()
	repo := NewBusinessHourRepo(st, testLogger())
	ctx := context.Background()

	first, err := repo.UpsertByDay(ctx, model.BusinessHour{
		Day:      "Monday",
		IsOpen:   true,
		OpenTime: "09:00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Equal(t, 1, st.Count(collHours))

	// Any casing or padding of the same day addresses the same record.
	second, err := repo.UpsertByDay(ctx, model.BusinessHour{
		Day:      " MONDAY ",
		IsOpen:   true,
		OpenTime: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, st.Count(collHours))

	h, err := repo.GetByDay(ctx, "Monday")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "monday", h.Day, "stored day name is the lowercase form")
	assert.Equal(t, "10:00", h.OpenTime)
}

func TestUpsertByDayRejectsInvalidDay(t *testing.T) {
	st := store.NewMemStore()
	repo := NewBusinessHourRepo(st, testLogger())

	_, err := repo.UpsertByDay(context.Background(), model.BusinessHour{Day: "moonday"})
	assert.ErrorIs(t, err, ErrInvalidDay)
	assert.Equal(t, 0, st.Count(collHours))
}

func TestUpsertByDayDefaultsOrderToDayRank(t *testing.T) {
	st := store.NewMemStore()
	repo := NewBusinessHourRepo(st, testLogger())
	ctx := context.Background()

	_, err := repo.UpsertByDay(ctx, model.BusinessHour{Day: "wednesday", IsOpen: true})
	require.NoError(t, err)

	h, err := repo.GetByDay(ctx, "wednesday")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, model.DayOrder("wednesday"), h.Order)
}

func TestHoursListInWeekOrder(t *testing.T) {
	st := store.NewMemStore()
	repo := NewBusinessHourRepo(st, testLogger())
	ctx := context.Background()

	for _, day := range []string{"friday", "monday", "wednesday"} {
		_, err := repo.UpsertByDay(ctx, model.BusinessHour{Day: day, IsOpen: true})
		require.NoError(t, err)
	}

	hours, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, hours, 3)
	assert.Equal(t, "monday", hours[0].Day)
	assert.Equal(t, "wednesday", hours[1].Day)
	assert.Equal(t, "friday", hours[2].Day)
}

func TestGetByDayMissingIsNilNil(t *testing.T) {
	st := store.NewMemStore()
	repo := NewBusinessHourRepo(st, testLogger())

	h, err := repo.GetByDay(context.Background(), "sunday")
	assert.NoError(t, err)
	assert.Nil(t, h)
}
