package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecms/internal/store"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestServiceRepoCRUD(t *testing.T) {
	st := store.NewMemStore()
	repo := NewServiceRepo(st, testLogger())
	ctx := context.Background()

	id, err := repo.Create(ctx, map[string]any{
		"title":       "Consulting",
		"description": "Advice",
		"order":       2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	svc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "Consulting", svc.Title)
	assert.Equal(t, 2, svc.Order)
	assert.False(t, svc.CreatedAt.IsZero(), "create stamps createdAt")
	assert.False(t, svc.UpdatedAt.IsZero(), "create stamps updatedAt")

	created := svc.CreatedAt
	time.Sleep(5 * time.Millisecond)

	require.NoError(t, repo.Update(ctx, id, map[string]any{"title": "Audits"}))

	svc, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "Audits", svc.Title)
	assert.Equal(t, created, svc.CreatedAt, "update never rewrites createdAt")
	assert.True(t, svc.UpdatedAt.After(created), "update bumps updatedAt")

	require.NoError(t, repo.Delete(ctx, id))
	svc, err = repo.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Nil(t, svc, "deleted record reads as absent, not as an error")
}

func TestServiceRepoCreateIgnoresCallerTimestamps(t *testing.T) {
	st := store.NewMemStore()
	repo := NewServiceRepo(st, testLogger())
	ctx := context.Background()

	id, err := repo.Create(ctx, map[string]any{
		"title":     "Consulting",
		"id":        "services:forged",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "services:forged", id, "identity is store-assigned")

	svc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.True(t, svc.CreatedAt.Year() > 1999, "createdAt is layer-assigned")
}

func TestServiceRepoListActiveSemantics(t *testing.T) {
	st := store.NewMemStore()
	repo := NewServiceRepo(st, testLogger())
	ctx := context.Background()

	st.Seed(collServices, "services:a", map[string]any{"title": "A", "order": 2})
	st.Seed(collServices, "services:b", map[string]any{"title": "B", "order": 1, "isActive": false})
	st.Seed(collServices, "services:c", map[string]any{"title": "C", "order": 3, "isActive": true})

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2, "absence of isActive counts as active")
	assert.Equal(t, "A", active[0].Title)
	assert.Equal(t, "C", active[1].Title)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].Order, all[1].Order, all[2].Order}, "sorted by order ascending")
}

func TestStatRepoValuePolymorphism(t *testing.T) {
	st := store.NewMemStore()
	repo := NewStatRepo(st, testLogger())
	ctx := context.Background()

	numID, err := repo.Create(ctx, map[string]any{"label": "Projects delivered", "value": 120})
	require.NoError(t, err)
	textID, err := repo.Create(ctx, map[string]any{"label": "Support", "value": "24/7"})
	require.NoError(t, err)

	num, err := repo.GetByID(ctx, numID)
	require.NoError(t, err)
	require.NotNil(t, num)
	assert.True(t, num.Value.IsNumber)
	assert.Equal(t, float64(120), num.Value.Number)

	text, err := repo.GetByID(ctx, textID)
	require.NoError(t, err)
	require.NotNil(t, text)
	assert.False(t, text.Value.IsNumber)
	assert.Equal(t, "24/7", text.Value.Text)
}

func TestContactInfoRepoGetActive(t *testing.T) {
	st := store.NewMemStore()
	repo := NewContactInfoRepo(st, testLogger())
	ctx := context.Background()

	t.Run("empty collection yields nil", func(t *testing.T) {
		info, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("skips inactive records", func(t *testing.T) {
		st.Seed(collContactInfo, "contact_info:old", map[string]any{
			"email":    "old@example.com",
			"isActive": false,
		})
		st.Seed(collContactInfo, "contact_info:now", map[string]any{
			"email": "hello@example.com",
		})

		info, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "hello@example.com", info.Email)
	})
}

func TestQualifyAcceptsBareAndFullIDs(t *testing.T) {
	st := store.NewMemStore()
	repo := NewServiceRepo(st, testLogger())
	ctx := context.Background()

	st.Seed(collServices, "services:abc", map[string]any{"title": "A"})

	byFull, err := repo.GetByID(ctx, "services:abc")
	require.NoError(t, err)
	require.NotNil(t, byFull)

	byBare, err := repo.GetByID(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, byBare)
	assert.Equal(t, byFull.ID, byBare.ID)
}
