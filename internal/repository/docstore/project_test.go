package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecms/internal/model"
	"sitecms/internal/store"
)

func TestProjectListFilteredQuery(t *testing.T) {
	st := store.NewMemStore()
	repo := NewProjectRepo(st, testLogger())
	ctx := context.Background()

	st.Seed(collProjects, "projects:a", map[string]any{"title": "A", "order": 2})
	st.Seed(collProjects, "projects:b", map[string]any{"title": "B", "order": 1})
	st.Seed(collProjects, "projects:c", map[string]any{"title": "C", "order": 3, "isActive": false})

	projects, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "B", projects[0].Title)
	assert.Equal(t, "A", projects[1].Title)
}

func TestProjectListFallsBackToRawScan(t *testing.T) {
	st := store.NewMemStore()
	repo := NewProjectRepo(st, testLogger())
	ctx := context.Background()

	st.Seed(collProjects, "projects:a", map[string]any{"title": "A", "order": 2})
	st.Seed(collProjects, "projects:b", map[string]any{"title": "B", "order": 1, "isActive": false})

	// The filtered query fails; the raw scan must still serve the data with
	// the active predicate and ordering applied client-side.
	st.FindErr = errors.New("query shape not supported")

	projects, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "A", projects[0].Title)
}

func TestProjectListPlaceholderWhenAllStrategiesFail(t *testing.T) {
	st := store.NewMemStore()
	repo := NewProjectRepo(st, testLogger())
	ctx := context.Background()

	st.Seed(collProjects, "projects:a", map[string]any{"title": "A"})
	st.FindErr = errors.New("find down")
	st.AllErr = errors.New("scan down")

	projects, err := repo.List(ctx, true)
	require.NoError(t, err, "list never surfaces store failures")
	require.Len(t, projects, 1)
	assert.Equal(t, model.PlaceholderProjectID, projects[0].ID)
	assert.True(t, projects[0].Placeholder)
}

func TestProjectListPlaceholderWhenEmpty(t *testing.T) {
	st := store.NewMemStore()
	repo := NewProjectRepo(st, testLogger())

	projects, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].Placeholder)
	assert.Equal(t, []string{"No features specified"}, projects[0].Features)
}

func TestProjectListPlaceholderWhenAllInactive(t *testing.T) {
	st := store.NewMemStore()
	repo := NewProjectRepo(st, testLogger())
	ctx := context.Background()

	st.Seed(collProjects, "projects:a", map[string]any{"title": "A", "isActive": false})

	projects, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].Placeholder)

	// Without the active filter the stored record is served as-is.
	projects, err = repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "A", projects[0].Title)
	assert.False(t, projects[0].Placeholder)
}

func TestProjectCoercionDefaultsOnRead(t *testing.T) {
	st := store.NewMemStore()
	repo := NewProjectRepo(st, testLogger())
	ctx := context.Background()

	// A legacy document with none of the optional fields.
	st.Seed(collProjects, "projects:legacy", map[string]any{"title": "Legacy"})

	p, err := repo.GetByID(ctx, "projects:legacy")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"No features specified"}, p.Features)
	assert.Equal(t, []string{}, p.Technologies)
	assert.True(t, p.IsActive)
}
