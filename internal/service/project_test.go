package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sitecms/internal/model"
	"sitecms/internal/repository/mocks"
	storagemocks "sitecms/internal/storage/mocks"
)

func TestProjectList(t *testing.T) {
	repo := new(mocks.MockProjectRepository)
	svc := NewProjectService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	want := []model.Project{{Title: "A"}}
	repo.On("List", ctx, true).Return(want, nil)

	got := svc.List(ctx, true)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestProjectListDegradesToPlaceholder(t *testing.T) {
	repo := new(mocks.MockProjectRepository)
	svc := NewProjectService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	repo.On("List", ctx, true).Return(nil, errors.New("store down"))

	got := svc.List(ctx, true)
	require.Len(t, got, 1)
	assert.True(t, got[0].Placeholder)
}

func TestProjectGet(t *testing.T) {
	repo := new(mocks.MockProjectRepository)
	svc := NewProjectService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		want := &model.Project{Title: "A"}
		repo.On("GetByID", ctx, "projects:a").Return(want, nil).Once()

		got, err := svc.Get(ctx, "projects:a")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("absent maps to ErrNotFound", func(t *testing.T) {
		repo.On("GetByID", ctx, "projects:x").Return(nil, nil).Once()

		_, err := svc.Get(ctx, "projects:x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestProjectCreateEnvelope(t *testing.T) {
	repo := new(mocks.MockProjectRepository)
	svc := NewProjectService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fields := map[string]any{"title": "A", "description": "d", "category": "web"}
		repo.On("Create", ctx, fields).Return("projects:new", nil).Once()

		res := svc.Create(ctx, fields)
		assert.True(t, res.Success)
		assert.Equal(t, "projects:new", res.ID)
		assert.Empty(t, res.Error)
	})

	t.Run("missing required field", func(t *testing.T) {
		res := svc.Create(ctx, map[string]any{"title": "A"})
		assert.False(t, res.Success)
		assert.Empty(t, res.ID)
		assert.Contains(t, res.Error, "description")
	})

	t.Run("store failure", func(t *testing.T) {
		fields := map[string]any{"title": "A", "description": "d", "category": "web"}
		repo.On("Create", ctx, fields).Return("", errors.New("write refused")).Once()

		res := svc.Create(ctx, fields)
		assert.False(t, res.Success)
		assert.Equal(t, "write refused", res.Error)
	})
}

func TestProjectUpdateAndDeleteEnvelopes(t *testing.T) {
	repo := new(mocks.MockProjectRepository)
	svc := NewProjectService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	repo.On("Update", ctx, "projects:a", mock.Anything).Return(nil).Once()
	res := svc.Update(ctx, "projects:a", map[string]any{"title": "B"})
	assert.True(t, res.Success)
	assert.Equal(t, "projects:a", res.ID)

	res = svc.Update(ctx, "", map[string]any{"title": "B"})
	assert.False(t, res.Success)

	repo.On("Delete", ctx, "projects:a").Return(nil).Once()
	res = svc.Delete(ctx, "projects:a")
	assert.True(t, res.Success)

	repo.On("Delete", ctx, "projects:b").Return(errors.New("nope")).Once()
	res = svc.Delete(ctx, "projects:b")
	assert.False(t, res.Success)
	assert.Equal(t, "nope", res.Error)
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("success patches imageUrl", func(t *testing.T) {
		repo := new(mocks.MockProjectRepository)
		images := new(storagemocks.MockStorage)
		svc := NewProjectService(repo, images, zerolog.Nop())

		repo.On("GetByID", ctx, "projects:a").Return(&model.Project{}, nil)
		images.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
			Return("https://cdn.example.com/projects/img.png", nil)
		repo.On("Update", ctx, "projects:a", map[string]any{
			"imageUrl": "https://cdn.example.com/projects/img.png",
		}).Return(nil)

		url, err := svc.UploadImage(ctx, "projects:a", strings.NewReader("img"), "photo.png", "image/png", 3)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/projects/img.png", url)

		// Stored key keeps the original extension.
		key := images.Calls[0].Arguments.String(1)
		assert.True(t, strings.HasPrefix(key, "projects/"))
		assert.True(t, strings.HasSuffix(key, ".png"))
	})

	t.Run("patch failure rolls back the object", func(t *testing.T) {
		repo := new(mocks.MockProjectRepository)
		images := new(storagemocks.MockStorage)
		svc := NewProjectService(repo, images, zerolog.Nop())

		repo.On("GetByID", ctx, "projects:a").Return(&model.Project{}, nil)
		images.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
			Return("https://cdn.example.com/projects/img.png", nil)
		repo.On("Update", ctx, "projects:a", mock.Anything).Return(errors.New("merge failed"))
		images.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err := svc.UploadImage(ctx, "projects:a", strings.NewReader("img"), "photo.png", "image/png", 3)
		require.Error(t, err)
		images.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))
	})

	t.Run("unknown project", func(t *testing.T) {
		repo := new(mocks.MockProjectRepository)
		images := new(storagemocks.MockStorage)
		svc := NewProjectService(repo, images, zerolog.Nop())

		repo.On("GetByID", ctx, "projects:x").Return(nil, nil)

		_, err := svc.UploadImage(ctx, "projects:x", strings.NewReader("img"), "photo.png", "image/png", 3)
		assert.ErrorIs(t, err, ErrNotFound)
		images.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
