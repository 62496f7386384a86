package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sitecms/internal/model"
	"sitecms/internal/repository/mocks"
)

func TestSubmitForcesUnread(t *testing.T) {
	repo := new(mocks.MockSubmissionRepository)
	svc := NewInboxService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(fields map[string]any) bool {
		read, ok := fields["isRead"].(bool)
		return ok && !read
	})).Return("contact_submissions:new", nil)

	res := svc.Submit(ctx, map[string]any{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "Hello",
		"isRead":  true, // forged by the client, must be overridden
	})
	require.True(t, res.Success)
	assert.Equal(t, "contact_submissions:new", res.ID)
	repo.AssertExpectations(t)
}

func TestSubmitDoesNotMutateInput(t *testing.T) {
	repo := new(mocks.MockSubmissionRepository)
	svc := NewInboxService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return("contact_submissions:new", nil)

	fields := map[string]any{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "Hello",
		"isRead":  true,
	}
	res := svc.Submit(ctx, fields)
	require.True(t, res.Success)
	assert.Equal(t, true, fields["isRead"], "caller's map is left as given")
	assert.Len(t, fields, 4)
}

func TestSubmitValidation(t *testing.T) {
	repo := new(mocks.MockSubmissionRepository)
	svc := NewInboxService(repo, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name    string
		fields  map[string]any
		missing string
	}{
		{"no name", map[string]any{"email": "d@e.com", "message": "hi"}, "name"},
		{"no email", map[string]any{"name": "Dana", "message": "hi"}, "email"},
		{"no message", map[string]any{"name": "Dana", "email": "d@e.com"}, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Submit(ctx, tt.fields)
			assert.False(t, res.Success)
			assert.Contains(t, res.Error, tt.missing)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInboxListAbsorbsFailure(t *testing.T) {
	repo := new(mocks.MockSubmissionRepository)
	svc := NewInboxService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("List", ctx).Return(nil, errors.New("store down")).Once()
	assert.Empty(t, svc.List(ctx))

	want := []model.ContactSubmission{{Name: "Dana"}}
	repo.On("List", ctx).Return(want, nil).Once()
	assert.Equal(t, want, svc.List(ctx))
}

func TestMarkRead(t *testing.T) {
	repo := new(mocks.MockSubmissionRepository)
	svc := NewInboxService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("Update", ctx, "contact_submissions:a", map[string]any{"isRead": true}).Return(nil)

	res := svc.MarkRead(ctx, "contact_submissions:a")
	assert.True(t, res.Success)
	repo.AssertExpectations(t)

	res = svc.MarkRead(ctx, "")
	assert.False(t, res.Success)
}

func TestInboxGet(t *testing.T) {
	repo := new(mocks.MockSubmissionRepository)
	svc := NewInboxService(repo, zerolog.Nop())
	ctx := context.Background()

	repo.On("GetByID", ctx, "contact_submissions:x").Return(nil, nil)

	_, err := svc.Get(ctx, "contact_submissions:x")
	assert.ErrorIs(t, err, ErrNotFound)
}
