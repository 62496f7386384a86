package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

func TestSurrealOpsAfterCloseReturnErrClosed(t *testing.T) {
	var s Surreal
	s.closed.Store(true)
	ctx := context.Background()

	_, err := s.Create(ctx, "projects", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.Get(ctx, "projects:a")
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.All(ctx, "projects")
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.Find(ctx, "projects", FindOptions{})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = s.Merge(ctx, "projects:a", map[string]any{"title": "y"})
	assert.ErrorIs(t, err, ErrClosed)

	assert.ErrorIs(t, s.Delete(ctx, "projects:a"), ErrClosed)
	assert.ErrorIs(t, s.Ping(ctx), ErrClosed)
}

func TestSurrealHonorsCancelledContext(t *testing.T) {
	var s Surreal
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "projects:a")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}

func TestAbsenceDetection(t *testing.T) {
	assert.True(t, isAbsence(surrealdb.ErrNoRow))
	assert.True(t, isAbsence(fmt.Errorf("select projects:a: %w", surrealdb.ErrNoRow)))
	assert.False(t, isAbsence(errors.New("connection reset")))
	assert.False(t, isAbsence(nil))
}
