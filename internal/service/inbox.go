package service

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/model"
	"sitecms/internal/repository"
)

// InboxService covers contact-form submissions.
type InboxService interface {
	// Submit records a message from the public contact form.
	Submit(ctx context.Context, fields map[string]any) WriteResult

	// List returns all submissions, newest first; empty on failure.
	List(ctx context.Context) []model.ContactSubmission

	Get(ctx context.Context, id string) (*model.ContactSubmission, error)
	MarkRead(ctx context.Context, id string) WriteResult
	Delete(ctx context.Context, id string) WriteResult
}

type inboxService struct {
	repo repository.SubmissionRepository
	log  zerolog.Logger
}

// NewInboxService constructs an InboxService.
func NewInboxService(repo repository.SubmissionRepository, log zerolog.Logger) InboxService {
	return &inboxService{repo: repo, log: log}
}

func (s *inboxService) Submit(ctx context.Context, fields map[string]any) WriteResult {
	if err := requireStrings(fields, "name", "email", "message"); err != nil {
		return failResult(err)
	}
	// New messages always start unread, whatever the form sent. Annotate a
	// copy so the caller's map stays untouched.
	doc := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["isRead"] = false
	id, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.log.Error().Err(err).Msg("record submission failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *inboxService) List(ctx context.Context) []model.ContactSubmission {
	subs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("submission list failed, serving none")
		return []model.ContactSubmission{}
	}
	return subs
}

func (s *inboxService) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

func (s *inboxService) MarkRead(ctx context.Context, id string) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.repo.Update(ctx, id, map[string]any{"isRead": true}); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("mark submission read failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *inboxService) Delete(ctx context.Context, id string) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete submission failed")
		return failResult(err)
	}
	return okResult(id)
}
