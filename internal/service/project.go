package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/storage"
)

// ProjectService defines the use cases for portfolio projects.
type ProjectService interface {
	// List returns the displayable projects. It never fails: the repository's
	// fallback chain guarantees at least one (possibly placeholder) entry.
	List(ctx context.Context, activeOnly bool) []model.Project

	// Get returns one project by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Project, error)

	Create(ctx context.Context, fields map[string]any) WriteResult
	Update(ctx context.Context, id string, fields map[string]any) WriteResult
	Delete(ctx context.Context, id string) WriteResult

	// UploadImage stores the image content and patches the project's
	// imageUrl, rolling the object back if the patch fails. Returns the
	// public image URL.
	UploadImage(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (string, error)
}

type projectService struct {
	repo   repository.ProjectRepository
	images storage.Storage
	log    zerolog.Logger
}

// NewProjectService constructs a ProjectService.
func NewProjectService(repo repository.ProjectRepository, images storage.Storage, log zerolog.Logger) ProjectService {
	return &projectService{repo: repo, images: images, log: log}
}

func (s *projectService) List(ctx context.Context, activeOnly bool) []model.Project {
	projects, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		// The repository chain should have absorbed this; degrade anyway.
		s.log.Warn().Err(err).Msg("project list failed")
		return []model.Project{model.PlaceholderProject()}
	}
	return projects
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, fields map[string]any) WriteResult {
	if err := requireStrings(fields, "title", "description", "category"); err != nil {
		return failResult(err)
	}
	id, err := s.repo.Create(ctx, fields)
	if err != nil {
		s.log.Error().Err(err).Msg("create project failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *projectService) Update(ctx context.Context, id string, fields map[string]any) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("update project failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *projectService) Delete(ctx context.Context, id string) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete project failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *projectService) UploadImage(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	if r == nil {
		return "", ErrReaderNil
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrNotFound
	}

	// Stored name is a UUID plus the original extension.
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("projects", uuid.New().String()+ext))

	url, err := s.images.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}

	if err := s.repo.Update(ctx, id, map[string]any{"imageUrl": url}); err != nil {
		// Rollback: drop the orphaned object.
		if delErr := s.images.Delete(ctx, key); delErr != nil {
			return "", fmt.Errorf("image patch failed: %v; rollback delete failed: %v", err, delErr)
		}
		return "", fmt.Errorf("image patch failed: %w", err)
	}
	return url, nil
}
