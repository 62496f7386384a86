package docstore

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/coerce"
	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/store"
)

// ProjectRepo persists portfolio projects. Reads are resilient: the projects
// collection may predate the fields and indexes the filtered query assumes,
// so List degrades through an explicit strategy chain instead of failing.
type ProjectRepo struct {
	c collection[model.Project]
}

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// NewProjectRepo creates a project repository over the given store handle.
func NewProjectRepo(st store.Store, log zerolog.Logger) *ProjectRepo {
	return &ProjectRepo{c: collection[model.Project]{
		st:      st,
		name:    collProjects,
		convert: coerce.Project,
		orderOf: func(p model.Project) int { return p.Order },
		log:     log.With().Str("collection", collProjects).Logger(),
	}}
}

func (r *ProjectRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.c.create(ctx, fields)
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return r.c.get(ctx, id)
}

// List tries each read strategy in order until one yields entities:
//
//  1. the filtered, ordered store query;
//  2. a raw scan of the whole collection with the active predicate and
//     ordering applied client-side;
//  3. a single synthesized placeholder, tagged with a fixed id and the
//     Placeholder flag so it can never be mistaken for stored data.
//
// A strategy is skipped both when it errors and when it comes back empty.
// List therefore never returns an error and never returns an empty slice.
func (r *ProjectRepo) List(ctx context.Context, activeOnly bool) ([]model.Project, error) {
	strategies := []struct {
		name string
		run  func(context.Context) ([]model.Project, error)
	}{
		{"filtered-query", func(ctx context.Context) ([]model.Project, error) {
			return r.c.list(ctx, activeOnly)
		}},
		{"raw-scan", func(ctx context.Context) ([]model.Project, error) {
			return r.scanAll(ctx, activeOnly)
		}},
	}

	for _, s := range strategies {
		projects, err := s.run(ctx)
		if err != nil {
			r.c.log.Warn().Err(err).Str("strategy", s.name).Msg("project read strategy failed")
			continue
		}
		if len(projects) == 0 {
			continue
		}
		return r.c.sorted(projects), nil
	}

	r.c.log.Info().Msg("no project documents available, serving placeholder")
	return []model.Project{model.PlaceholderProject()}, nil
}

// scanAll fetches every document with no predicate and filters after
// coercion, for stores that reject the composite filtered query.
func (r *ProjectRepo) scanAll(ctx context.Context, activeOnly bool) ([]model.Project, error) {
	docs, err := r.c.st.All(ctx, collProjects)
	if err != nil {
		return nil, err
	}
	projects := r.c.convertAll(docs)
	if !activeOnly {
		return projects, nil
	}
	active := projects[:0]
	for _, p := range projects {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (r *ProjectRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.c.update(ctx, id, fields)
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
