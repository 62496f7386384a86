package docstore

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"sitecms/internal/coerce"
	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/store"
)

// ErrInvalidDay rejects upserts whose day is not one of the seven weekday
// names.
var ErrInvalidDay = errors.New("invalid day name")

// BusinessHourRepo persists the weekly schedule. Day is the natural key, and
// this repository is the only place its uniqueness is enforced: an upsert for
// an existing day updates that record in place instead of inserting a second
// one. Direct raw inserts into the collection would bypass the invariant.
type BusinessHourRepo struct {
	c collection[model.BusinessHour]
}

var _ repository.BusinessHourRepository = (*BusinessHourRepo)(nil)

func NewBusinessHourRepo(st store.Store, log zerolog.Logger) *BusinessHourRepo {
	return &BusinessHourRepo{c: collection[model.BusinessHour]{
		st:      st,
		name:    collHours,
		convert: coerce.BusinessHour,
		orderOf: func(h model.BusinessHour) int { return h.Order },
		log:     log.With().Str("collection", collHours).Logger(),
	}}
}

// UpsertByDay looks up the record for hour.Day and merges onto it, keeping
// its identifier; when no record exists yet, it creates one.
//
// The lookup and the write are two separate store calls with no transaction
// between them: two concurrent first-writes for the same day can both observe
// "not found" and both create a record. Conflicts resolve last-write-wins.
func (r *BusinessHourRepo) UpsertByDay(ctx context.Context, hour model.BusinessHour) (string, error) {
	hour.Day = model.NormalizeDay(hour.Day)
	if !model.ValidDay(hour.Day) {
		return "", ErrInvalidDay
	}
	if hour.Order == 0 {
		hour.Order = model.DayOrder(hour.Day)
	}

	existing, err := r.findByDay(ctx, hour.Day)
	if err != nil {
		return "", err
	}
	if existing != nil {
		id := idOf(existing)
		if err := r.c.update(ctx, id, fieldsOf(hour)); err != nil {
			return "", err
		}
		return id, nil
	}
	return r.c.create(ctx, fieldsOf(hour))
}

func (r *BusinessHourRepo) GetByDay(ctx context.Context, day string) (*model.BusinessHour, error) {
	doc, err := r.findByDay(ctx, model.NormalizeDay(day))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	h := coerce.BusinessHour(doc)
	return &h, nil
}

func (r *BusinessHourRepo) List(ctx context.Context) ([]model.BusinessHour, error) {
	docs, err := r.c.st.Find(ctx, collHours, store.FindOptions{OrderBy: "order"})
	if err != nil {
		return nil, err
	}
	return r.c.sorted(r.c.convertAll(docs)), nil
}

func (r *BusinessHourRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

func (r *BusinessHourRepo) findByDay(ctx context.Context, day string) (map[string]any, error) {
	docs, err := r.c.st.Find(ctx, collHours, store.FindOptions{
		Filter: &store.Filter{Field: "day", Op: store.OpEqual, Value: day},
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	if len(docs) > 1 {
		r.c.log.Warn().Str("day", day).Int("count", len(docs)).
			Msg("duplicate schedule records for day, using first")
	}
	return docs[0], nil
}
