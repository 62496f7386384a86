// Package docstore implements the repository interfaces over a document
// store handle. It contains no business logic: documents go out as raw field
// maps with layer-assigned timestamps and come back through the coercion
// layer as typed entities.
package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sitecms/internal/store"
)

// Collection names, one per entity kind. No cross-collection relationships
// are enforced here.
const (
	collProjects    = "projects"
	collServices    = "services"
	collStats       = "company_stats"
	collContactInfo = "contact_info"
	collHours       = "business_hours"
	collSubmissions = "contact_submissions"
)

// activeFilter selects documents not explicitly marked inactive. The
// inequality form matters: documents without an isActive field at all must
// pass, so `isActive != false` is used rather than `isActive == true`. Every
// collection in this package uses this semantic, store-side in Find queries
// and client-side on raw scans.
func activeFilter() *store.Filter {
	return &store.Filter{Field: "isActive", Op: store.OpNotEqual, Value: false}
}

// collection bundles the store handle with one entity kind's conversion. The
// standard CRUD verbs are identical across collections; entity-specific read
// paths (project fallback, hour upsert) live in the per-entity files.
type collection[T any] struct {
	st      store.Store
	name    string
	convert func(map[string]any) T
	orderOf func(T) int // nil for collections without a display rank
	log     zerolog.Logger
}

func (c collection[T]) create(ctx context.Context, fields map[string]any) (string, error) {
	doc, err := c.st.Create(ctx, c.name, stampNew(fields))
	if err != nil {
		return "", err
	}
	return idOf(doc), nil
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, nil
	}
	doc, err := c.st.Get(ctx, c.qualify(id))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	e := c.convert(doc)
	return &e, nil
}

func (c collection[T]) list(ctx context.Context, activeOnly bool) ([]T, error) {
	opts := store.FindOptions{OrderBy: "order"}
	if activeOnly {
		opts.Filter = activeFilter()
	}
	docs, err := c.st.Find(ctx, c.name, opts)
	if err != nil {
		return nil, err
	}
	return c.sorted(c.convertAll(docs)), nil
}

func (c collection[T]) update(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.st.Merge(ctx, c.qualify(id), stampUpdate(fields))
	return err
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	return c.st.Delete(ctx, c.qualify(id))
}

func (c collection[T]) convertAll(docs []map[string]any) []T {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		out = append(out, c.convert(doc))
	}
	return out
}

// sorted re-sorts client-side by order ascending, regardless of which fetch
// path produced the slice. Store-side ordering is not trusted as the only
// guarantee; ties keep their incoming position, which callers must not rely
// on across calls.
func (c collection[T]) sorted(items []T) []T {
	if c.orderOf == nil {
		return items
	}
	sort.SliceStable(items, func(i, j int) bool {
		return c.orderOf(items[i]) < c.orderOf(items[j])
	})
	return items
}

// qualify turns a bare key into a full document id. Ids that already carry
// the collection prefix pass through.
func (c collection[T]) qualify(id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return c.name + ":" + id
}

// stampNew copies the caller's fields and sets both timestamps. The id key is
// dropped: identity is store-assigned.
func stampNew(fields map[string]any) map[string]any {
	doc := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	delete(doc, "id")
	now := timestamp()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	return doc
}

// stampUpdate copies the caller's partial fields and stamps updatedAt.
// createdAt is stripped so an update can never rewrite it.
func stampUpdate(fields map[string]any) map[string]any {
	doc := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	delete(doc, "id")
	delete(doc, "createdAt")
	doc["updatedAt"] = timestamp()
	return doc
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func idOf(doc map[string]any) string {
	s, _ := doc["id"].(string)
	return s
}

// fieldsOf flattens a typed entity into the raw field map the store takes,
// minus identity and timestamps, which the layer controls.
func fieldsOf(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	delete(m, "id")
	delete(m, "createdAt")
	delete(m, "updatedAt")
	return m
}
