package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// MemStore is an in-memory Store used by tests and local demo runs. It keeps
// plain maps of collection -> id -> document and evaluates Find predicates in
// process.
//
// The exported *Err fields inject failures per operation so tests can drive
// the repositories' degraded paths without a live backend.
type MemStore struct {
	mu   sync.Mutex
	seq  int
	data map[string]map[string]map[string]any

	CreateErr error
	GetErr    error
	AllErr    error
	FindErr   error
	MergeErr  error
	DeleteErr error
	PingErr   error
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string]map[string]map[string]any{}}
}

func (m *MemStore) Create(ctx context.Context, collection string, data map[string]any) (map[string]any, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	id := fmt.Sprintf("%s:%06d", collection, m.seq)
	doc := normalize(data)
	doc["id"] = id

	coll := m.data[collection]
	if coll == nil {
		coll = map[string]map[string]any{}
		m.data[collection] = coll
	}
	coll[id] = doc
	return normalize(doc), nil
}

func (m *MemStore) Get(ctx context.Context, id string) (map[string]any, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, coll := range m.data {
		if doc, ok := coll[id]; ok {
			return normalize(doc), nil
		}
	}
	return nil, nil
}

func (m *MemStore) All(ctx context.Context, collection string) ([]map[string]any, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := make([]map[string]any, 0, len(m.data[collection]))
	for _, doc := range m.data[collection] {
		docs = append(docs, normalize(doc))
	}
	// Stable scan order keeps tests deterministic; real stores guarantee no
	// particular iteration order.
	sort.Slice(docs, func(i, j int) bool {
		a, _ := docs[i]["id"].(string)
		b, _ := docs[j]["id"].(string)
		return a < b
	})
	return docs, nil
}

func (m *MemStore) Find(ctx context.Context, collection string, opts FindOptions) ([]map[string]any, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	docs, err := m.All(ctx, collection)
	if err != nil {
		return nil, err
	}
	if f := opts.Filter; f != nil {
		kept := docs[:0]
		for _, doc := range docs {
			if matches(doc[f.Field], f) {
				kept = append(kept, doc)
			}
		}
		docs = kept
	}
	if opts.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			return less(docs[i][opts.OrderBy], docs[j][opts.OrderBy])
		})
	}
	return docs, nil
}

func (m *MemStore) Merge(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	if m.MergeErr != nil {
		return nil, m.MergeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, coll := range m.data {
		doc, ok := coll[id]
		if !ok {
			continue
		}
		for k, v := range normalize(data) {
			doc[k] = v
		}
		return normalize(doc), nil
	}
	return nil, nil
}

func (m *MemStore) Delete(ctx context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, coll := range m.data {
		delete(coll, id)
	}
	return nil
}

func (m *MemStore) Ping(ctx context.Context) error {
	return m.PingErr
}

// Count reports how many documents a collection holds.
func (m *MemStore) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data[collection])
}

// Seed inserts a document with a caller-chosen id, bypassing Create. Useful
// for shaping legacy or malformed documents in tests.
func (m *MemStore) Seed(collection, id string, data map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := normalize(data)
	doc["id"] = id
	coll := m.data[collection]
	if coll == nil {
		coll = map[string]map[string]any{}
		m.data[collection] = coll
	}
	coll[id] = doc
}

// normalize deep-copies a document through JSON, so stored values take the
// same shapes a remote store would return (float64 numbers, []any lists) and
// callers never alias internal state.
func normalize(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		// Unmarshalable values cannot come from JSON documents; drop them.
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func matches(v any, f *Filter) bool {
	want := normalizeValue(f.Value)
	eq := reflect.DeepEqual(normalizeValue(v), want)
	if f.Op == OpNotEqual {
		return !eq
	}
	return eq
}

func normalizeValue(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

// less orders two field values: numbers numerically, everything else by
// string form. Missing values sort first, matching the "missing order means
// rank zero" display rule.
func less(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	if aok != bok {
		return aok
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case nil:
		return 0, true
	}
	return 0, false
}
