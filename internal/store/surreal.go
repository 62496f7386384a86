package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	surrealdb "github.com/surrealdb/surrealdb.go"

	"sitecms/internal/config"
)

// Surreal implements Store over a SurrealDB connection. The underlying client
// speaks a websocket RPC and returns loosely-typed JSON values; this adapter
// only reshapes them into raw document maps, leaving all normalization to the
// coercion layer.
//
// The client API predates context support, so ctx is honored only as a
// fast-fail check before each call.
type Surreal struct {
	db     *surrealdb.DB
	log    zerolog.Logger
	closed atomic.Bool
}

var _ Store = (*Surreal)(nil)

// ConnectSurreal dials the store, signs in when credentials are configured,
// and selects the namespace/database pair.
func ConnectSurreal(cfg config.SurrealConfig, log zerolog.Logger) (*Surreal, error) {
	db, err := surrealdb.New(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to surrealdb: %w", err)
	}
	if cfg.User != "" {
		if _, err := db.Signin(map[string]any{"user": cfg.User, "pass": cfg.Pass}); err != nil {
			db.Close()
			return nil, fmt.Errorf("signin: %w", err)
		}
	}
	if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
		db.Close()
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}
	log.Info().Str("url", cfg.URL).Str("ns", cfg.Namespace).Str("db", cfg.Database).
		Msg("connected to document store")
	return &Surreal{db: db, log: log}, nil
}

// Close tears down the websocket connection. Operations on a closed handle
// return ErrClosed.
func (s *Surreal) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.db.Close()
}

// pre is the shared preamble of every operation: caller cancellation first,
// then the closed check.
func (s *Surreal) pre(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (s *Surreal) Create(ctx context.Context, collection string, data map[string]any) (map[string]any, error) {
	if err := s.pre(ctx); err != nil {
		return nil, err
	}
	res, err := s.db.Create(collection, data)
	if err != nil {
		return nil, fmt.Errorf("create in %s: %w", collection, err)
	}
	docs := rawDocs(res)
	if len(docs) == 0 {
		return nil, fmt.Errorf("create in %s: empty response", collection)
	}
	return docs[0], nil
}

func (s *Surreal) Get(ctx context.Context, id string) (map[string]any, error) {
	if err := s.pre(ctx); err != nil {
		return nil, err
	}
	res, err := s.db.Select(id)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", id, err)
	}
	doc, _ := res.(map[string]any)
	if doc == nil {
		return nil, nil
	}
	return doc, nil
}

func (s *Surreal) All(ctx context.Context, collection string) ([]map[string]any, error) {
	if err := s.pre(ctx); err != nil {
		return nil, err
	}
	res, err := s.db.Select(collection)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	return rawDocs(res), nil
}

func (s *Surreal) Find(ctx context.Context, collection string, opts FindOptions) ([]map[string]any, error) {
	if err := s.pre(ctx); err != nil {
		return nil, err
	}
	sql := "SELECT * FROM " + collection
	vars := map[string]any{}
	if f := opts.Filter; f != nil {
		sql += fmt.Sprintf(" WHERE `%s` %s $value", f.Field, f.Op)
		vars["value"] = f.Value
	}
	if opts.OrderBy != "" {
		// Backticks keep reserved words like `order` usable as field names.
		sql += fmt.Sprintf(" ORDER BY `%s` ASC", opts.OrderBy)
	}
	res, err := s.db.Query(sql, vars)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return queryRows(res)
}

func (s *Surreal) Merge(ctx context.Context, id string, data map[string]any) (map[string]any, error) {
	if err := s.pre(ctx); err != nil {
		return nil, err
	}
	res, err := s.db.Change(id, data)
	if err != nil {
		// Merging onto a missing document reads as absence, same as Get.
		if isAbsence(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("merge %s: %w", id, err)
	}
	doc, _ := res.(map[string]any)
	return doc, nil
}

func (s *Surreal) Delete(ctx context.Context, id string) error {
	if err := s.pre(ctx); err != nil {
		return err
	}
	if _, err := s.db.Delete(id); err != nil {
		// Deleting a missing document is not an error.
		if isAbsence(err) {
			return nil
		}
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

func (s *Surreal) Ping(ctx context.Context) error {
	if err := s.pre(ctx); err != nil {
		return err
	}
	if _, err := s.db.Info(); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

// isAbsence reports whether a client error means the addressed record does
// not exist. The client signals that with ErrNoRow on Select, Change and
// Delete of a missing record id; absence is a normal outcome, not a failure.
func isAbsence(err error) bool {
	return errors.Is(err, surrealdb.ErrNoRow)
}

// rawDocs flattens a client response into document maps. Create and scan
// responses arrive as a single map or a list of maps depending on the call.
func rawDocs(res any) []map[string]any {
	switch t := res.(type) {
	case map[string]any:
		return []map[string]any{t}
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, e := range t {
			if doc, ok := e.(map[string]any); ok {
				out = append(out, doc)
			}
		}
		return out
	}
	return nil
}

// queryRows unwraps the first statement result of a raw query response.
func queryRows(res any) ([]map[string]any, error) {
	stmts, ok := res.([]any)
	if !ok || len(stmts) == 0 {
		return nil, fmt.Errorf("query: malformed response")
	}
	first, ok := stmts[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("query: malformed statement result")
	}
	if status, _ := first["status"].(string); status != "OK" {
		detail, _ := first["detail"].(string)
		return nil, fmt.Errorf("query failed: %s %s", status, detail)
	}
	return rawDocs(first["result"]), nil
}
