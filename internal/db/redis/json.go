package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/storefront/internal/db"
)

// JSONSet stores a JSON document at the given key and path.
// NX/XX replies are nil when the precondition fails; that is reported as false.
func (s *Store) JSONSet(ctx context.Context, key, path string, data []byte, mode db.SetMode) (bool, error) {
	args := []string{path, string(data)}
	switch mode {
	case db.SetIfAbsent:
		args = append(args, "NX")
	case db.SetIfPresent:
		args = append(args, "XX")
	}

	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return true, nil
}

// JSONGet retrieves a JSON document by key and optional paths.
func (s *Store) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	args := make([]string, len(paths))
	copy(args, paths)

	cmd := s.b().Arbitrary("JSON.GET").Keys(key).Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpJSONGet, Err: err}
	}
	if raw == "" {
		return nil, db.ErrKeyNotFound
	}
	return []byte(raw), nil
}

// Del deletes a key and reports whether it existed.
func (s *Store) Del(ctx context.Context, key string) (bool, error) {
	cmd := s.b().Del().Key(key).Build()
	n, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpDel, Err: err}
	}
	return n > 0, nil
}
