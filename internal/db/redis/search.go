package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/storefront/internal/db"
)

// Search runs FT.SEARCH with a LIMIT window and optional RETURN fields.
func (s *Store) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	args := []string{q.IndexName, q.Query}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(q.Limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	res, err := parseSearchResult(raw)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}
	return res, nil
}

// SearchCount returns document count via FT.SEARCH with LIMIT 0 0.
func (s *Store) SearchCount(ctx context.Context, index, query string) (int, error) {
	cmd := s.b().Arbitrary("FT.SEARCH").Args(index, query, "LIMIT", "0", "0").Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return 0, &db.Error{Op: db.OpSearch, Err: err}
	}
	if len(raw) == 0 {
		return 0, nil
	}
	total, err := raw[0].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}
	return int(total), nil
}

// --- Result parsing ---

func parseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	if (len(raw)-1)%2 != 0 {
		return nil, fmt.Errorf("hit %d has no fields", len(raw)/2-1)
	}

	entries := make([]db.SearchEntry, 0, (len(raw)-1)/2)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := asString(&raw[i])
		if err != nil {
			return nil, fmt.Errorf("parse hit %d key: %w", (i-1)/2, err)
		}

		fields, err := asArray(&raw[i+1])
		if err != nil {
			return nil, fmt.Errorf("parse hit %s fields: %w", key, err)
		}

		m, err := parseFieldPairs(fields)
		if err != nil {
			return nil, fmt.Errorf("parse hit %s fields: %w", key, err)
		}
		entries = append(entries, db.SearchEntry{Key: key, Fields: m})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) (map[string]string, error) {
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd field array length %d", len(fields))
	}
	m := make(map[string]string, len(fields)/2)
	for j := 0; j < len(fields); j += 2 {
		name, err := asString(&fields[j])
		if err != nil {
			return nil, fmt.Errorf("field name: %w", err)
		}
		value, err := asString(&fields[j+1])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		m[name] = value
	}
	return m, nil
}

// asString and asArray check the reply type first; the rueidis conversions panic on a mismatch.
func asString(m *rueidis.RedisMessage) (string, error) {
	if !m.IsString() {
		return "", errors.New("unexpected reply type, want string")
	}
	return m.ToString()
}

func asArray(m *rueidis.RedisMessage) ([]rueidis.RedisMessage, error) {
	if !m.IsArray() {
		return nil, errors.New("unexpected reply type, want array")
	}
	return m.ToArray()
}
