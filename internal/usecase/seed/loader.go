// Package seed loads sample ecommerce orders into the engine.
//
// Input is a stream of JSON order documents, one per line. Elasticsearch bulk
// exports are accepted too: their action lines ({"index":{...}}) are skipped.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/domain/ecommerce"
	"github.com/kailas-cloud/storefront/internal/logger"
)

const defaultWorkers = 8

// Result summarises one load.
type Result struct {
	Processed int64
	Failed    int64
	Skipped   int64
	Duration  time.Duration
}

// Loader streams orders from a reader into a Writer with a worker pool.
type Loader struct {
	writer  Writer
	workers int
}

// New creates a loader writing through w.
func New(w Writer) *Loader {
	return &Loader{writer: w, workers: defaultWorkers}
}

// WithWorkers sets the number of concurrent writers. Values below one are ignored.
func (l *Loader) WithWorkers(n int) *Loader {
	if n > 0 {
		l.workers = n
	}
	return l
}

type item struct {
	order ecommerce.Order
	seq   int
}

// Load reads r to the end. A write failure is counted and logged, a malformed
// document stops the load and is returned with its position.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Result, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	items := make(chan item, l.workers*2)
	var processed, failed, skipped atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < l.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for it := range items {
				if _, err := l.writer.Put(ctx, &it.order); err != nil {
					failed.Add(1)
					log.Warn("order not stored", zap.Int("seq", it.seq), zap.Error(err))
					continue
				}
				processed.Add(1)
			}
		}()
	}

	readErr := produce(ctx, r, items, &skipped)
	close(items)
	wg.Wait()

	res := Result{
		Processed: processed.Load(),
		Failed:    failed.Load(),
		Skipped:   skipped.Load(),
		Duration:  time.Since(start),
	}
	log.Info("seed finished",
		zap.Int64("processed", res.Processed),
		zap.Int64("failed", res.Failed),
		zap.Int64("skipped", res.Skipped),
		zap.Duration("duration", res.Duration),
	)
	return res, readErr
}

func produce(ctx context.Context, r io.Reader, out chan<- item, skipped *atomic.Int64) error {
	dec := json.NewDecoder(r)
	for seq := 0; ; seq++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("document %d: %w", seq, err)
		}

		if isBulkAction(raw) {
			skipped.Add(1)
			continue
		}

		var o ecommerce.Order
		if err := json.Unmarshal(raw, &o); err != nil {
			return fmt.Errorf("document %d: %w", seq, err)
		}

		select {
		case out <- item{order: o, seq: seq}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// isBulkAction reports whether raw is an Elasticsearch bulk action line.
func isBulkAction(raw json.RawMessage) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) != 1 {
		return false
	}
	for _, action := range []string{"index", "create"} {
		if _, ok := fields[action]; ok {
			return true
		}
	}
	return false
}
