package store

import (
	"context"
	"time"

	"hospital-management-api/internal/infrastructure/metrics"
)

type instrumented struct {
	next Store
}

// Instrument records a metric for every store round trip.
func Instrument(next Store) Store {
	return &instrumented{next: next}
}

func (s *instrumented) Select(ctx context.Context, table string, q Query, dest interface{}) error {
	start := time.Now()
	err := s.next.Select(ctx, table, q, dest)
	metrics.RecordStoreCall(table, "select", err, time.Since(start))
	return err
}

func (s *instrumented) Insert(ctx context.Context, table string, row interface{}, dest interface{}) error {
	start := time.Now()
	err := s.next.Insert(ctx, table, row, dest)
	metrics.RecordStoreCall(table, "insert", err, time.Since(start))
	return err
}

func (s *instrumented) Update(ctx context.Context, table string, q Query, values map[string]interface{}, dest interface{}) error {
	start := time.Now()
	err := s.next.Update(ctx, table, q, values, dest)
	metrics.RecordStoreCall(table, "update", err, time.Since(start))
	return err
}

func (s *instrumented) Delete(ctx context.Context, table string, q Query, dest interface{}) error {
	start := time.Now()
	err := s.next.Delete(ctx, table, q, dest)
	metrics.RecordStoreCall(table, "delete", err, time.Since(start))
	return err
}
