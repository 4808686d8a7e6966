// Package storetest provides an in-memory store.Store for tests.
package storetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"hospital-management-api/internal/infrastructure/store"
)

// Call records one operation received by Memory.
type Call struct {
	Op    string
	Table string
	Query store.Query
}

// Memory keeps rows as JSON objects per table. Values round-trip through
// encoding/json exactly like rows fetched over the REST API.
type Memory struct {
	mu     sync.Mutex
	tables map[string][]map[string]interface{}
	errs   map[string]error
	seq    int
	Calls  []Call
}

func NewMemory() *Memory {
	return &Memory{
		tables: make(map[string][]map[string]interface{}),
		errs:   make(map[string]error),
	}
}

// Seed appends rows to a table as-is.
func (m *Memory) Seed(table string, rows ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range rows {
		obj, err := toObject(row)
		if err != nil {
			panic(err)
		}
		m.tables[table] = append(m.tables[table], obj)
	}
}

// FailWith makes every call on table return err.
func (m *Memory) FailWith(table string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[table] = err
}

// CallsTo returns the calls received for a table.
func (m *Memory) CallsTo(table string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var calls []Call
	for _, c := range m.Calls {
		if c.Table == table {
			calls = append(calls, c)
		}
	}
	return calls
}

func (m *Memory) Select(ctx context.Context, table string, q store.Query, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("select", table, q); err != nil {
		return err
	}

	rows := matching(m.tables[table], q)
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range q.Order {
			a, b := fmt.Sprint(rows[i][o.Column]), fmt.Sprint(rows[j][o.Column])
			if a == b {
				continue
			}
			if o.Descending {
				return a > b
			}
			return a < b
		}
		return false
	})
	return decode(rows, dest)
}

func (m *Memory) Insert(ctx context.Context, table string, row interface{}, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("insert", table, store.Query{}); err != nil {
		return err
	}

	obj, err := toObject(row)
	if err != nil {
		return err
	}
	if id, _ := obj["id"].(string); id == "" {
		m.seq++
		obj["id"] = fmt.Sprintf("%s-%d", table, m.seq)
	}
	m.tables[table] = append(m.tables[table], obj)
	return decode([]map[string]interface{}{obj}, dest)
}

func (m *Memory) Update(ctx context.Context, table string, q store.Query, values map[string]interface{}, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("update", table, q); err != nil {
		return err
	}

	patch, err := toObject(values)
	if err != nil {
		return err
	}
	updated := matching(m.tables[table], q)
	for _, row := range updated {
		for k, v := range patch {
			row[k] = v
		}
	}
	return decode(updated, dest)
}

func (m *Memory) Delete(ctx context.Context, table string, q store.Query, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("delete", table, q); err != nil {
		return err
	}

	var kept, deleted []map[string]interface{}
	for _, row := range m.tables[table] {
		if matches(row, q) {
			deleted = append(deleted, row)
		} else {
			kept = append(kept, row)
		}
	}
	m.tables[table] = kept
	return decode(deleted, dest)
}

func (m *Memory) record(op, table string, q store.Query) error {
	m.Calls = append(m.Calls, Call{Op: op, Table: table, Query: q})
	return m.errs[table]
}

func matching(rows []map[string]interface{}, q store.Query) []map[string]interface{} {
	out := []map[string]interface{}{}
	for _, row := range rows {
		if matches(row, q) {
			out = append(out, row)
		}
	}
	return out
}

func matches(row map[string]interface{}, q store.Query) bool {
	for _, f := range q.Filters {
		if fmt.Sprint(row[f.Column]) != f.Value {
			return false
		}
	}
	return true
}

func toObject(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	obj := map[string]interface{}{}
	return obj, json.Unmarshal(raw, &obj)
}

func decode(rows []map[string]interface{}, dest interface{}) error {
	if rows == nil {
		rows = []map[string]interface{}{}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
