package store

import (
	"context"
	"sort"
	"sync"
)

type memoryKey struct {
	partition  Partition
	recordType string
	id         string
}

// MemoryStore keeps records in process. It backs local development when
// no database is configured, and the service tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[memoryKey]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[memoryKey]Record)}
}

func (m *MemoryStore) Save(ctx context.Context, p Partition, rec Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, opError("save", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := rec.clone()
	m.records[memoryKey{p, rec.Type, rec.ID}] = stored
	return stored.clone(), nil
}

func (m *MemoryStore) SaveIf(ctx context.Context, p Partition, rec Record, conds []Condition) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, opError("save", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey{p, rec.Type, rec.ID}
	current, ok := m.records[key]
	if !ok || !matches(current, conds) {
		return false, nil
	}
	m.records[key] = rec.clone()
	return true, nil
}

func (m *MemoryStore) Fetch(ctx context.Context, p Partition, q Query) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, opError("fetch", err)
	}

	m.mu.RLock()
	var out []Record
	for key, rec := range m.records {
		if key.partition != p || key.recordType != q.Type {
			continue
		}
		if matches(rec, q.Where) {
			out = append(out, rec.clone())
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		for _, s := range q.Sort {
			c := compareField(out[i], out[j], s.Field)
			if c == 0 {
				continue
			}
			if s.Desc {
				return c > 0
			}
			return c < 0
		}
		return out[i].ID < out[j].ID
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *MemoryStore) FetchOne(ctx context.Context, p Partition, recordType, id string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, opError("fetch", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[memoryKey{p, recordType, id}]
	if !ok {
		return nil, nil
	}
	out := rec.clone()
	return &out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, p Partition, recordType, id string) error {
	if err := ctx.Err(); err != nil {
		return opError("delete", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, memoryKey{p, recordType, id})
	return nil
}

func matches(rec Record, conds []Condition) bool {
	for _, cond := range conds {
		v, ok := rec.Fields[cond.Field]
		if !ok || v == nil {
			return false
		}
		c, comparable := compareValues(v, normalize(cond.Value))
		if !comparable {
			return false
		}
		switch cond.Op {
		case Eq:
			if c != 0 {
				return false
			}
		case Lt:
			if c >= 0 {
				return false
			}
		case Lte:
			if c > 0 {
				return false
			}
		case Gt:
			if c <= 0 {
				return false
			}
		case Gte:
			if c < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compareField orders absent values after present ones, like NULLs in an
// ascending Postgres sort.
func compareField(a, b Record, field string) int {
	av, aok := a.Fields[field]
	bv, bok := b.Fields[field]
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	c, _ := compareValues(av, bv)
	return c
}

func compareValues(a, b any) (int, bool) {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case float64:
		y, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		}
		return 1, true
	}
	return 0, false
}
