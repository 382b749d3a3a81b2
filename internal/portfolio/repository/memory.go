package repository

import (
	"context"
	"encoding/json"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is the in-memory Repository used by unit tests and when the
// server runs without a MongoDB connection. Records are cloned on the way
// in and out so callers cannot mutate stored state through aliases.
type MemoryRepo[T any, PT Entity[T]] struct {
	mu    sync.RWMutex
	recs  map[string]PT
	order []string // insertion order, keeps List deterministic
}

func NewMemoryRepo[T any, PT Entity[T]]() *MemoryRepo[T, PT] {
	return &MemoryRepo[T, PT]{recs: make(map[string]PT)}
}

func (m *MemoryRepo[T, PT]) List(ctx context.Context) ([]PT, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]PT, 0, len(m.order))
	for _, id := range m.order {
		rec, err := clone[T, PT](m.recs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemoryRepo[T, PT]) Insert(ctx context.Context, rec PT) (PT, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.GetID().IsZero() {
		rec.SetID(primitive.NewObjectID())
	}
	stored, err := clone[T, PT](rec)
	if err != nil {
		return nil, err
	}
	id := stored.GetID().Hex()
	if _, exists := m.recs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.recs[id] = stored
	return rec, nil
}

func (m *MemoryRepo[T, PT]) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) (PT, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.recs[id]
	if !ok {
		return nil, ErrNotFound
	}
	// merge through JSON so partial updates follow the wire field names
	raw, err := json.Marshal(cur)
	if err != nil {
		return nil, err
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}
	for k, v := range patch {
		merged[k] = v
	}
	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var next T
	if err := json.Unmarshal(buf, &next); err != nil {
		return nil, err
	}
	rec := PT(&next)
	rec.SetID(cur.GetID())
	m.recs[id] = rec
	return clone[T, PT](rec)
}

func (m *MemoryRepo[T, PT]) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recs[id]; !ok {
		return nil
	}
	delete(m.recs, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepo[T, PT]) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = make(map[string]PT)
	m.order = nil
	return nil
}

func clone[T any, PT Entity[T]](rec PT) (PT, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var cp T
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, err
	}
	out := PT(&cp)
	out.SetID(rec.GetID())
	return out, nil
}
