package forms

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hidrodema/obra-forms/store"
)

// memStore is an in-memory DocumentStore that records every call, so
// tests can assert on create/update/delete counts and injected failures.
type memStore struct {
	seq   int
	docs  map[string]map[string]store.Doc
	times map[string][2]time.Time // created, updated

	creates int
	updates int
	deletes []string

	failCreate error
	failUpdate error

	clock time.Time
}

func newMemStore() *memStore {
	return &memStore{
		docs:  map[string]map[string]store.Doc{},
		times: map[string][2]time.Time{},
		clock: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) key(collection, id string) string {
	return collection + "/" + id
}

func (m *memStore) Create(ctx context.Context, collection string, doc store.Doc) (string, error) {
	if m.failCreate != nil {
		return "", m.failCreate
	}
	m.creates++
	m.seq++
	id := fmt.Sprintf("doc-%d", m.seq)

	if m.docs[collection] == nil {
		m.docs[collection] = map[string]store.Doc{}
	}
	copied := store.Doc{}
	for k, v := range doc {
		copied[k] = v
	}
	m.docs[collection][id] = copied
	now := m.tick()
	m.times[m.key(collection, id)] = [2]time.Time{now, now}
	return id, nil
}

func (m *memStore) Update(ctx context.Context, collection, id string, partial store.Doc) error {
	if m.failUpdate != nil {
		return m.failUpdate
	}
	existing, ok := m.docs[collection][id]
	if !ok {
		return store.ErrNotFound
	}
	m.updates++
	for k, v := range partial {
		existing[k] = v
	}
	stamps := m.times[m.key(collection, id)]
	stamps[1] = m.tick()
	m.times[m.key(collection, id)] = stamps
	return nil
}

func (m *memStore) Delete(ctx context.Context, collection, id string) error {
	if _, ok := m.docs[collection][id]; !ok {
		return store.ErrNotFound
	}
	delete(m.docs[collection], id)
	m.deletes = append(m.deletes, m.key(collection, id))
	return nil
}

func (m *memStore) GetByID(ctx context.Context, collection, id string) (store.Doc, error) {
	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return m.read(collection, id, doc), nil
}

func (m *memStore) Query(ctx context.Context, collection string, filter *store.Filter, order *store.Order) ([]store.Doc, error) {
	ids := []string{}
	for id, doc := range m.docs[collection] {
		if filter != nil && doc[filter.Field] != filter.Value {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti := m.times[m.key(collection, ids[i])][0]
		tj := m.times[m.key(collection, ids[j])][0]
		if order != nil && order.Desc {
			return tj.Before(ti)
		}
		return ti.Before(tj)
	})

	out := make([]store.Doc, len(ids))
	for i, id := range ids {
		out[i] = m.read(collection, id, m.docs[collection][id])
	}
	return out, nil
}

func (m *memStore) read(collection, id string, doc store.Doc) store.Doc {
	out := store.Doc{}
	for k, v := range doc {
		out[k] = v
	}
	stamps := m.times[m.key(collection, id)]
	out["id"] = id
	out["createdAt"] = stamps[0].Format(time.RFC3339Nano)
	out["updatedAt"] = stamps[1].Format(time.RFC3339Nano)
	return out
}
