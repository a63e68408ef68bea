package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry struct {
	key     string
	value   []byte
	expires time.Time
}

// memory 带过期时间的LRU
type memory struct {
	mu    sync.Mutex
	size  int
	ttl   time.Duration
	ll    *list.List
	items map[string]*list.Element
	now   func() time.Time
}

func newMemory(size int, ttl time.Duration) *memory {
	return &memory{
		size:  size,
		ttl:   ttl,
		ll:    list.New(),
		items: make(map[string]*list.Element, size),
		now:   time.Now,
	}
}

func (m *memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return nil, ErrMiss
	}

	e := el.Value.(*entry)
	if m.now().After(e.expires) {
		m.remove(el)
		return nil, ErrMiss
	}

	m.ll.MoveToFront(el)
	return e.value, nil
}

func (m *memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	expires := m.now().Add(m.ttl)
	if el, ok := m.items[key]; ok {
		e := el.Value.(*entry)
		e.value, e.expires = value, expires
		m.ll.MoveToFront(el)
		return nil
	}

	m.items[key] = m.ll.PushFront(&entry{key: key, value: value, expires: expires})
	for m.ll.Len() > m.size {
		m.remove(m.ll.Back())
	}
	return nil
}

func (m *memory) remove(el *list.Element) {
	m.ll.Remove(el)
	delete(m.items, el.Value.(*entry).key)
}

func (m *memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ll.Len()
}

func (m *memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ll.Init()
	m.items = map[string]*list.Element{}
	return nil
}
