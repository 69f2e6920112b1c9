package session

import (
	"net/http"
	"sync"
)

// MemoryStore is an in-process store used by tests and anywhere a session
// handle is needed without an HTTP request. It implements Store, Session
// and Watcher; two handles opened from the same MemoryStore share state,
// which is how cross-tab convergence is exercised.
type MemoryStore struct {
	mu       sync.RWMutex
	values   map[string]string
	prefix   string
	watchers map[string]map[int]func(value string, ok bool)
	nextID   int
}

func NewMemoryStore(prefix string) *MemoryStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &MemoryStore{
		values:   make(map[string]string),
		prefix:   prefix,
		watchers: make(map[string]map[int]func(string, bool)),
	}
}

func (m *MemoryStore) Open(w http.ResponseWriter, r *http.Request) Session {
	return m
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[m.prefix+":"+key]; ok {
		return v, true
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	m.values[m.prefix+":"+key] = value
	fns := m.watchersFor(key)
	m.mu.Unlock()

	for _, fn := range fns {
		fn(value, true)
	}
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	delete(m.values, m.prefix+":"+key)
	delete(m.values, key)
	fns := m.watchersFor(key)
	m.mu.Unlock()

	for _, fn := range fns {
		fn("", false)
	}
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	cleared := make(map[string][]func(string, bool))
	for key, fns := range m.watchers {
		for _, fn := range fns {
			cleared[key] = append(cleared[key], fn)
		}
	}
	m.values = make(map[string]string)
	m.mu.Unlock()

	for _, fns := range cleared {
		for _, fn := range fns {
			fn("", false)
		}
	}
	return nil
}

// SeedRaw writes an un-namespaced value, simulating state left behind by an
// older client that predates prefixing.
func (m *MemoryStore) SeedRaw(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Watch registers fn to run whenever key is written or removed through any
// handle of this store. The returned cancel unregisters it.
func (m *MemoryStore) Watch(key string, fn func(value string, ok bool)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watchers[key] == nil {
		m.watchers[key] = make(map[int]func(string, bool))
	}
	id := m.nextID
	m.nextID++
	m.watchers[key][id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.watchers[key], id)
	}
}

func (m *MemoryStore) watchersFor(key string) []func(string, bool) {
	fns := make([]func(string, bool), 0, len(m.watchers[key]))
	for _, fn := range m.watchers[key] {
		fns = append(fns, fn)
	}
	return fns
}
