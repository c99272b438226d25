package hashmap

import (
	"sync"
	"time"
)

type expiringEntry[V any] struct {
	raw      V
	inserted time.Time
}

// ExpiringMap is a thread safe hash map whose values expire after a fixed lifetime.
// Expired values are dropped lazily on lookup; StartCleanup additionally schedules a task
// that sweeps them out in a specific interval so the map does not grow unbounded.
type ExpiringMap[K comparable, V any] struct {
	mtx      sync.RWMutex
	entries  map[K]expiringEntry[V]
	lifetime time.Duration
	stop     chan struct{}
}

// NewExpiring creates a new expiring map whose values exist for the given lifetime
func NewExpiring[K comparable, V any](lifetime time.Duration) *ExpiringMap[K, V] {
	return &ExpiringMap[K, V]{
		entries:  make(map[K]expiringEntry[V]),
		lifetime: lifetime,
	}
}

// Size returns the amount of stored key-value pairs, including not yet swept out expired ones
func (obj *ExpiringMap[K, V]) Size() int {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return len(obj.entries)
}

// Lookup returns the value assigned to the given key and a boolean indicating whether
// a non-expired value was present
func (obj *ExpiringMap[K, V]) Lookup(key K) (V, bool) {
	obj.mtx.RLock()
	entry, ok := obj.entries[key]
	obj.mtx.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}
	if time.Since(entry.inserted) > obj.lifetime {
		obj.Unset(key)
		var zero V
		return zero, false
	}
	return entry.raw, true
}

// Set sets a key-value pair, resetting the value's lifetime
func (obj *ExpiringMap[K, V]) Set(key K, value V) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.entries[key] = expiringEntry[V]{
		raw:      value,
		inserted: time.Now(),
	}
}

// Unset deletes the value assigned to the given key
func (obj *ExpiringMap[K, V]) Unset(key K) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	delete(obj.entries, key)
}

// StartCleanup schedules the task that sweeps out expired values in a specific interval.
// If the task is already running, this is a no-op.
func (obj *ExpiringMap[K, V]) StartCleanup(tick time.Duration) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	if obj.stop != nil {
		return
	}
	obj.stop = make(chan struct{})

	go func(stop chan struct{}) {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				obj.sweep()
			case <-stop:
				return
			}
		}
	}(obj.stop)
}

// StopCleanup stops the cleanup task.
// If the task is not running, this is a no-op.
func (obj *ExpiringMap[K, V]) StopCleanup() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	if obj.stop == nil {
		return
	}
	close(obj.stop)
	obj.stop = nil
}

func (obj *ExpiringMap[K, V]) sweep() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	for key, entry := range obj.entries {
		if time.Since(entry.inserted) > obj.lifetime {
			delete(obj.entries, key)
		}
	}
}
