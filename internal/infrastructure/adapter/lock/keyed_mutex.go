package lock

import (
	"context"
	"sync"
)

// keyedEntry is a one-slot semaphore plus the number of goroutines holding
// or waiting on it. An entry is dropped from the table when refs reaches zero.
type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex provides mutual exclusion per key. Different keys never block
// each other, and entries exist only while some goroutine references them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
}

// NewKeyedMutex creates an empty lock table
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*keyedEntry)}
}

// Lock blocks until the key is acquired or ctx is done.
// On success the returned function releases the key and must be called exactly once.
func (k *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	entry := k.acquireRef(key)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		k.releaseRef(key, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			k.releaseRef(key, entry)
		})
	}, nil
}

// Len reports how many keys currently have an entry
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedMutex) acquireRef(key string) *keyedEntry {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry, ok := k.entries[key]
	if !ok {
		entry = &keyedEntry{sem: make(chan struct{}, 1)}
		k.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (k *KeyedMutex) releaseRef(key string, entry *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(k.entries, key)
	}
}
