// Package keymutex serializes read-modify-write operations per subject id.
// Counter updates for one customer must not interleave; operations on
// different subjects stay independent.
package keymutex

import (
	"sync"

	"github.com/google/uuid"
)

type KeyMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyMutex {
	return &KeyMutex{
		locks: make(map[uuid.UUID]*entry),
	}
}

// Lock acquires the mutex for key, creating it on first use.
func (km *KeyMutex) Lock(key uuid.UUID) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &entry{}
		km.locks[key] = e
	}
	e.refs++
	km.mu.Unlock()
	e.mu.Lock()
}

// Unlock releases the mutex for key and drops it once nobody waits.
func (km *KeyMutex) Unlock(key uuid.UUID) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		km.mu.Unlock()
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()
	e.mu.Unlock()
}
