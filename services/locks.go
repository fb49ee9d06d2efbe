package services

import "sync"

// keyedMutex hands out one mutex per entity id, so mutations against the
// same chef or table serialize without blocking unrelated keys.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uint]*sync.Mutex)}
}

func (k *keyedMutex) lock(id uint) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()
	m.Lock()
	return m.Unlock
}
