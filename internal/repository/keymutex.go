package repository

import "sync"

// KeyMutex provides mutual exclusion per string key. Two requests touching
// the same user id or payment reference can interleave across the gateway
// call boundary, so every read-modify-write on a ledger record must run
// under the lock for that record's key. Operations on different keys stay
// independent.
//
// Locks are never reclaimed; the set of keys is bounded by the number of
// users and transactions, which an in-memory process holds anyway.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyMutex() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyMutex) Lock(key string) {
	k.mutex(key).Lock()
}

func (k *KeyMutex) Unlock(key string) {
	k.mutex(key).Unlock()
}

func (k *KeyMutex) mutex(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}

	return m
}
