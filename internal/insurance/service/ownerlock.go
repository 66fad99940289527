package service

import "sync"

// ownerLocks serializes mutations per owner. Two concurrent mutating calls
// for the same owner would otherwise race on the read-modify-write of the
// index document and the later full-document overwrite would silently drop
// the earlier write. Locks are never evicted; cardinality is the number of
// distinct owners seen by this process.
type ownerLocks struct {
	locks sync.Map // ownerID -> *sync.Mutex
}

func (l *ownerLocks) lock(ownerID string) *sync.Mutex {
	mu, _ := l.locks.LoadOrStore(ownerID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}
