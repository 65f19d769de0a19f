package operator

import (
	"sort"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// WalletLocks serializes actions per wallet. Locks are always taken in
// ascending id order so two actions touching the same pair of wallets from
// opposite ends cannot deadlock.
type WalletLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewWalletLocks() *WalletLocks {
	return &WalletLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *WalletLocks) lockFor(id uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// Acquire locks every given wallet and returns the release func. Duplicate
// ids are locked once.
func (l *WalletLocks) Acquire(ids []uuid.UUID) func() {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	ordered := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, id := range ordered {
		m := l.lockFor(id)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
