package agent

import (
	"context"
	"sync"
)

// userLocks serializes work per user while letting different users run in
// parallel. Entries are reference counted and dropped when unused.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sem  chan struct{}
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: map[string]*userLock{}}
}

// lock blocks until userID is free or ctx is done.
func (l *userLocks) lock(ctx context.Context, userID string) (func(), error) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{sem: make(chan struct{}, 1)}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	select {
	case ul.sem <- struct{}{}:
		return func() {
			<-ul.sem
			l.release(userID, ul)
		}, nil
	case <-ctx.Done():
		l.release(userID, ul)
		return nil, ctx.Err()
	}
}

func (l *userLocks) release(userID string, ul *userLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ul.refs--
	if ul.refs == 0 {
		delete(l.locks, userID)
	}
}

func (l *userLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
