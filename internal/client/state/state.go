// Package state holds the engine's published view-state.
//
// All mutable application state lives in a single Store. Mutations go
// through Apply as pure (Snapshot) → Snapshot functions; consumers read
// immutable snapshots and subscribe to coalesced change notifications.
// The Store is the only synchronization point between the engine's
// operations: concurrent operations race freely and the last writer wins.
package state

import (
	"sync"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
)

// LoadState tracks a list-loading state machine.
type LoadState int

const (
	LoadStateIdle LoadState = iota
	LoadStateLoading
	LoadStateFailed
)

// Snapshot is the complete published view-state at one point in time.
// Slices inside a snapshot must be treated as read-only by consumers;
// mutations must produce fresh slices.
type Snapshot struct {
	SignedIn   bool
	UserID     string
	Profile    *models.UserProfile
	InProgress bool

	MyPosts         []models.Post
	RefreshingPosts bool

	Feed        []models.Post
	FeedLoading bool

	SearchResults []models.Post
	Searching     bool

	Comments     []models.Comment
	CommentsLoad LoadState

	FollowerCount int
}

// Store owns the current Snapshot and a pending one-shot notice.
type Store struct {
	mu        sync.Mutex
	cur       Snapshot
	notice    string
	hasNotice bool
	watchers  []chan struct{}
}

func NewStore() *Store {
	return &Store{}
}

// Apply replaces the current snapshot with fn(current) and wakes watchers.
// fn must be pure: it receives a copy and returns the new value.
func (s *Store) Apply(fn func(Snapshot) Snapshot) {
	s.mu.Lock()
	s.cur = fn(s.cur)
	s.notifyLocked()
	s.mu.Unlock()
}

// Snapshot returns the current published state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Notify stages a one-shot user-visible message. A newer message overwrites
// an unconsumed older one, so the user only ever sees the latest outcome.
func (s *Store) Notify(msg string) {
	s.mu.Lock()
	s.notice = msg
	s.hasNotice = true
	s.notifyLocked()
	s.mu.Unlock()
}

// ConsumeNotice returns the pending notice at most once. The second call
// after a Notify reports false until the next Notify.
func (s *Store) ConsumeNotice() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasNotice {
		return "", false
	}
	s.hasNotice = false
	return s.notice, true
}

// Watch returns a channel that receives a coalesced signal after every
// state change or notice. The channel has capacity one; a slow consumer
// sees at least one signal for any burst of changes.
func (s *Store) Watch() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notifyLocked() {
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
