package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vncsmyrnk/versus/internal/core/domain"
	"github.com/vncsmyrnk/versus/internal/core/ports"
)

// syncService keeps the in-memory collection as the single source of
// truth for rendering and mirrors every mutation to the remote store
// by pushing the entire collection, fire-and-forget.
//
// Pushes are not serialized: two rapid mutations race two pushes and
// the last write wins at the store, possibly discarding the
// intermediate state. Callers accept last-write-wins semantics.
type syncService struct {
	store   ports.RemoteStore
	confirm ports.ConfirmFunc
	logger  *slog.Logger

	mu       sync.Mutex
	cond     *sync.Cond
	items    []domain.Comparison
	inFlight int
	subs     []func()
}

func NewSyncService(store ports.RemoteStore, confirm ports.ConfirmFunc, logger *slog.Logger) ports.Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	s := &syncService{
		store:   store,
		confirm: confirm,
		logger:  logger,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Load replaces the in-memory collection with the remote one. On
// failure the current collection is left untouched and the error is
// returned; callers log it and carry on with stale state.
func (s *syncService) Load(ctx context.Context) error {
	s.setInFlight(1)
	defer s.setInFlight(-1)

	items, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load comparisons: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify()
	return nil
}

// Comparisons returns a copy of the current collection.
func (s *syncService) Comparisons() []domain.Comparison {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Comparison(nil), s.items...)
}

func (s *syncService) Add(ctx context.Context, input ports.AddComparisonInput) (domain.Comparison, error) {
	if input.A == "" || input.B == "" {
		return domain.Comparison{}, domain.ErrMissingItemName
	}

	c := domain.NewComparison(input.A, input.B, input.AImg, input.BImg)

	s.mu.Lock()
	s.items = append([]domain.Comparison{c}, s.items...)
	snapshot := append([]domain.Comparison(nil), s.items...)
	s.mu.Unlock()

	s.notify()
	s.push(ctx, snapshot)
	return c, nil
}

func (s *syncService) Vote(ctx context.Context, id string, side domain.Side) error {
	if !side.Valid() {
		return domain.ErrInvalidSide
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrComparisonNotFound
	}
	if side == domain.SideA {
		s.items[i].VotesA++
	} else {
		s.items[i].VotesB++
	}
	snapshot := append([]domain.Comparison(nil), s.items...)
	s.mu.Unlock()

	s.notify()
	s.push(ctx, snapshot)
	return nil
}

func (s *syncService) ResetVotes(ctx context.Context, id string) error {
	if !s.confirmed("Reset votes for this comparison?") {
		return domain.ErrConfirmationDeclined
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrComparisonNotFound
	}
	s.items[i].VotesA = 0
	s.items[i].VotesB = 0
	snapshot := append([]domain.Comparison(nil), s.items...)
	s.mu.Unlock()

	s.notify()
	s.push(ctx, snapshot)
	return nil
}

func (s *syncService) Delete(ctx context.Context, id string) error {
	if !s.confirmed("Delete this comparison?") {
		return domain.ErrConfirmationDeclined
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.ErrComparisonNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	snapshot := append([]domain.Comparison(nil), s.items...)
	s.mu.Unlock()

	s.notify()
	s.push(ctx, snapshot)
	return nil
}

// Subscribe registers a callback invoked after every collection or
// sync-state change, for a rendering layer to repaint on.
func (s *syncService) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Syncing reports whether a load or push is in flight. It only drives
// an indicator; mutations stay available while it is true.
func (s *syncService) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Wait blocks until no push is in flight. Short-lived callers use it
// to drain before exiting; nothing requires it.
func (s *syncService) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inFlight > 0 {
		s.cond.Wait()
	}
}

// push mirrors the given snapshot to the remote store in the
// background. Failures are logged and never retried; the local
// mutation stands and the store stays behind until the next
// successful push.
func (s *syncService) push(ctx context.Context, snapshot []domain.Comparison) {
	s.setInFlight(1)
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer s.setInFlight(-1)
		if err := s.store.Update(ctx, snapshot); err != nil {
			s.logger.Error("failed to push comparisons", "error", err, "count", len(snapshot))
		}
	}()
}

func (s *syncService) confirmed(prompt string) bool {
	if s.confirm == nil {
		return false
	}
	return s.confirm(prompt)
}

// indexOf must be called with mu held.
func (s *syncService) indexOf(id string) int {
	for i, c := range s.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *syncService) setInFlight(delta int) {
	s.mu.Lock()
	s.inFlight += delta
	s.cond.Broadcast()
	subs := s.subscribers()
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *syncService) notify() {
	s.mu.Lock()
	subs := s.subscribers()
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// subscribers must be called with mu held.
func (s *syncService) subscribers() []func() {
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	return subs
}
