package cart

import (
	"context"
	"sync"
	"time"

	"dudhiya-app/internal/auth"
	"dudhiya-app/internal/logger"

	"go.uber.org/zap"
)

// Service is the cart reconciliation layer: it reads the caller's auth state
// on every operation, routes to the guest or authenticated repository, and
// serializes mutations per cart owner so two rapid taps cannot race a
// read-modify-write cycle.
type Service interface {
	GetCart(ctx context.Context) (*Cart, error)
	AddItem(ctx context.Context, params AddItemParams) (*Cart, error)
	UpdateItem(ctx context.Context, itemID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*Cart, error)
	ClearCart(ctx context.Context) error
	CountItems(ctx context.Context) (int, error)
}

type service struct {
	local  Repository
	remote Repository

	mu    sync.Mutex
	locks map[string]*ownerLock
}

// ownerLock holds one owner's mutation lock and the last time it was taken.
type ownerLock struct {
	mu       sync.Mutex
	lastSeen time.Time
}

// NewService creates a cart service over the guest and authenticated
// repositories.
func NewService(local, remote Repository) Service {
	s := &service{
		local:  local,
		remote: remote,
		locks:  make(map[string]*ownerLock),
	}
	go s.cleanupLocks()
	return s
}

// repoFor resolves mode from the auth state carried by ctx. The state is
// never cached between operations, so a login or logout between two calls
// switches the path immediately.
func (s *service) repoFor(ctx context.Context) (Repository, string) {
	st := auth.StateFrom(ctx)
	if st.IsAuthenticated {
		return s.remote, st.OwnerKey()
	}
	return s.local, st.OwnerKey()
}

// lockOwner takes the per-owner mutation lock and returns its release func.
func (s *service) lockOwner(ownerKey string) func() {
	for {
		s.mu.Lock()
		l, ok := s.locks[ownerKey]
		if !ok {
			l = &ownerLock{}
			s.locks[ownerKey] = l
		}
		l.lastSeen = time.Now()
		s.mu.Unlock()

		l.mu.Lock()

		// The janitor may have evicted l between the map read and the
		// acquire. If the map no longer holds this entry, retry.
		s.mu.Lock()
		current := s.locks[ownerKey]
		s.mu.Unlock()
		if current == l {
			return l.mu.Unlock
		}
		l.mu.Unlock()
	}
}

func (s *service) cleanupLocks() {
	for {
		time.Sleep(time.Minute)
		s.evictIdleLocks(3 * time.Minute)
	}
}

// evictIdleLocks drops owner locks untouched for maxIdle so the map cannot
// grow without bound. A lock that is currently held is left alone.
func (s *service) evictIdleLocks(maxIdle time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, l := range s.locks {
		if time.Since(l.lastSeen) > maxIdle && l.mu.TryLock() {
			delete(s.locks, key)
			l.mu.Unlock()
		}
	}
}

func (s *service) GetCart(ctx context.Context) (*Cart, error) {
	repo, owner := s.repoFor(ctx)
	return repo.Fetch(ctx, owner)
}

func (s *service) AddItem(ctx context.Context, params AddItemParams) (*Cart, error) {
	repo, owner := s.repoFor(ctx)
	defer s.lockOwner(owner)()

	c, err := repo.Add(ctx, owner, params)
	if err != nil {
		logger.FromCtx(ctx).Warn("add to cart failed",
			zap.String("owner", owner),
			zap.String("product_id", params.ProductID),
			zap.Error(err),
		)
		return nil, err
	}
	return c, nil
}

func (s *service) UpdateItem(ctx context.Context, itemID string, quantity int) (*Cart, error) {
	repo, owner := s.repoFor(ctx)
	defer s.lockOwner(owner)()

	return repo.Update(ctx, owner, itemID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, itemID string) (*Cart, error) {
	repo, owner := s.repoFor(ctx)
	defer s.lockOwner(owner)()

	return repo.Remove(ctx, owner, itemID)
}

func (s *service) ClearCart(ctx context.Context) error {
	repo, owner := s.repoFor(ctx)
	defer s.lockOwner(owner)()

	return repo.Clear(ctx, owner)
}

func (s *service) CountItems(ctx context.Context) (int, error) {
	repo, owner := s.repoFor(ctx)
	return repo.Count(ctx, owner)
}
