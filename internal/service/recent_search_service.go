package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/apperrors"
	"github.com/imobiliaria/portal-locacao/internal/kvstore"
	"github.com/imobiliaria/portal-locacao/internal/search"
)

// recentNamespace is the kvstore namespace holding recent searches.
const recentNamespace = "recent_searches"

// RecentSearchService keeps a short per-user list of recent queries.
type RecentSearchService struct {
	store  kvstore.Store
	limit  int
	logger *zap.Logger

	// mu serializes read-modify-write cycles on the same store.
	mu sync.Mutex
}

// NewRecentSearchService creates a new RecentSearchService keeping at most limit entries per user.
func NewRecentSearchService(store kvstore.Store, limit int, logger *zap.Logger) *RecentSearchService {
	if limit < 1 {
		limit = 1
	}
	return &RecentSearchService{
		store:  store,
		limit:  limit,
		logger: logger.Named("recent"),
	}
}

// List returns the user's recent queries, most recent first.
func (s *RecentSearchService) List(ctx context.Context, user string) ([]string, error) {
	if user == "" {
		return nil, apperrors.ErrMissingIdentity
	}
	return s.load(ctx, user)
}

// Record moves query to the front of the user's list. Duplicates are matched
// ignoring case and accents; the list is capped at the configured limit.
func (s *RecentSearchService) Record(ctx context.Context, user, query string) ([]string, error) {
	if user == "" {
		return nil, apperrors.ErrMissingIdentity
	}
	query = strings.TrimSpace(query)
	if !search.Valid(query) {
		return s.load(ctx, user)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx, user)
	if err != nil {
		return nil, err
	}

	key := search.Normalize(query)
	next := make([]string, 0, s.limit)
	next = append(next, query)
	for _, q := range current {
		if len(next) == s.limit {
			break
		}
		if search.Normalize(q) != key {
			next = append(next, q)
		}
	}

	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToStoreRecent, err)
	}
	if err := s.store.Set(ctx, recentNamespace, user, data); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToStoreRecent, err)
	}
	return next, nil
}

// Clear removes the user's list.
func (s *RecentSearchService) Clear(ctx context.Context, user string) error {
	if user == "" {
		return apperrors.ErrMissingIdentity
	}
	if err := s.store.Delete(ctx, recentNamespace, user); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrFailedToStoreRecent, err)
	}
	return nil
}

// Prune drops lists not updated since olderThan ago.
func (s *RecentSearchService) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := s.store.Prune(ctx, recentNamespace, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("pruned recent searches", zap.Int64("removed", n))
	}
	return n, nil
}

func (s *RecentSearchService) load(ctx context.Context, user string) ([]string, error) {
	data, err := s.store.Get(ctx, recentNamespace, user)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		// A corrupt entry is treated as empty and overwritten on the next Record.
		s.logger.Warn("discarding unreadable recent searches", zap.String("user", user), zap.Error(err))
		return []string{}, nil
	}
	if len(list) > s.limit {
		list = list[:s.limit]
	}
	return list, nil
}
