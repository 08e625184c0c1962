package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/backend"
	"github.com/imobiliaria/portal-locacao/internal/model"
)

// ClientDirectoryService caches the settlement client list. The cache is
// refreshed by the scheduler and lazily on first use.
type ClientDirectoryService struct {
	backend backend.Client
	logger  *zap.Logger

	mu        sync.RWMutex
	clientes  []model.Cliente
	refreshed time.Time
}

// NewClientDirectoryService creates a new ClientDirectoryService.
func NewClientDirectoryService(client backend.Client, logger *zap.Logger) *ClientDirectoryService {
	return &ClientDirectoryService{
		backend: client,
		logger:  logger.Named("clients"),
	}
}

// Refresh reloads the list from the backend. On failure the previous list is kept.
func (s *ClientDirectoryService) Refresh(ctx context.Context) error {
	clientes, err := s.backend.ListClientes(ctx)
	if err != nil {
		s.logger.Warn("client directory refresh failed", zap.Error(err))
		return err
	}
	if clientes == nil {
		clientes = []model.Cliente{}
	}

	s.mu.Lock()
	s.clientes = clientes
	s.refreshed = time.Now()
	s.mu.Unlock()

	s.logger.Debug("client directory refreshed", zap.Int("count", len(clientes)))
	return nil
}

// List returns the cached clients, loading them on first use.
func (s *ClientDirectoryService) List(ctx context.Context) ([]model.Cliente, error) {
	s.mu.RLock()
	loaded := !s.refreshed.IsZero()
	clientes := s.clientes
	s.mu.RUnlock()

	if loaded {
		return clientes, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientes, nil
}

// RefreshedAt returns when the cache was last loaded; zero if never.
func (s *ClientDirectoryService) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}
