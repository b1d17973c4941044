// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/storage"
)

// giftsDir is the pebble directory inside the data directory
const giftsDir = "gifts"

// DefaultStoreOpener opens the pebble backed gift store
type DefaultStoreOpener struct{}

// NewStoreOpener creates a new store opener
func NewStoreOpener() StoreOpener {
	return &DefaultStoreOpener{}
}

// OpenStore opens the gift store under dataDir
func (o *DefaultStoreOpener) OpenStore(dataDir string, logger *zap.Logger) (ClosableGiftStore, error) {
	store, err := storage.Open(filepath.Join(dataDir, giftsDir), logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, store GiftStore, config ServerConfig, logger *zap.Logger) error {
	return StartServer(ctx, store, config, logger)
}
