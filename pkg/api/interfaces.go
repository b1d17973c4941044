// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"go.uber.org/zap"
)

// StoreOpener opens the gift store
type StoreOpener interface {
	// OpenStore opens or creates the gift store in dataDir
	OpenStore(dataDir string, logger *zap.Logger) (ClosableGiftStore, error)
}

// ClosableGiftStore is a GiftStore that owns resources
type ClosableGiftStore interface {
	GiftStore
	Close() error
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, store GiftStore, config ServerConfig, logger *zap.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
