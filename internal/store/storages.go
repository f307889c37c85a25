package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delivery-tracker/internal/config"
	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is the single persistence entry point handed to the service
// layer.
type Storages struct {
	UserRepository     UserRepository
	DeliveryRepository DeliveryRepository

	db *DB
}

// NewStorages connects to PostgreSQL using cfg and constructs every
// repository on top of the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating database connection: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DeliveryRepository: NewDeliveryRepository(db, logger),
		db:                 db,
	}, nil
}

// DB exposes the underlying connection for startup tasks such as running
// migrations. Request-path code must go through the repositories instead.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the shared database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
