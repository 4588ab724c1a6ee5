package store

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every repository the services depend on.
type Storages struct {
	AccountRepository AccountRepository
	VendorRepository  VendorRepository
	ProductRepository ProductRepository
	CartRepository    CartRepository
	SessionStorage    SessionStorage
}

// NewStorages wires the PostgreSQL repositories and the Redis session storage.
func NewStorages(db *DB, redisClient redis.UniversalClient, cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		VendorRepository:  NewVendorRepository(db, logger),
		ProductRepository: NewProductRepository(db, logger),
		CartRepository:    NewCartRepository(db, logger),
		SessionStorage:    NewSessionStorage(redisClient, cfg.Redis.KeyPrefix, logger),
	}
}
