// internal/store/store.go
package store

import (
	"context"
	"errors"
)

// Collection names one persisted whole-collection snapshot.
type Collection string

const (
	Catalogs Collection = "catalogs"
	Products Collection = "products"
	Clients  Collection = "clients"
	Orders   Collection = "orders"
	Payments Collection = "payments"
	Settings Collection = "settings"
	Users    Collection = "users"
	AuthLogs Collection = "auth_logs"
)

var AllCollections = []Collection{Catalogs, Products, Clients, Orders, Payments, Settings, Users, AuthLogs}

var ErrPersistence = errors.New("persistence failed")

// DocumentStore persists JSON snapshots keyed by collection. A collection that was never
// written reads back as nil data and no error.
type DocumentStore interface {
	Get(ctx context.Context, collection Collection) ([]byte, error)
	Set(ctx context.Context, collection Collection, data []byte) error
	// SetMany writes several collections in one round trip. Backends that can do so apply it atomically.
	SetMany(ctx context.Context, docs map[Collection][]byte) error
	Ping(ctx context.Context) error
	Close() error
}
