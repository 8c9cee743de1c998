package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/talkincode/foodking/config"
	"github.com/talkincode/foodking/internal/catalog"
	"github.com/talkincode/foodking/internal/favorites"
	"github.com/talkincode/foodking/internal/orders"
	"github.com/talkincode/foodking/internal/session"
	"github.com/talkincode/foodking/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides access to the keyed document store
type StoreProvider interface {
	Store() *store.Store
}

// RepositoryProvider provides the domain repositories
type RepositoryProvider interface {
	Catalog() catalog.Repository
	Favorites() favorites.Repository
	Orders() orders.Repository
}

// SessionProvider provides the active cart session
type SessionProvider interface {
	Session() *session.Session
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// BusProvider provides the application event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application
// context. Consumers should depend on specific providers or this
// combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	RepositoryProvider
	SessionProvider
	SchedulerProvider
	BusProvider

	// Release frees application resources
	Release()
}
