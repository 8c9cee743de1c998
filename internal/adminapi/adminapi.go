// Package adminapi registers the REST handlers consumed by the menu,
// kitchen and history views.
package adminapi

import (
	"github.com/talkincode/foodking/internal/catalog"
	"github.com/talkincode/foodking/internal/favorites"
	"github.com/talkincode/foodking/internal/orders"
	"github.com/talkincode/foodking/internal/session"
	"github.com/talkincode/foodking/internal/store"
)

// AppDeps is the slice of the application the handlers need.
type AppDeps interface {
	Catalog() catalog.Repository
	Favorites() favorites.Repository
	Orders() orders.Repository
	Session() *session.Session
	Store() *store.Store
}

var deps AppDeps

// Register wires the handler routes against the application. Must run
// before webserver.New.
func Register(d AppDeps) {
	deps = d
	registerDishRoutes()
	registerOrderRoutes()
	registerFavoriteRoutes()
	registerCartRoutes()
	registerDataRoutes()
}
