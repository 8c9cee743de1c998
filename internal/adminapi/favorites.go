package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/webserver"
)

// registerFavoriteRoutes registers favorites endpoints
func registerFavoriteRoutes() {
	webserver.ApiGET("/favorites", listFavorites)
	webserver.ApiPOST("/favorites", addFavorite)
	webserver.ApiDELETE("/favorites/:id", removeFavorite)
}

func listFavorites(c echo.Context) error {
	favorites, err := deps.Favorites().List()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, favorites)
}

func addFavorite(c echo.Context) error {
	var dish domain.Dish
	if err := c.Bind(&dish); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse dish")
	}
	entry, err := deps.Favorites().Add(dish)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	if entry == nil {
		// already bookmarked, no-op
		return webserver.OK(c, map[string]interface{}{"added": false})
	}
	return webserver.OK(c, entry)
}

func removeFavorite(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
	}
	removed, err := deps.Favorites().Remove(id)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"id": id, "removed": removed})
}
