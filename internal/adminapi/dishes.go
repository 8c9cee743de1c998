package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/webserver"
)

type dishPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"img"`
	Category string  `json:"category"`
}

// registerDishRoutes registers dish and category endpoints
func registerDishRoutes() {
	webserver.ApiGET("/dishes", listDishes)
	webserver.ApiGET("/dishes/:id", getDish)
	webserver.ApiPOST("/dishes", createDish)
	webserver.ApiPUT("/dishes/:id", updateDish)
	webserver.ApiDELETE("/dishes/:id", deleteDish)
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiPOST("/categories", addCategory)
	webserver.ApiDELETE("/categories/:name", deleteCategory)
}

func listDishes(c echo.Context) error {
	// q searches name/category; category filters exactly
	q := strings.TrimSpace(c.QueryParam("q"))
	category := strings.TrimSpace(c.QueryParam("category"))

	var (
		rows []domain.Dish
		err  error
	)
	switch {
	case q != "":
		rows, err = deps.Catalog().Search(q)
	case category != "":
		rows, err = deps.Catalog().ListByCategory(category)
	default:
		rows, err = deps.Catalog().ListDishes()
	}
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, rows)
}

func getDish(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
	}
	dish, err := deps.Catalog().GetDish(id)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	if dish == nil {
		return webserver.Fail(c, http.StatusNotFound, "NOT_FOUND", "Dish not found")
	}
	return webserver.OK(c, dish)
}

func createDish(c echo.Context) error {
	var payload dishPayload
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse dish")
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required")
	}
	if payload.Price < 0 {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must be >= 0")
	}
	dish, err := deps.Catalog().CreateDish(domain.Dish{
		Name:     payload.Name,
		Price:    payload.Price,
		Image:    strings.TrimSpace(payload.Image),
		Category: strings.TrimSpace(payload.Category),
	})
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, dish)
}

func updateDish(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
	}
	var patch domain.DishPatch
	if err := c.Bind(&patch); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse patch")
	}
	dish, err := deps.Catalog().UpdateDish(id, patch)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	if dish == nil {
		return webserver.Fail(c, http.StatusNotFound, "NOT_FOUND", "Dish not found")
	}
	return webserver.OK(c, dish)
}

func deleteDish(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
	}
	removed, err := deps.Catalog().DeleteDish(id)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"id": id, "removed": removed})
}

func listCategories(c echo.Context) error {
	categories, err := deps.Catalog().ListCategories()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, categories)
}

func addCategory(c echo.Context) error {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required")
	}
	categories, err := deps.Catalog().AddCategory(strings.TrimSpace(payload.Name))
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, categories)
}

func deleteCategory(c echo.Context) error {
	categories, err := deps.Catalog().DeleteCategory(c.Param("name"))
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, categories)
}
