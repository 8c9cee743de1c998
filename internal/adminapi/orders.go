package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/webserver"
)

// registerOrderRoutes registers order and analytics endpoints
func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/:id", getOrder)
	webserver.ApiPOST("/orders", createOrder)
	webserver.ApiPUT("/orders/:id", updateOrder)
	webserver.ApiPUT("/orders/:id/status", updateOrderStatus)
	webserver.ApiDELETE("/orders/:id", deleteOrder)
	webserver.ApiGET("/analytics/statistics", orderStatistics)
	webserver.ApiGET("/analytics/popular", popularDishes)
	webserver.ApiGET("/analytics/revenue", revenueByDate)
}

func listOrders(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	customer := strings.TrimSpace(c.QueryParam("customer"))
	table := strings.TrimSpace(c.QueryParam("table"))

	var (
		rows []domain.Order
		err  error
	)
	switch {
	case status != "":
		rows, err = deps.Orders().ByStatus(status)
	case customer != "":
		rows, err = deps.Orders().ByCustomer(customer)
	case table != "":
		rows, err = deps.Orders().ByTable(table)
	default:
		rows, err = deps.Orders().List()
	}
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, rows)
}

func getOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
	}
	order, err := deps.Orders().Get(id)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	if order == nil {
		return webserver.Fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	}
	return webserver.OK(c, order)
}

func createOrder(c echo.Context) error {
	var draft domain.OrderDraft
	if err := c.Bind(&draft); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order")
	}
	if len(draft.Cart) == 0 {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Cart must not be empty")
	}
	order, err := deps.Orders().Create(draft)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, order)
}

func updateOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
	}
	var patch domain.OrderPatch
	if err := c.Bind(&patch); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse patch")
	}
	order, err := deps.Orders().Update(id, patch)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	if order == nil {
		return webserver.Fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	}
	return webserver.OK(c, order)
}

func updateOrderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status")
	}
	if payload.Status != domain.OrderStatusPending && payload.Status != domain.OrderStatusCompleted {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown status")
	}
	completed := payload.Status == domain.OrderStatusCompleted
	order, err := deps.Orders().Update(id, domain.OrderPatch{
		Status:    &payload.Status,
		Completed: &completed,
	})
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	if order == nil {
		return webserver.Fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
	}
	return webserver.OK(c, order)
}

func deleteOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
	}
	if _, err := deps.Orders().Delete(id); err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{"id": id})
}

func orderStatistics(c echo.Context) error {
	statistics, err := deps.Orders().Statistics()
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, statistics)
}

func popularDishes(c echo.Context) error {
	limit := cast.ToInt(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 10
	}
	ranking, err := deps.Orders().PopularDishes(limit)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, ranking)
}

func revenueByDate(c echo.Context) error {
	days := cast.ToInt(c.QueryParam("days"))
	if days <= 0 {
		days = 7
	}
	revenue, err := deps.Orders().RevenueByDate(days)
	if err != nil {
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, revenue)
}
