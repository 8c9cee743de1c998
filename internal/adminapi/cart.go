package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/receipt"
	"github.com/talkincode/foodking/internal/session"
	"github.com/talkincode/foodking/internal/webserver"
)

// registerCartRoutes registers the active-cart and receipt endpoints
func registerCartRoutes() {
	webserver.ApiGET("/cart", getCart)
	webserver.ApiPOST("/cart/customer", setCartCustomer)
	webserver.ApiPOST("/cart/items", addCartItem)
	webserver.ApiPUT("/cart/items/:id", setCartQuantity)
	webserver.ApiDELETE("/cart/items/:id", removeCartItem)
	webserver.ApiPOST("/cart/checkout", checkoutCart)
	webserver.ApiGET("/orders/:id/receipt", orderReceipt)
}

func getCart(c echo.Context) error {
	s := deps.Session()
	return webserver.OK(c, map[string]interface{}{
		"items": s.Lines(),
		"total": s.Total(),
	})
}

func setCartCustomer(c echo.Context) error {
	var payload struct {
		Name  string `json:"name"`
		Table string `json:"table"`
	}
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer")
	}
	s := deps.Session()
	s.SetCustomer(payload.Name)
	s.SetTable(payload.Table)
	return webserver.OK(c, payload)
}

func addCartItem(c echo.Context) error {
	var dish domain.Dish
	if err := c.Bind(&dish); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse dish")
	}
	if err := deps.Session().AddItem(dish); err != nil {
		var ve *session.ValidationError
		if errors.As(err, &ve) {
			return webserver.Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error())
		}
		return webserver.Fail(c, http.StatusInternalServerError, "CART_ERROR", err.Error())
	}
	return getCart(c)
}

func setCartQuantity(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
	}
	var payload struct {
		Qty int `json:"qty"`
	}
	if err := c.Bind(&payload); err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity")
	}
	deps.Session().SetQuantity(id, payload.Qty)
	return getCart(c)
}

func removeCartItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return webserver.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid dish ID")
	}
	deps.Session().RemoveItem(id)
	return getCart(c)
}

func checkoutCart(c echo.Context) error {
	order, err := deps.Session().PlaceOrder(c.Request().Context())
	if err != nil {
		if errors.Is(err, session.ErrEmptyCart) {
			return webserver.Fail(c, http.StatusBadRequest, "EMPTY_CART", "Cart is empty")
		}
		return webserver.Fail(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
	}
	return webserver.OK(c, map[string]interface{}{
		"order":   order,
		"receipt": receipt.Format(*order),
	})
}

func orderReceipt(c echo.Context) error {
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
	return webserver.OK(c, receipt.Format(*order))
}
