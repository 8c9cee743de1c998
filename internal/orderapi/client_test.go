package orderapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/orderapi"
)

func sampleDraft() domain.OrderDraft {
	return domain.OrderDraft{
		Customer: "Ravi",
		Table:    "4",
		Cart: []domain.CartLine{
			{Dish: domain.Dish{ID: 11, Name: "Samosa", Price: 30}, Qty: 3},
		},
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		var draft domain.OrderDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Ravi", draft.Customer)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"order_id":9001}`))
	}))
	defer srv.Close()

	client := orderapi.New(srv.URL, 0)
	res := client.PlaceOrder(context.Background(), sampleDraft())

	assert.Equal(t, "POST /orders", gotPath)
	require.True(t, res.OK)
	assert.Equal(t, int64(9001), res.OrderID)
	assert.NoError(t, res.Err)
}

func TestPlaceOrderRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	res := orderapi.New(srv.URL, 0).PlaceOrder(context.Background(), sampleDraft())
	assert.False(t, res.OK)
	assert.Error(t, res.Err)
}

func TestPlaceOrderTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	res := orderapi.New(srv.URL, 0).PlaceOrder(context.Background(), sampleDraft())
	assert.False(t, res.OK)
	assert.Error(t, res.Err)
}

func TestGetDishesNormalizesRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dishes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"7","name":"Paneer Tikka","price":"190.5","img_url":"http://img/7.jpg","category_id":"starters"},
			{"id":8,"name":"Jalebi","price":60,"img":"/img/8.jpg","category":"Desserts"},
			{"id":9,"name":"Chai","price":20}
		]`))
	}))
	defer srv.Close()

	dishes, err := orderapi.New(srv.URL, 0).GetDishes(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, 3)

	assert.Equal(t, domain.Dish{
		ID: 7, Name: "Paneer Tikka", Price: 190.5,
		Image: "http://img/7.jpg", Category: "starters",
	}, dishes[0])
	assert.Equal(t, domain.Dish{
		ID: 8, Name: "Jalebi", Price: 60,
		Image: "/img/8.jpg", Category: "Desserts",
	}, dishes[1])
	// rows with nothing to say about category land in "other"
	assert.Equal(t, "other", dishes[2].Category)
	assert.Equal(t, int64(9), dishes[2].ID)
}

func TestGetPendingOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/pending", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":42,"customer":"Ravi","table":"4","status":"pending"}]`))
	}))
	defer srv.Close()

	list, err := orderapi.New(srv.URL, 0).GetPendingOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(42), list[0].ID)
	assert.Equal(t, domain.OrderStatusPending, list[0].Status)
}

func TestUpdateOrderStatus(t *testing.T) {
	var gotPath, gotStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotStatus = body["status"]
	}))
	defer srv.Close()

	err := orderapi.New(srv.URL, 0).UpdateOrderStatus(context.Background(), 42, "completed")
	require.NoError(t, err)
	assert.Equal(t, "PUT /orders/42/status", gotPath)
	assert.Equal(t, "completed", gotStatus)
}

func TestDeleteOrder(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
	}))
	defer srv.Close()

	err := orderapi.New(srv.URL, 0).DeleteOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "DELETE /orders/42", gotPath)
}
