package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/orderapi"
	"github.com/talkincode/foodking/internal/orders"
	"github.com/talkincode/foodking/internal/session"
	"github.com/talkincode/foodking/internal/store"
	"github.com/talkincode/foodking/pkg/ids"
)

var (
	samosa = domain.Dish{ID: 11, Name: "Samosa", Price: 30, Category: "Snacks"}
	dal    = domain.Dish{ID: 5, Name: "Dal Makhani", Price: 180, Category: "North Indian"}
)

func newTestSession(t *testing.T, remote *orderapi.Client, bus EventBus.Bus) (*session.Session, orders.Repository) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	repo := orders.NewBoltRepository(s, ids.NewSequence(0))
	return session.New(repo, remote, bus), repo
}

func TestAddItemRequiresCustomerAndTable(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)

	err := sess.AddItem(samosa)
	var ve *session.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "customer", ve.Field)

	sess.SetCustomer("Ravi")
	err = sess.AddItem(samosa)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "table", ve.Field)

	sess.SetTable("4")
	require.NoError(t, sess.AddItem(samosa))
	assert.Len(t, sess.Lines(), 1)
}

func TestTwoDistinctDishesTwoLines(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")

	require.NoError(t, sess.AddItem(samosa))
	require.NoError(t, sess.AddItem(dal))
	require.NoError(t, sess.AddItem(dal))

	lines := sess.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 30.0*1+180.0*2, sess.Total())
}

func TestSameDishIncrementsQty(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")

	require.NoError(t, sess.AddItem(samosa))
	require.NoError(t, sess.AddItem(samosa))

	lines := sess.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
}

func TestSameNameDifferentIDStaysSeparate(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")

	// two differently priced dishes sharing a name must not merge
	require.NoError(t, sess.AddItem(domain.Dish{ID: 5, Name: "Dal Makhani", Price: 180}))
	require.NoError(t, sess.AddItem(domain.Dish{ID: 31, Name: "Dal Makhani", Price: 100}))

	require.Len(t, sess.Lines(), 2)
	assert.Equal(t, 280.0, sess.Total())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")

	require.NoError(t, sess.AddItem(samosa))
	require.NoError(t, sess.AddItem(dal))

	sess.SetQuantity(samosa.ID, 0)
	lines := sess.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, dal.ID, lines[0].ID)

	sess.SetQuantity(dal.ID, 4)
	assert.Equal(t, 720.0, sess.Total())
}

func TestRemoveItem(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")

	require.NoError(t, sess.AddItem(samosa))
	sess.RemoveItem(samosa.ID)
	assert.Empty(t, sess.Lines())
	assert.Equal(t, 0.0, sess.Total())
}

func TestPlaceOrderClearsCartAndSnapshots(t *testing.T) {
	sess, repo := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")

	require.NoError(t, sess.AddItem(samosa))
	require.NoError(t, sess.AddItem(samosa))
	require.NoError(t, sess.AddItem(samosa))
	before := sess.Lines()

	order, err := sess.PlaceOrder(context.Background())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "Ravi", order.Customer)
	assert.Equal(t, "4", order.Table)
	assert.Equal(t, before, order.Cart)

	// cart resets to empty exactly once
	assert.Empty(t, sess.Lines())
	assert.Equal(t, 0.0, sess.Total())

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].ID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	sess, repo := newTestSession(t, nil, nil)

	order, err := sess.PlaceOrder(context.Background())
	assert.Nil(t, order)
	require.ErrorIs(t, err, session.ErrEmptyCart)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPlaceOrderDefaultsCustomerAndTable(t *testing.T) {
	sess, _ := newTestSession(t, nil, nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")
	require.NoError(t, sess.AddItem(samosa))

	// inputs cleared between add and place fall back to defaults
	sess.SetCustomer("")
	sess.SetTable("")
	order, err := sess.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", order.Customer)
	assert.Equal(t, "Takeaway", order.Table)
}

func TestPlaceOrderRemoteSuccessKeepsRemoteID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"order_id":9001}`))
	}))
	defer srv.Close()

	sess, repo := newTestSession(t, orderapi.New(srv.URL, 0), nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")
	require.NoError(t, sess.AddItem(samosa))

	order, err := sess.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9001), order.ID)

	stored, err := repo.Get(9001)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestPlaceOrderRemoteFailureFallsBackLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kitchen down", http.StatusBadGateway)
	}))
	defer srv.Close()

	sess, repo := newTestSession(t, orderapi.New(srv.URL, 0), nil)
	sess.SetCustomer("Ravi")
	sess.SetTable("4")
	require.NoError(t, sess.AddItem(samosa))

	order, err := sess.PlaceOrder(context.Background())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(1), order.ID) // locally generated

	assert.Empty(t, sess.Lines())
	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	bus := EventBus.New()
	sess, _ := newTestSession(t, nil, bus)

	var published *domain.Order
	require.NoError(t, bus.Subscribe(session.TopicOrderPlaced, func(o domain.Order) {
		published = &o
	}))

	sess.SetCustomer("Ravi")
	sess.SetTable("4")
	require.NoError(t, sess.AddItem(samosa))

	order, err := sess.PlaceOrder(context.Background())
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, order.ID, published.ID)
}
