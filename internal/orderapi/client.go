// Package orderapi is the best-effort HTTP client for the remote order
// collaborator. Every failure here is expected and recoverable; the
// session falls back to local persistence.
package orderapi

import (
	"context"
	"fmt"
	"time"

	"github.com/guonaihong/gout"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/talkincode/foodking/internal/domain"
)

// Client talks to the remote order API.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New creates a client for the given endpoint, e.g.
// "http://kitchen.local:8088/api".
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{baseURL: baseURL, timeout: timeout}
}

// PlaceResult distinguishes remote commit success from failure so the
// caller can branch to the local commit path instead of unwinding
// through an error.
type PlaceResult struct {
	OK      bool
	OrderID int64
	Err     error
}

// PlaceOrder submits the draft. A transport error, a non-2xx reply or
// success=false all come back as a failed result.
func (c *Client) PlaceOrder(ctx context.Context, draft domain.OrderDraft) PlaceResult {
	var reply struct {
		Success bool  `json:"success"`
		OrderID int64 `json:"order_id"`
	}
	err := gout.POST(c.baseURL+"/orders").
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(draft).
		BindJSON(&reply).
		Do()
	if err != nil {
		return PlaceResult{Err: errors.Wrap(err, "remote order submit")}
	}
	if !reply.Success {
		return PlaceResult{Err: errors.New("remote order rejected")}
	}
	return PlaceResult{OK: true, OrderID: reply.OrderID}
}

// dishRow is the loosely-typed shape the remote API returns for
// dishes; field names and types vary across backend versions.
type dishRow struct {
	ID          interface{} `mapstructure:"id"`
	Name        string      `mapstructure:"name"`
	Price       interface{} `mapstructure:"price"`
	ImgURL      string      `mapstructure:"img_url"`
	Img         string      `mapstructure:"img"`
	CategoryID  string      `mapstructure:"category_id"`
	Category    string      `mapstructure:"category"`
	Description string      `mapstructure:"description"`
}

// GetDishes fetches the remote menu and normalizes the raw rows.
func (c *Client) GetDishes(ctx context.Context) ([]domain.Dish, error) {
	var rows []map[string]interface{}
	err := gout.GET(c.baseURL+"/dishes").
		WithContext(ctx).
		SetTimeout(c.timeout).
		BindJSON(&rows).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "remote dish fetch")
	}
	dishes := make([]domain.Dish, 0, len(rows))
	for _, row := range rows {
		d, err := decodeDish(row)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

func decodeDish(row map[string]interface{}) (domain.Dish, error) {
	var raw dishRow
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return domain.Dish{}, err
	}
	if err := dec.Decode(row); err != nil {
		return domain.Dish{}, errors.Wrap(err, "decode dish row")
	}
	d := domain.Dish{
		ID:       cast.ToInt64(raw.ID),
		Name:     raw.Name,
		Price:    cast.ToFloat64(raw.Price),
		Image:    raw.ImgURL,
		Category: raw.CategoryID,
	}
	if d.Image == "" {
		d.Image = raw.Img
	}
	if d.Category == "" {
		d.Category = raw.Category
	}
	if d.Category == "" {
		d.Category = "other"
	}
	return d, nil
}

// GetPendingOrders fetches the remote pending-order board.
func (c *Client) GetPendingOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := gout.GET(c.baseURL+"/orders/pending").
		WithContext(ctx).
		SetTimeout(c.timeout).
		BindJSON(&orders).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "remote pending orders")
	}
	return orders, nil
}

// UpdateOrderStatus pushes a status change for a remote order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	err := gout.PUT(fmt.Sprintf("%s/orders/%d/status", c.baseURL, id)).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(gout.H{"status": status}).
		Do()
	return errors.Wrap(err, "remote status update")
}

// DeleteOrder removes a remote order.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	err := gout.DELETE(fmt.Sprintf("%s/orders/%d", c.baseURL, id)).
		WithContext(ctx).
		SetTimeout(c.timeout).
		Do()
	return errors.Wrap(err, "remote order delete")
}
