// Package storeapi предоставляет клиент и формат данных JSON API сервера заказов.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mmeshcher/courtside-store/internal/model"
)

// ErrUnavailable возвращается, если сервер недоступен или ответил не в формате API.
var ErrUnavailable = errors.New("store server unavailable")

// RejectedError возвращается, если сервер ответил success=false.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// Client инкапсулирует HTTP-взаимодействие с сервером заказов.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient создаёт клиент сервера заказов по указанному адресу.
func NewClient(baseURL string) *Client {
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = 5 * time.Second

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		tracer:     otel.Tracer("github.com/mmeshcher/courtside-store/internal/storeapi"),
	}
}

// ListOrders запрашивает полный список заказов.
func (c *Client) ListOrders(ctx context.Context) (orders []model.Order, err error) {
	ctx, span := c.tracer.Start(ctx, "storeapi.ListOrders")
	defer func() { endSpan(span, err) }()

	var resp []Order
	code, err := c.do(ctx, http.MethodGet, "/api/pedidos", nil, &resp)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, code)
	}

	orders = make([]model.Order, 0, len(resp))
	for _, o := range resp {
		orders = append(orders, o.ToModel())
	}
	span.SetAttributes(attribute.Int("orders.count", len(orders)))

	return orders, nil
}

// CreateOrder отправляет черновик заказа и возвращает присвоенный сервером номер.
func (c *Client) CreateOrder(ctx context.Context, draft model.OrderDraft) (id int64, err error) {
	ctx, span := c.tracer.Start(ctx, "storeapi.CreateOrder")
	defer func() { endSpan(span, err) }()

	var resp CreateOrderResponse
	code, err := c.do(ctx, http.MethodPost, "/api/pedidos", DraftFromModel(draft), &resp)
	if err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, rejected(code, resp.Error)
	}
	if resp.OrderID == 0 {
		return 0, fmt.Errorf("create order: response without order id")
	}
	span.SetAttributes(attribute.Int64("order.id", resp.OrderID))

	return resp.OrderID, nil
}

// UpdateStatus запрашивает перевод заказа в новый статус.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (err error) {
	ctx, span := c.tracer.Start(ctx, "storeapi.UpdateStatus",
		trace.WithAttributes(attribute.Int64("order.id", id), attribute.String("order.status", string(status))))
	defer func() { endSpan(span, err) }()

	var resp StatusResponse
	code, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/pedidos/%d/status", id), StatusRequest{Status: string(status)}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return rejected(code, resp.Error)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode response (status %d): %v", ErrUnavailable, resp.StatusCode, err)
	}

	return resp.StatusCode, nil
}

func rejected(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	return &RejectedError{StatusCode: code, Message: msg}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
