package storeapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/courtside-store/internal/model"
)

// DateLayout задаёт формат поля "data" в ответах сервера.
const DateLayout = "02/01/2006 15:04:05"

// OrderItem описывает позицию заказа в JSON API.
type OrderItem struct {
	Name      string  `json:"nome"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"preco,omitempty"`
	Subtotal  float64 `json:"subtotal"`
}

// Order описывает заказ в ответе GET /api/pedidos.
type Order struct {
	ID        int64       `json:"id"`
	CreatedAt string      `json:"data"`
	Customer  string      `json:"cliente"`
	Phone     string      `json:"telefone"`
	Address   string      `json:"endereco"`
	Notes     string      `json:"observacoes,omitempty"`
	Items     []OrderItem `json:"itens"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
}

// OrderDraft описывает тело запроса POST /api/pedidos.
type OrderDraft struct {
	Customer string      `json:"cliente"`
	Phone    string      `json:"telefone"`
	Address  string      `json:"endereco"`
	Notes    string      `json:"observacoes"`
	Items    []OrderItem `json:"itens"`
	Total    float64     `json:"total"`
}

// CreateOrderResponse описывает ответ на создание заказа.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"pedido_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StatusRequest описывает тело запроса PUT /api/pedidos/{id}/status.
type StatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse описывает ответ на смену статуса.
type StatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func itemsFromModel(items []model.OrderItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.InexactFloat64(),
			Subtotal:  it.Subtotal.InexactFloat64(),
		})
	}
	return out
}

func itemsToModel(items []OrderItem) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.OrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: decimal.NewFromFloat(it.UnitPrice),
			Subtotal:  decimal.NewFromFloat(it.Subtotal),
		})
	}
	return out
}

// DraftFromModel переводит черновик заказа в формат API.
func DraftFromModel(d model.OrderDraft) OrderDraft {
	return OrderDraft{
		Customer: d.Customer,
		Phone:    d.Phone,
		Address:  d.Address,
		Notes:    d.Notes,
		Items:    itemsFromModel(d.Items),
		Total:    d.Total.InexactFloat64(),
	}
}

// ToModel переводит черновик из формата API в доменную модель.
func (d OrderDraft) ToModel() model.OrderDraft {
	return model.OrderDraft{
		Customer: d.Customer,
		Phone:    d.Phone,
		Address:  d.Address,
		Notes:    d.Notes,
		Items:    itemsToModel(d.Items),
		Total:    decimal.NewFromFloat(d.Total),
	}
}

// OrderFromModel переводит заказ в формат API.
func OrderFromModel(o model.Order) Order {
	return Order{
		ID:        o.ID,
		CreatedAt: o.CreatedAt.Format(DateLayout),
		Customer:  o.Customer,
		Phone:     o.Phone,
		Address:   o.Address,
		Notes:     o.Notes,
		Items:     itemsFromModel(o.Items),
		Total:     o.Total.InexactFloat64(),
		Status:    string(o.Status),
	}
}

// ToModel переводит заказ из формата API в доменную модель. Дата в формате
// DateLayout разбирается в CreatedAt; исходная строка всегда сохраняется
// в CreatedAtText, поэтому заказ с иным форматом даты не теряется.
func (o Order) ToModel() model.Order {
	m := model.Order{
		ID:            o.ID,
		Customer:      o.Customer,
		Phone:         o.Phone,
		Address:       o.Address,
		Notes:         o.Notes,
		Items:         itemsToModel(o.Items),
		Total:         decimal.NewFromFloat(o.Total),
		CreatedAtText: o.CreatedAt,
		Status:        model.OrderStatus(o.Status),
	}
	if createdAt, err := time.ParseInLocation(DateLayout, o.CreatedAt, time.Local); err == nil {
		m.CreatedAt = createdAt
	}
	return m
}
