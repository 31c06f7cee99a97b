// Package model содержит доменные сущности магазина и консоли заказов.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category описывает раздел каталога.
type Category string

const (
	CategorySneakers Category = "tênis"
	CategoryBalls    Category = "bolas"
	CategoryShirts   Category = "camisetas"
)

// Product представляет товар каталога. Значения не изменяются после создания каталога.
type Product struct {
	ID          int64
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Icon        string
	Category    Category
	Featured    bool
}

// OrderStatus описывает статус обработки заказа. Значения совпадают со строками API.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "Novo"
	OrderStatusProcessing OrderStatus = "Processando"
	OrderStatusCompleted  OrderStatus = "Concluído"
	OrderStatusCancelled  OrderStatus = "Cancelado"
)

// Statuses перечисляет статусы в порядке жизненного цикла заказа.
var Statuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

// Valid сообщает, является ли строка известным статусом.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal сообщает, что из статуса нет переходов.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Actions возвращает статусы, в которые можно перевести заказ из текущего.
func (s OrderStatus) Actions() []OrderStatus {
	next := transitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo проверяет допустимость перехода s -> next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// OrderItem описывает позицию заказа, зафиксированную на момент оформления.
type OrderItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Order описывает оформленный заказ покупателя. CreatedAtText хранит дату
// в том виде, в каком её прислал сервер; пустая строка означает, что дата
// известна только как CreatedAt.
type Order struct {
	ID            int64
	Customer      string
	Phone         string
	Address       string
	Notes         string
	Items         []OrderItem
	Total         decimal.Decimal
	CreatedAt     time.Time
	CreatedAtText string
	Status        OrderStatus
}

// OrderDraft содержит данные заказа, отправляемые витриной на сервер.
type OrderDraft struct {
	Customer string
	Phone    string
	Address  string
	Notes    string
	Items    []OrderItem
	Total    decimal.Decimal
}
