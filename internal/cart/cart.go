// Package cart реализует состояние корзины витрины и оформление заказа.
package cart

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/catalog"
	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

var (
	// ErrUnknownProduct возвращается при обращении к товару, которого нет в каталоге.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrEmptyCart возвращается при попытке оформить пустую корзину.
	ErrEmptyCart = errors.New("cart is empty")
)

const demoOrderIDMax = 10000

// retryHint передаётся представлению, когда причина ошибки неинтересна покупателю.
const retryHint = "Tente novamente."

// Submitter отправляет заказ на сервер.
type Submitter interface {
	CreateOrder(ctx context.Context, draft model.OrderDraft) (int64, error)
}

// View отображает состояние корзины и результаты оформления.
type View interface {
	RenderCart(s Snapshot)
	Notify(msg string)
	ShowOrderPlaced(orderID int64, simulated bool)
	ShowError(msg string)
	ResetForm()
}

// Line описывает позицию корзины. Название и цена копируются при добавлении.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal возвращает стоимость позиции.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Snapshot содержит копию состояния корзины для отображения.
type Snapshot struct {
	Lines     []Line
	ItemCount int
	Total     decimal.Decimal
}

// CanCheckout сообщает, доступно ли оформление заказа.
func (s Snapshot) CanCheckout() bool {
	return len(s.Lines) > 0
}

// Form содержит поля формы оформления заказа.
type Form struct {
	Customer string
	Phone    string
	Address  string
	Notes    string
}

// Option настраивает Controller.
type Option func(*Controller)

// WithDemoFallback включает демонстрационный режим: при недоступном сервере
// заказ считается оформленным с синтетическим номером и никуда не сохраняется.
func WithDemoFallback(enabled bool) Option {
	return func(c *Controller) {
		c.demoFallback = enabled
	}
}

// WithOrderIDSource подменяет генератор номеров демонстрационных заказов.
func WithOrderIDSource(next func() int64) Option {
	return func(c *Controller) {
		c.nextDemoID = next
	}
}

// Controller владеет корзиной витрины. Методы не потокобезопасны:
// все события обрабатываются последовательно одной горутиной.
type Controller struct {
	catalog   *catalog.Catalog
	submitter Submitter
	view      View
	logger    *zap.Logger

	lines []Line

	demoFallback bool
	nextDemoID   func() int64

	actions map[Action]actionFunc
}

// NewController создаёт контроллер корзины и отображает пустую корзину.
func NewController(cat *catalog.Catalog, submitter Submitter, view View, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		catalog:   cat,
		submitter: submitter,
		view:      view,
		logger:    logger,
		nextDemoID: func() int64 {
			return rand.Int63n(demoOrderIDMax) + 1
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.actions = c.actionTable()

	c.render()
	return c
}

// Add добавляет товар в корзину или увеличивает количество существующей позиции.
func (c *Controller) Add(productID int64) error {
	p, ok := c.catalog.Product(productID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}

	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		c.lines = append(c.lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  1,
		})
	}

	c.render()
	c.view.Notify(p.Name + " adicionado ao carrinho!")
	return nil
}

// Remove удаляет позицию товара. Отсутствие позиции не считается ошибкой.
func (c *Controller) Remove(productID int64) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
	c.render()
}

// ChangeQuantity изменяет количество на delta. Позиция удаляется, если количество стало <= 0.
func (c *Controller) ChangeQuantity(productID int64, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}

	q := c.lines[i].Quantity + delta
	if q <= 0 {
		c.Remove(productID)
		return
	}

	c.lines[i].Quantity = q
	c.render()
}

// Total возвращает сумму корзины без округления.
func (c *Controller) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount возвращает общее количество единиц товара в корзине.
func (c *Controller) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Snapshot возвращает копию текущего состояния корзины.
func (c *Controller) Snapshot() Snapshot {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return Snapshot{
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

// Submit оформляет заказ из текущего содержимого корзины.
func (c *Controller) Submit(ctx context.Context, form Form) error {
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}

	draft := c.draft(form)

	orderID, err := c.submitter.CreateOrder(ctx, draft)
	if err == nil {
		c.complete(orderID, false)
		c.logger.Info("order placed", zap.Int64("orderID", orderID), zap.String("total", draft.Total.StringFixed(2)))
		return nil
	}

	var rej *storeapi.RejectedError
	switch {
	case errors.As(err, &rej):
		c.view.ShowError(rej.Message)
		return err
	case errors.Is(err, storeapi.ErrUnavailable) && c.demoFallback:
		orderID = c.nextDemoID()
		c.complete(orderID, true)
		c.logger.Warn("demo mode: order was not persisted, server unavailable",
			zap.Int64("simulatedOrderID", orderID),
			zap.String("customer", draft.Customer),
			zap.Int("items", len(draft.Items)),
			zap.String("total", draft.Total.StringFixed(2)),
			zap.Error(err),
		)
		return nil
	default:
		c.logger.Error("submit order error", zap.Error(err))
		c.view.ShowError(retryHint)
		return err
	}
}

func (c *Controller) draft(form Form) model.OrderDraft {
	items := make([]model.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, model.OrderItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}

	return model.OrderDraft{
		Customer: form.Customer,
		Phone:    form.Phone,
		Address:  form.Address,
		Notes:    form.Notes,
		Items:    items,
		Total:    c.Total(),
	}
}

func (c *Controller) complete(orderID int64, simulated bool) {
	c.lines = nil
	c.render()
	c.view.ResetForm()
	c.view.ShowOrderPlaced(orderID, simulated)
}

func (c *Controller) indexOf(productID int64) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Controller) render() {
	c.view.RenderCart(c.Snapshot())
}
