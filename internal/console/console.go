// Package console реализует консоль администратора: зеркало списка заказов
// сервера, фильтрацию по статусу и смену статусов.
package console

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

var (
	// ErrUnknownOrder возвращается, если заказа нет в локальном списке.
	ErrUnknownOrder = errors.New("unknown order")
	// ErrTransitionNotOffered возвращается для перехода, который консоль не предлагает.
	ErrTransitionNotOffered = errors.New("status transition not offered")
	// ErrUnknownFilter возвращается для неизвестного значения фильтра.
	ErrUnknownFilter = errors.New("unknown filter")
)

// FilterAll показывает все заказы.
const FilterAll Filter = "todos"

// Filter задаёт подмножество отображаемых заказов: FilterAll или статус.
type Filter string

// OrderSource описывает доступ консоли к серверу заказов.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}

// Confirmer запрашивает у пользователя подтверждение (да/нет).
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// View отображает состояние консоли.
type View interface {
	RenderOrders(s Snapshot)
	RenderLoadError(err error)
	Alert(msg string)
}

// Counts содержит количество заказов по статусам.
type Counts struct {
	New        int
	Processing int
	Completed  int
	Cancelled  int
	Total      int
}

// Snapshot содержит отфильтрованные заказы и счётчики для отображения.
type Snapshot struct {
	Orders []model.Order
	Counts Counts
	Filter Filter
}

// Console владеет локальной копией списка заказов. Методы не потокобезопасны:
// состояние изменяется только из цикла Run или последовательными вызовами.
type Console struct {
	source    OrderSource
	confirmer Confirmer
	view      View
	logger    *zap.Logger

	orders []model.Order
	filter Filter

	actions map[Action]actionFunc
}

// New создаёт консоль с пустым списком заказов и фильтром FilterAll.
func New(source OrderSource, confirmer Confirmer, view View, logger *zap.Logger) *Console {
	c := &Console{
		source:    source,
		confirmer: confirmer,
		view:      view,
		logger:    logger,
		filter:    FilterAll,
	}
	c.actions = c.actionTable()
	return c
}

// Refresh загружает полный список заказов и заменяет им локальное состояние.
// При ошибке прежнее состояние сохраняется, а вместо списка показывается заглушка.
func (c *Console) Refresh(ctx context.Context) error {
	orders, err := c.source.ListOrders(ctx)
	if err != nil {
		c.logger.Warn("load orders error", zap.Error(err))
		c.view.RenderLoadError(err)
		return err
	}

	c.orders = orders
	c.render()
	return nil
}

// Counts пересчитывает количество заказов по статусам.
func (c *Console) Counts() Counts {
	counts := Counts{Total: len(c.orders)}
	for _, o := range c.orders {
		switch o.Status {
		case model.OrderStatusNew:
			counts.New++
		case model.OrderStatusProcessing:
			counts.Processing++
		case model.OrderStatusCompleted:
			counts.Completed++
		case model.OrderStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

// SetFilter меняет фильтр отображения без обращения к серверу.
func (c *Console) SetFilter(f Filter) error {
	if f != FilterAll && !model.OrderStatus(f).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, f)
	}
	c.filter = f
	c.render()
	return nil
}

// Filter возвращает текущий фильтр.
func (c *Console) Filter() Filter {
	return c.filter
}

// Visible возвращает заказы, прошедшие фильтр, в исходном порядке.
func (c *Console) Visible() []model.Order {
	out := make([]model.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if c.filter == FilterAll || o.Status == model.OrderStatus(c.filter) {
			out = append(out, o)
		}
	}
	return out
}

// RequestStatusChange переводит заказ в новый статус после подтверждения пользователя.
// Локальный статус меняется только после успешного ответа сервера.
func (c *Console) RequestStatusChange(ctx context.Context, id int64, status model.OrderStatus) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownOrder, id)
	}
	if !c.orders[i].Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotOffered, c.orders[i].Status, status)
	}

	prompt := fmt.Sprintf("Deseja realmente alterar o status deste pedido para %q?", string(status))
	if !c.confirmer.Confirm(ctx, prompt) {
		return nil
	}

	if err := c.source.UpdateStatus(ctx, id, status); err != nil {
		var rej *storeapi.RejectedError
		if errors.As(err, &rej) {
			c.view.Alert(rej.Message)
		} else {
			c.view.Alert("Erro ao atualizar status. Tente novamente.")
		}
		c.logger.Warn("update status error", zap.Int64("orderID", id), zap.String("status", string(status)), zap.Error(err))
		return err
	}

	c.orders[i].Status = status
	c.render()
	return nil
}

func (c *Console) indexOf(id int64) int {
	for i, o := range c.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (c *Console) render() {
	c.view.RenderOrders(Snapshot{
		Orders: c.Visible(),
		Counts: c.Counts(),
		Filter: c.filter,
	})
}
