package repository

import (
	"context"
	"sync"
	"time"

	"github.com/mmeshcher/courtside-store/internal/model"
)

// MemoryRepository хранит заказы в памяти процесса. Используется, если БД не настроена.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders []model.Order
	nextID int64
}

// NewMemoryRepository создаёт пустое хранилище заказов в памяти.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Close ничего не делает и нужен для совместимости с PostgresRepository.
func (r *MemoryRepository) Close() error {
	return nil
}

// CreateOrder сохраняет заказ со статусом "Novo".
func (r *MemoryRepository) CreateOrder(_ context.Context, draft model.OrderDraft, createdAt time.Time) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := newOrder(r.nextID, draft, createdAt)
	r.nextID++
	r.orders = append(r.orders, o)

	return cloneOrder(o), nil
}

// ListOrders возвращает все заказы, начиная с самых новых.
func (r *MemoryRepository) ListOrders(_ context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, cloneOrder(r.orders[i]))
	}
	return out, nil
}

// GetOrder возвращает заказ по номеру.
func (r *MemoryRepository) GetOrder(_ context.Context, id int64) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrOrderNotFound
	}
	o := cloneOrder(r.orders[i])
	return &o, nil
}

// UpdateOrderStatus переводит заказ из статуса from в статус to.
func (r *MemoryRepository) UpdateOrderStatus(_ context.Context, id int64, from, to model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	if r.orders[i].Status != from {
		return ErrStatusConflict
	}
	r.orders[i].Status = to
	return nil
}

func (r *MemoryRepository) indexOf(id int64) int {
	for i, o := range r.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func cloneOrder(o model.Order) model.Order {
	items := make([]model.OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
