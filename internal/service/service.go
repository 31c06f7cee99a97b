// Package service реализует бизнес-логику сервера заказов.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/metrics"
	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/repository"
	"github.com/mmeshcher/courtside-store/internal/validation"
)

var (
	// ErrInvalidStatus возвращается для неизвестной строки статуса.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidTransition возвращается для недопустимого перехода между статусами.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	CreateOrder(ctx context.Context, draft model.OrderDraft, createdAt time.Time) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, from, to model.OrderStatus) error
}

// Service содержит бизнес-логику сервера заказов.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService создаёт новый сервис с указанным репозиторием.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// CreateOrder проверяет черновик и сохраняет новый заказ.
func (s *Service) CreateOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error) {
	draft = validation.Normalize(draft)
	if err := validation.ValidateDraft(draft); err != nil {
		metrics.OrdersRejectedTotal.WithLabelValues("validation").Inc()
		return model.Order{}, err
	}

	order, err := s.repo.CreateOrder(ctx, draft, s.now())
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderValue.Observe(order.Total.InexactFloat64())

	fields := []zap.Field{
		zap.Int64("orderID", order.ID),
		zap.String("customer", order.Customer),
		zap.String("phone", order.Phone),
		zap.String("address", order.Address),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Int("items", len(order.Items)),
	}
	if order.Notes != "" {
		fields = append(fields, zap.String("notes", order.Notes))
	}
	s.logger.Info("new order received", fields...)
	for _, it := range order.Items {
		s.logger.Debug("order item",
			zap.Int64("orderID", order.ID),
			zap.String("name", it.Name),
			zap.Int("quantity", it.Quantity),
			zap.String("subtotal", it.Subtotal.StringFixed(2)),
		)
	}

	return order, nil
}

// ListOrders возвращает все заказы, начиная с самых новых.
func (s *Service) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateStatus переводит заказ в новый статус, если переход допустим.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if !status.Valid() {
		metrics.StatusChangesRejectedTotal.WithLabelValues("invalid_status").Inc()
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			metrics.StatusChangesRejectedTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	if !order.Status.CanTransitionTo(status) {
		metrics.StatusChangesRejectedTotal.WithLabelValues("transition").Inc()
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.repo.UpdateOrderStatus(ctx, id, order.Status, status); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			metrics.StatusChangesRejectedTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.StatusChangesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info("order status changed",
		zap.Int64("orderID", id),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)),
	)
	return nil
}
