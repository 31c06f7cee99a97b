package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/repository"
	"github.com/mmeshcher/courtside-store/internal/validation"
)

type stubRepo struct {
	created   []model.OrderDraft
	getOrder  *model.Order
	getErr    error
	updateErr error

	updates []model.OrderStatus
}

func (s *stubRepo) Close() error { return nil }

func (s *stubRepo) CreateOrder(ctx context.Context, draft model.OrderDraft, createdAt time.Time) (model.Order, error) {
	s.created = append(s.created, draft)
	return model.Order{ID: int64(len(s.created)), Customer: draft.Customer, Total: draft.Total, Status: model.OrderStatusNew, CreatedAt: createdAt}, nil
}

func (s *stubRepo) ListOrders(ctx context.Context) ([]model.Order, error) {
	return nil, nil
}

func (s *stubRepo) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.getOrder, s.getErr
}

func (s *stubRepo) UpdateOrderStatus(ctx context.Context, id int64, from, to model.OrderStatus) error {
	s.updates = append(s.updates, from, to)
	return s.updateErr
}

func validDraft() model.OrderDraft {
	price := decimal.RequireFromString("189.90")
	sub := price.Mul(decimal.NewFromInt(3))
	return model.OrderDraft{
		Items: []model.OrderItem{{Name: "Bola de Basquete Spalding", Quantity: 3, UnitPrice: price, Subtotal: sub}},
		Total: sub,
	}
}

func TestCreateOrder_AppliesDefaults(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, zap.NewNop())

	order, err := svc.CreateOrder(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, validation.DefaultCustomer, repo.created[0].Customer)
	assert.Equal(t, validation.NotProvided, repo.created[0].Phone)
	assert.Equal(t, validation.NotProvided, repo.created[0].Address)
}

func TestCreateOrder_RejectsInvalidDraft(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), model.OrderDraft{Customer: "Ana"})
	assert.ErrorIs(t, err, validation.ErrInvalidDraft)
	assert.Empty(t, repo.created)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&stubRepo{}, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 1, "Enviado")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{getErr: repository.ErrOrderNotFound}, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 1, model.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    model.OrderStatus
		to      model.OrderStatus
		wantErr error
	}{
		{"new to processing", model.OrderStatusNew, model.OrderStatusProcessing, nil},
		{"processing to completed", model.OrderStatusProcessing, model.OrderStatusCompleted, nil},
		{"new to cancelled", model.OrderStatusNew, model.OrderStatusCancelled, nil},
		{"completed to cancelled", model.OrderStatusCompleted, model.OrderStatusCancelled, ErrInvalidTransition},
		{"cancelled to new", model.OrderStatusCancelled, model.OrderStatusNew, ErrInvalidTransition},
		{"new to completed", model.OrderStatusNew, model.OrderStatusCompleted, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{getOrder: &model.Order{ID: 7, Status: tt.from}}
			svc := NewService(repo, zap.NewNop())

			err := svc.UpdateStatus(context.Background(), 7, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []model.OrderStatus{tt.from, tt.to}, repo.updates)
		})
	}
}

func TestUpdateStatus_PropagatesConflict(t *testing.T) {
	repo := &stubRepo{
		getOrder:  &model.Order{ID: 7, Status: model.OrderStatusNew},
		updateErr: repository.ErrStatusConflict,
	}
	svc := NewService(repo, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), 7, model.OrderStatusCancelled)
	if !errors.Is(err, repository.ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict, got %v", err)
	}
}

func TestServiceWithMemoryRepository(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewService(repo, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, validDraft())
	require.NoError(t, err)
	assert.Equal(t, 18, order.CreatedAt.Day())

	require.NoError(t, svc.UpdateStatus(ctx, order.ID, model.OrderStatusProcessing))
	require.NoError(t, svc.UpdateStatus(ctx, order.ID, model.OrderStatusCompleted))
	assert.ErrorIs(t, svc.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled), ErrInvalidTransition)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusCompleted, orders[0].Status)
}
