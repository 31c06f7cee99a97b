// Package handler содержит HTTP-обработчики API сервера заказов.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/repository"
	"github.com/mmeshcher/courtside-store/internal/service"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
	"github.com/mmeshcher/courtside-store/internal/validation"
)

const orderNotFoundMessage = "Pedido não encontrado"

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	CreateOrder(ctx context.Context, draft model.OrderDraft) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
}

// Handler реализует HTTP-обработчики API сервера заказов.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

// CreateOrder принимает новый заказ витрины.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req storeapi.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, storeapi.CreateOrderResponse{Error: "invalid request body"})
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, validation.ErrInvalidDraft) {
			writeJSON(w, http.StatusBadRequest, storeapi.CreateOrderResponse{Error: err.Error()})
			return
		}
		h.logger.Error("create order error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, storeapi.CreateOrderResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	writeJSON(w, http.StatusCreated, storeapi.CreateOrderResponse{Success: true, OrderID: order.ID})
}

// ListOrders возвращает все заказы, начиная с самых новых.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("list orders error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := make([]storeapi.Order, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, storeapi.OrderFromModel(o))
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateStatus меняет статус заказа.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusNotFound, storeapi.StatusResponse{Error: orderNotFoundMessage})
		return
	}

	var req storeapi.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, storeapi.StatusResponse{Error: "invalid request body"})
		return
	}

	err = h.service.UpdateStatus(r.Context(), id, model.OrderStatus(req.Status))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, storeapi.StatusResponse{Success: true})
	case errors.Is(err, service.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, storeapi.StatusResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, storeapi.StatusResponse{Error: orderNotFoundMessage})
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, repository.ErrStatusConflict):
		writeJSON(w, http.StatusConflict, storeapi.StatusResponse{Error: err.Error()})
	default:
		h.logger.Error("update status error", zap.Error(err), zap.Int64("orderID", id))
		writeJSON(w, http.StatusInternalServerError, storeapi.StatusResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
