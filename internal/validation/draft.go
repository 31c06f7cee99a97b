// Package validation содержит проверки входных данных сервера заказов.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/courtside-store/internal/model"
)

// Значения по умолчанию для необязательных полей заказа.
const (
	DefaultCustomer = "Cliente Anônimo"
	NotProvided     = "Não informado"
)

// ErrInvalidDraft оборачивает все ошибки проверки черновика заказа.
var ErrInvalidDraft = errors.New("invalid order")

var totalTolerance = decimal.New(1, -2)

// ValidateDraft проверяет позиции и итог черновика заказа.
func ValidateDraft(d model.OrderDraft) error {
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: pedido sem itens", ErrInvalidDraft)
	}

	sum := decimal.Zero
	for i, it := range d.Items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: item %d sem nome", ErrInvalidDraft, i+1)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: quantidade inválida para %q", ErrInvalidDraft, it.Name)
		}
		if it.UnitPrice.IsNegative() || it.Subtotal.IsNegative() {
			return fmt.Errorf("%w: valor negativo para %q", ErrInvalidDraft, it.Name)
		}
		sum = sum.Add(it.Subtotal)
	}

	if d.Total.Sub(sum).Abs().GreaterThan(totalTolerance) {
		return fmt.Errorf("%w: total %s não confere com os itens (%s)", ErrInvalidDraft, d.Total.StringFixed(2), sum.StringFixed(2))
	}

	return nil
}

// Normalize подставляет значения по умолчанию в пустые контактные поля.
func Normalize(d model.OrderDraft) model.OrderDraft {
	d.Customer = orDefault(d.Customer, DefaultCustomer)
	d.Phone = orDefault(d.Phone, NotProvided)
	d.Address = orDefault(d.Address, NotProvided)
	d.Notes = strings.TrimSpace(d.Notes)
	return d
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
