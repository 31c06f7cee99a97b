package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/courtside-store/internal/model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateDraft(t *testing.T) {
	ball := model.OrderItem{Name: "Bola", Quantity: 2, UnitPrice: d("189.90"), Subtotal: d("379.80")}

	tests := []struct {
		name  string
		draft model.OrderDraft
		valid bool
	}{
		{
			name:  "valid",
			draft: model.OrderDraft{Items: []model.OrderItem{ball}, Total: d("379.80")},
			valid: true,
		},
		{
			name:  "float noise within a cent",
			draft: model.OrderDraft{Items: []model.OrderItem{ball}, Total: d("379.8000000001")},
			valid: true,
		},
		{
			name:  "no items",
			draft: model.OrderDraft{Total: d("0")},
			valid: false,
		},
		{
			name: "zero quantity",
			draft: model.OrderDraft{
				Items: []model.OrderItem{{Name: "Bola", Quantity: 0, Subtotal: d("0")}},
			},
			valid: false,
		},
		{
			name: "negative price",
			draft: model.OrderDraft{
				Items: []model.OrderItem{{Name: "Bola", Quantity: 1, UnitPrice: d("-1"), Subtotal: d("-1")}},
				Total: d("-1"),
			},
			valid: false,
		},
		{
			name: "missing name",
			draft: model.OrderDraft{
				Items: []model.OrderItem{{Name: " ", Quantity: 1, Subtotal: d("1")}},
				Total: d("1"),
			},
			valid: false,
		},
		{
			name:  "total mismatch",
			draft: model.OrderDraft{Items: []model.OrderItem{ball}, Total: d("100")},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if tt.valid && err != nil {
				t.Fatalf("ValidateDraft() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidDraft) {
				t.Fatalf("ValidateDraft() = %v, want ErrInvalidDraft", err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(model.OrderDraft{Customer: "  ", Phone: "", Address: " Rua A ", Notes: "  x "})

	if got.Customer != DefaultCustomer {
		t.Fatalf("customer = %q, want %q", got.Customer, DefaultCustomer)
	}
	if got.Phone != NotProvided {
		t.Fatalf("phone = %q, want %q", got.Phone, NotProvided)
	}
	if got.Address != "Rua A" {
		t.Fatalf("address = %q, want %q", got.Address, "Rua A")
	}
	if got.Notes != "x" {
		t.Fatalf("notes = %q, want %q", got.Notes, "x")
	}
}
