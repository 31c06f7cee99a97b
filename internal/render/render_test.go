package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/cart"
	"github.com/mmeshcher/courtside-store/internal/catalog"
	"github.com/mmeshcher/courtside-store/internal/console"
	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "R$ 569.70", Money(decimal.RequireFromString("569.7")))
	assert.Equal(t, "R$ 0.00", Money(decimal.Zero))
	assert.Equal(t, "R$ 0.01", Money(decimal.RequireFromString("0.005")))
}

func TestStorefrontView_Cart(t *testing.T) {
	var buf bytes.Buffer
	v := NewStorefrontView(&buf, nil)

	v.RenderCart(cart.Snapshot{})
	assert.Contains(t, buf.String(), "Seu carrinho está vazio")
	assert.Contains(t, buf.String(), "finalizar pedido indisponível")

	buf.Reset()
	price := decimal.RequireFromString("189.90")
	v.RenderCart(cart.Snapshot{
		Lines:     []cart.Line{{ProductID: 4, Name: "Bola de Basquete Spalding", UnitPrice: price, Quantity: 3}},
		ItemCount: 3,
		Total:     price.Mul(decimal.NewFromInt(3)),
	})
	out := buf.String()
	assert.Contains(t, out, "Carrinho (3)")
	assert.Contains(t, out, "x3")
	assert.Contains(t, out, "Total: R$ 569.70")
	assert.NotContains(t, out, "indisponível")
}

func TestStorefrontView_Catalog(t *testing.T) {
	var buf bytes.Buffer
	NewStorefrontView(&buf, nil).RenderCatalog(catalog.Default().All())

	out := buf.String()
	assert.Contains(t, out, "Tênis Nike Air Jordan ★ Destaque")
	assert.Contains(t, out, "Bolas")
	assert.Equal(t, 13, strings.Count(out, "\n"))
}

func TestStorefrontView_OrderPlaced(t *testing.T) {
	var buf bytes.Buffer
	v := NewStorefrontView(&buf, nil)

	v.ShowOrderPlaced(42, false)
	assert.Contains(t, buf.String(), "Pedido #42")
	assert.NotContains(t, buf.String(), "demonstração")

	buf.Reset()
	v.ShowOrderPlaced(777, true)
	assert.Contains(t, buf.String(), "Modo demonstração")
}

type failingSubmitter struct{ err error }

func (s failingSubmitter) CreateOrder(context.Context, model.OrderDraft) (int64, error) {
	return 0, s.err
}

func TestStorefrontView_SubmitErrorsHaveSinglePrefix(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unavailable", err: storeapi.ErrUnavailable, want: "Erro ao enviar pedido: Tente novamente.\n"},
		{name: "rejected", err: &storeapi.RejectedError{StatusCode: 400, Message: "pedido sem itens"}, want: "Erro ao enviar pedido: pedido sem itens\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			v := NewStorefrontView(&buf, nil)
			c := cart.NewController(catalog.Default(), failingSubmitter{err: tt.err}, v, zap.NewNop())
			require.NoError(t, c.Add(4))

			buf.Reset()
			require.Error(t, c.Submit(context.Background(), cart.Form{}))
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, 1, strings.Count(buf.String(), "Erro ao enviar pedido"))
		})
	}
}

func TestStorefrontView_ResetForm(t *testing.T) {
	form := &CheckoutForm{values: cart.Form{Customer: "Ana"}}
	NewStorefrontView(&bytes.Buffer{}, form).ResetForm()
	assert.Equal(t, cart.Form{}, form.values)
}

func TestConsoleView_RenderOrders(t *testing.T) {
	var buf bytes.Buffer
	v := NewConsoleView(&buf)

	v.RenderOrders(console.Snapshot{
		Orders: []model.Order{{
			ID:        7,
			Customer:  "Ana",
			Notes:     "portão azul",
			Items:     []model.OrderItem{{Name: "Camiseta NBA Bulls", Quantity: 1, Subtotal: decimal.RequireFromString("229.9")}},
			Total:     decimal.RequireFromString("229.9"),
			CreatedAt: time.Date(2026, 10, 18, 14, 30, 0, 0, time.UTC),
			Status:    model.OrderStatusNew,
		}},
		Counts: console.Counts{New: 1, Total: 1},
		Filter: console.FilterAll,
	})

	out := buf.String()
	assert.Contains(t, out, "Novos: 1")
	assert.Contains(t, out, "Pedido #7  [Novo]  18/10/2026 14:30:00")
	assert.Contains(t, out, "Camiseta NBA Bulls x1  R$ 229.90")
	assert.Contains(t, out, "Observações: portão azul")
	assert.Contains(t, out, "Processar (process 7)")
	assert.Contains(t, out, "Cancelar (cancel 7)")
	assert.NotContains(t, out, "Concluir")
}

func TestConsoleView_ShowsServerDateVerbatim(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleView(&buf).RenderOrders(console.Snapshot{
		Orders: []model.Order{{ID: 2, CreatedAtText: "2024-05-01 10:00:00", Status: model.OrderStatusNew}},
	})
	assert.Contains(t, buf.String(), "Pedido #2  [Novo]  2024-05-01 10:00:00")
}

func TestConsoleView_TerminalOrderHasNoActions(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleView(&buf).RenderOrders(console.Snapshot{
		Orders: []model.Order{{ID: 3, Status: model.OrderStatusCompleted}},
	})
	assert.NotContains(t, buf.String(), "Ações")
}

func TestConsoleView_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleView(&buf).RenderOrders(console.Snapshot{Filter: console.FilterAll})
	assert.Contains(t, buf.String(), "Nenhum pedido encontrado")
}

func TestCheckoutForm_KeepsValuesBetweenAttempts(t *testing.T) {
	var out bytes.Buffer
	form := &CheckoutForm{}

	p := NewPrompter(strings.NewReader("Ana\n11 9999\nRua A, 1\n\n"), &out)
	got, ok := form.Fill(p)
	require.True(t, ok)
	assert.Equal(t, cart.Form{Customer: "Ana", Phone: "11 9999", Address: "Rua A, 1"}, got)

	p = NewPrompter(strings.NewReader("\n\nRua B, 2\nfrágil\n"), &out)
	got, ok = form.Fill(p)
	require.True(t, ok)
	assert.Equal(t, cart.Form{Customer: "Ana", Phone: "11 9999", Address: "Rua B, 2", Notes: "frágil"}, got)
	assert.Contains(t, out.String(), "Nome [Ana]: ")
}

func TestCheckoutForm_EOF(t *testing.T) {
	form := &CheckoutForm{}
	_, ok := form.Fill(NewPrompter(strings.NewReader("Ana\n"), &bytes.Buffer{}))
	assert.False(t, ok)
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"s", "Sim", " y ", "YES"} {
		assert.True(t, IsYes(s), s)
	}
	for _, s := range []string{"", "n", "não", "talvez"} {
		assert.False(t, IsYes(s), s)
	}
}

func TestChannelConfirmer(t *testing.T) {
	lines := make(chan string, 2)
	var out bytes.Buffer
	c := NewChannelConfirmer(lines, &out)

	lines <- "sim"
	assert.True(t, c.Confirm(context.Background(), "Confirmar?"))
	assert.Contains(t, out.String(), "Confirmar? [s/N]")

	lines <- "n"
	assert.False(t, c.Confirm(context.Background(), "Confirmar?"))

	close(lines)
	assert.False(t, c.Confirm(context.Background(), "Confirmar?"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, NewChannelConfirmer(make(chan string), &out).Confirm(ctx, "Confirmar?"))
}

func TestScanLines(t *testing.T) {
	var got []string
	for line := range ScanLines(context.Background(), strings.NewReader("a\nb\n")) {
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
