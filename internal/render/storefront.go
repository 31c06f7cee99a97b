// Package render содержит текстовые представления витрины и консоли заказов.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/courtside-store/internal/cart"
	"github.com/mmeshcher/courtside-store/internal/model"
)

// Money форматирует сумму для отображения с двумя знаками после точки.
func Money(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// StorefrontView выводит каталог, корзину и результаты оформления в терминал.
type StorefrontView struct {
	out  io.Writer
	form *CheckoutForm
}

// NewStorefrontView создаёт представление витрины. form очищается после успешного заказа.
func NewStorefrontView(out io.Writer, form *CheckoutForm) *StorefrontView {
	return &StorefrontView{out: out, form: form}
}

// RenderCatalog выводит список товаров.
func (v *StorefrontView) RenderCatalog(products []model.Product) {
	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t\tPRODUTO\tCATEGORIA\tPREÇO\t")
	for _, p := range products {
		name := p.Name
		if p.Featured {
			name += " ★ Destaque"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", p.ID, p.Icon, name, capitalize(string(p.Category)), Money(p.UnitPrice))
	}
	_ = tw.Flush()
}

// RenderCart выводит содержимое корзины.
func (v *StorefrontView) RenderCart(s cart.Snapshot) {
	fmt.Fprintf(v.out, "\n🛒 Carrinho (%d)\n", s.ItemCount)
	if len(s.Lines) == 0 {
		fmt.Fprintln(v.out, "  Seu carrinho está vazio")
	} else {
		tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
		for _, l := range s.Lines {
			fmt.Fprintf(tw, "  %d\t%s\tx%d\t%s cada\t%s\t\n", l.ProductID, l.Name, l.Quantity, Money(l.UnitPrice), Money(l.Subtotal()))
		}
		_ = tw.Flush()
	}
	fmt.Fprintf(v.out, "  Total: %s\n", Money(s.Total))
	if !s.CanCheckout() {
		fmt.Fprintln(v.out, "  (finalizar pedido indisponível)")
	}
}

// Notify выводит короткое уведомление.
func (v *StorefrontView) Notify(msg string) {
	fmt.Fprintf(v.out, "✔ %s\n", msg)
}

// ShowOrderPlaced сообщает номер оформленного заказа.
func (v *StorefrontView) ShowOrderPlaced(orderID int64, simulated bool) {
	fmt.Fprintf(v.out, "\nPedido #%d realizado com sucesso!\n", orderID)
	if simulated {
		fmt.Fprintln(v.out, "Modo demonstração: o pedido não foi salvo (servidor não disponível).")
	}
}

// ShowError выводит сообщение об ошибке оформления.
func (v *StorefrontView) ShowError(msg string) {
	fmt.Fprintf(v.out, "Erro ao enviar pedido: %s\n", msg)
}

// ResetForm очищает сохранённые поля формы оформления.
func (v *StorefrontView) ResetForm() {
	if v.form != nil {
		v.form.Reset()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
