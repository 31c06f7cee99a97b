package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmeshcher/courtside-store/internal/console"
	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

var actionLabels = map[console.Action]string{
	console.ActionProcess:  "Processar",
	console.ActionComplete: "Concluir",
	console.ActionCancel:   "Cancelar",
}

// ConsoleView выводит список заказов консоли администратора.
type ConsoleView struct {
	out io.Writer
}

// NewConsoleView создаёт представление консоли.
func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

// RenderOrders выводит счётчики и заказы, прошедшие фильтр.
func (v *ConsoleView) RenderOrders(s console.Snapshot) {
	fmt.Fprintf(v.out, "\nNovos: %d | Processando: %d | Concluídos: %d | Cancelados: %d | Total: %d\n",
		s.Counts.New, s.Counts.Processing, s.Counts.Completed, s.Counts.Cancelled, s.Counts.Total)
	fmt.Fprintf(v.out, "Filtro: %s\n", s.Filter)

	if len(s.Orders) == 0 {
		fmt.Fprintln(v.out, "Nenhum pedido encontrado")
		return
	}

	for _, o := range s.Orders {
		fmt.Fprintf(v.out, "\nPedido #%d  [%s]  %s\n", o.ID, o.Status, orderDate(o))
		fmt.Fprintf(v.out, "  Cliente: %s\n  Telefone: %s\n  Endereço: %s\n", o.Customer, o.Phone, o.Address)
		for _, it := range o.Items {
			fmt.Fprintf(v.out, "  - %s x%d  %s\n", it.Name, it.Quantity, Money(it.Subtotal))
		}
		if o.Notes != "" {
			fmt.Fprintf(v.out, "  Observações: %s\n", o.Notes)
		}
		fmt.Fprintf(v.out, "  Total: %s\n", Money(o.Total))

		var actions []string
		for _, next := range o.Status.Actions() {
			if a, ok := console.ActionFor(next); ok {
				actions = append(actions, fmt.Sprintf("%s (%s %d)", actionLabels[a], a, o.ID))
			}
		}
		if len(actions) > 0 {
			fmt.Fprintf(v.out, "  Ações: %s\n", strings.Join(actions, ", "))
		}
	}
}

// RenderLoadError выводит заглушку вместо списка заказов.
func (v *ConsoleView) RenderLoadError(err error) {
	fmt.Fprintln(v.out, "\nErro ao carregar pedidos. Tente novamente.")
}

// Alert выводит сообщение об ошибке.
func (v *ConsoleView) Alert(msg string) {
	fmt.Fprintf(v.out, "! %s\n", msg)
}

func orderDate(o model.Order) string {
	if o.CreatedAtText != "" {
		return o.CreatedAtText
	}
	if o.CreatedAt.IsZero() {
		return ""
	}
	return o.CreatedAt.Format(storeapi.DateLayout)
}
