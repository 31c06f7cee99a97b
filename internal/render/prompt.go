package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mmeshcher/courtside-store/internal/cart"
)

// Prompter читает ответы пользователя построчно.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter создаёт Prompter поверх потоков ввода и вывода.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line читает следующую строку. false означает конец ввода.
func (p *Prompter) Line() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// Ask выводит вопрос и читает ответ. Пустой ответ заменяется значением def.
func (p *Prompter) Ask(label, def string) (string, bool) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, ok := p.Line()
	if !ok {
		return "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, true
	}
	return line, true
}

// CheckoutForm хранит поля формы оформления между попытками отправки.
type CheckoutForm struct {
	values cart.Form
}

// Fill запрашивает поля формы, предлагая ранее введённые значения.
func (f *CheckoutForm) Fill(p *Prompter) (cart.Form, bool) {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Nome", &f.values.Customer},
		{"Telefone", &f.values.Phone},
		{"Endereço", &f.values.Address},
		{"Observações", &f.values.Notes},
	}

	for _, field := range fields {
		v, ok := p.Ask(field.label, *field.dst)
		if !ok {
			return cart.Form{}, false
		}
		*field.dst = v
	}
	return f.values, true
}

// Reset очищает форму.
func (f *CheckoutForm) Reset() {
	f.values = cart.Form{}
}

// ChannelConfirmer запрашивает подтверждение, читая ответ из общего канала строк ввода.
type ChannelConfirmer struct {
	lines <-chan string
	out   io.Writer
}

// NewChannelConfirmer создаёт ChannelConfirmer.
func NewChannelConfirmer(lines <-chan string, out io.Writer) *ChannelConfirmer {
	return &ChannelConfirmer{lines: lines, out: out}
}

// Confirm выводит вопрос и ждёт ответ. Всё, кроме явного согласия, считается отказом.
func (c *ChannelConfirmer) Confirm(ctx context.Context, prompt string) bool {
	fmt.Fprintf(c.out, "%s [s/N] ", prompt)

	select {
	case <-ctx.Done():
		return false
	case line, ok := <-c.lines:
		return ok && IsYes(line)
	}
}

// IsYes распознаёт согласие на португальском или английском.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}

// ScanLines читает строки из r в канал до конца ввода и закрывает канал.
func ScanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
