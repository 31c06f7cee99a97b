package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

// DefaultPollInterval задаёт период опроса сервера по умолчанию.
const DefaultPollInterval = 5 * time.Second

// Action идентифицирует действие администратора.
type Action string

const (
	ActionFilter   Action = "filter"
	ActionRefresh  Action = "refresh"
	ActionProcess  Action = "process"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// ErrUnknownAction возвращается для действия, которого нет в таблице.
var ErrUnknownAction = errors.New("unknown action")

var actionTargets = map[Action]model.OrderStatus{
	ActionProcess:  model.OrderStatusProcessing,
	ActionComplete: model.OrderStatusCompleted,
	ActionCancel:   model.OrderStatusCancelled,
}

// ActionFor возвращает действие, переводящее заказ в указанный статус.
func ActionFor(status model.OrderStatus) (Action, bool) {
	for a, s := range actionTargets {
		if s == status {
			return a, true
		}
	}
	return "", false
}

// Command описывает действие администратора и его аргументы.
type Command struct {
	Action  Action
	OrderID int64
	Filter  Filter
}

type actionFunc func(ctx context.Context, cmd Command) error

func (c *Console) actionTable() map[Action]actionFunc {
	table := map[Action]actionFunc{
		ActionFilter: func(_ context.Context, cmd Command) error {
			return c.SetFilter(cmd.Filter)
		},
		ActionRefresh: func(ctx context.Context, _ Command) error {
			return c.Refresh(ctx)
		},
	}
	for action, status := range actionTargets {
		table[action] = func(ctx context.Context, cmd Command) error {
			return c.RequestStatusChange(ctx, cmd.OrderID, status)
		}
	}
	return table
}

// Dispatch выполняет команду через таблицу действий.
func (c *Console) Dispatch(ctx context.Context, cmd Command) error {
	fn, ok := c.actions[cmd.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return fn(ctx, cmd)
}

// ParseCommand разбирает строку ввода вида "cancel 7" или "filter Novo".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownAction)
	}

	cmd := Command{Action: Action(strings.ToLower(fields[0]))}
	switch cmd.Action {
	case ActionRefresh:
		return cmd, nil
	case ActionFilter:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("filter: expected %q or a status", FilterAll)
		}
		f, ok := ParseFilter(fields[1])
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownFilter, fields[1])
		}
		cmd.Filter = f
		return cmd, nil
	case ActionProcess, ActionComplete, ActionCancel:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%s: expected order id", cmd.Action)
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%s: invalid order id %q", cmd.Action, fields[1])
		}
		cmd.OrderID = id
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, fields[0])
}

// Run обрабатывает события консоли до отмены контекста или закрытия input:
// первичную загрузку, периодический опрос сервера и команды пользователя.
// Каждое событие выполняется полностью до начала следующего.
func (c *Console) Run(ctx context.Context, interval time.Duration, input <-chan string) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	_ = c.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_ = c.Refresh(ctx)
		case line, ok := <-input:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			c.handle(ctx, line)
		}
	}
}

func (c *Console) handle(ctx context.Context, line string) {
	cmd, err := ParseCommand(line)
	if err != nil {
		c.view.Alert(err.Error())
		return
	}

	err = c.Dispatch(ctx, cmd)
	if err == nil {
		return
	}

	var rej *storeapi.RejectedError
	if errors.As(err, &rej) || errors.Is(err, storeapi.ErrUnavailable) {
		// Уже показано пользователю.
		return
	}
	c.logger.Debug("command rejected", zap.String("action", string(cmd.Action)), zap.Error(err))
	c.view.Alert(err.Error())
}

// ParseFilter сопоставляет ввод с FilterAll или статусом без учёта регистра
// и диакритики: "concluido" и "CONCLUÍDO" дают статус Concluído.
func ParseFilter(arg string) (Filter, bool) {
	key := foldFilter(arg)
	if key == foldFilter(string(FilterAll)) {
		return FilterAll, true
	}
	for _, s := range model.Statuses {
		if key == foldFilter(string(s)) {
			return Filter(s), true
		}
	}
	return "", false
}

func foldFilter(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
