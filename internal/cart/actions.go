package cart

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action идентифицирует пользовательское действие на витрине.
type Action string

const (
	ActionAdd      Action = "add"
	ActionRemove   Action = "remove"
	ActionIncrease Action = "inc"
	ActionDecrease Action = "dec"
	ActionCheckout Action = "checkout"
)

// ErrUnknownAction возвращается для действия, которого нет в таблице.
var ErrUnknownAction = errors.New("unknown action")

// Command описывает действие пользователя и его аргументы.
type Command struct {
	Action    Action
	ProductID int64
	Form      Form
}

type actionFunc func(ctx context.Context, cmd Command) error

func (c *Controller) actionTable() map[Action]actionFunc {
	return map[Action]actionFunc{
		ActionAdd: func(_ context.Context, cmd Command) error {
			return c.Add(cmd.ProductID)
		},
		ActionRemove: func(_ context.Context, cmd Command) error {
			c.Remove(cmd.ProductID)
			return nil
		},
		ActionIncrease: func(_ context.Context, cmd Command) error {
			c.ChangeQuantity(cmd.ProductID, 1)
			return nil
		},
		ActionDecrease: func(_ context.Context, cmd Command) error {
			c.ChangeQuantity(cmd.ProductID, -1)
			return nil
		},
		ActionCheckout: func(ctx context.Context, cmd Command) error {
			return c.Submit(ctx, cmd.Form)
		},
	}
}

// Dispatch выполняет команду через таблицу действий.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	fn, ok := c.actions[cmd.Action]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return fn(ctx, cmd)
}

// ParseCommand разбирает строку ввода вида "add 4". Поля формы для checkout
// заполняются вызывающей стороной.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownAction)
	}

	cmd := Command{Action: Action(strings.ToLower(fields[0]))}
	switch cmd.Action {
	case ActionCheckout:
		return cmd, nil
	case ActionAdd, ActionRemove, ActionIncrease, ActionDecrease:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%s: expected product id", cmd.Action)
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%s: invalid product id %q", cmd.Action, fields[1])
		}
		cmd.ProductID = id
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, fields[0])
}
