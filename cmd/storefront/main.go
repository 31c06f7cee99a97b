// Package main запускает витрину магазина в терминале.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/cart"
	"github.com/mmeshcher/courtside-store/internal/catalog"
	"github.com/mmeshcher/courtside-store/internal/config"
	"github.com/mmeshcher/courtside-store/internal/logger"
	"github.com/mmeshcher/courtside-store/internal/model"
	"github.com/mmeshcher/courtside-store/internal/render"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

const usage = `Comandos:
  catalog [tênis|bolas|camisetas|destaques]
  add <id> | remove <id> | inc <id> | dec <id>
  checkout
  quit`

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewTerminal(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Закрытие stdin прерывает ожидание ввода при получении сигнала.
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	if cfg.DemoFallback {
		log.Warn("demo fallback enabled, orders may be simulated when the server is unreachable")
	}

	run(ctx, cfg, log, os.Stdin, os.Stdout)
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, in io.Reader, out io.Writer) {
	cat := catalog.Default()
	form := &render.CheckoutForm{}
	view := render.NewStorefrontView(out, form)
	prompter := render.NewPrompter(in, out)

	fmt.Fprintln(out, usage)
	view.RenderCatalog(cat.All())

	ctrl := cart.NewController(cat, storeapi.NewClient(cfg.ServerAddress), view, log,
		cart.WithDemoFallback(cfg.DemoFallback),
	)

	for {
		fmt.Fprint(out, "> ")
		line, ok := prompter.Line()
		if !ok || ctx.Err() != nil {
			fmt.Fprintln(out)
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "sair":
			return
		case "help", "ajuda":
			fmt.Fprintln(out, usage)
			continue
		case "catalog", "catalogo":
			view.RenderCatalog(products(cat, fields[1:]))
			continue
		}

		cmd, err := cart.ParseCommand(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n%s\n", err, usage)
			continue
		}

		if cmd.Action == cart.ActionCheckout {
			if !ctrl.Snapshot().CanCheckout() {
				view.Notify("Seu carrinho está vazio")
				continue
			}
			f, ok := form.Fill(prompter)
			if !ok {
				return
			}
			cmd.Form = f
		}

		err = ctrl.Dispatch(ctx, cmd)
		switch {
		case err == nil:
		case errors.Is(err, cart.ErrUnknownProduct):
			view.Notify("Produto não encontrado")
		default:
			// Ошибки оформления уже показаны представлением.
			log.Debug("command failed", zap.String("action", string(cmd.Action)), zap.Error(err))
		}
	}
}

func products(cat *catalog.Catalog, args []string) []model.Product {
	if len(args) == 0 {
		return cat.All()
	}

	switch arg := strings.ToLower(args[0]); arg {
	case "destaques":
		return cat.Featured()
	default:
		return cat.ByCategory(model.Category(arg))
	}
}
