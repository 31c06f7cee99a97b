// Package main запускает консоль управления заказами.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mmeshcher/courtside-store/internal/config"
	"github.com/mmeshcher/courtside-store/internal/console"
	"github.com/mmeshcher/courtside-store/internal/logger"
	"github.com/mmeshcher/courtside-store/internal/render"
	"github.com/mmeshcher/courtside-store/internal/storeapi"
)

const usage = `Comandos:
  filter <todos|Novo|Processando|Concluído|Cancelado>
  refresh
  process <id> | complete <id> | cancel <id>
Ctrl+D para sair.`

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

	lines := render.ScanLines(ctx, os.Stdin)

	c := console.New(
		storeapi.NewClient(cfg.ServerAddress),
		render.NewChannelConfirmer(lines, os.Stdout),
		render.NewConsoleView(os.Stdout),
		log,
	)

	fmt.Fprintln(os.Stdout, usage)
	log.Info("starting order console",
		zap.String("server", cfg.ServerAddress),
		zap.Duration("pollInterval", cfg.PollInterval),
	)

	if err := c.Run(ctx, cfg.PollInterval, lines); err != nil {
		log.Fatal("console terminated with error", zap.Error(err))
	}
}
