package main

import (
	"context"
	"time"

	"github.com/phoenix-pos/stock-display/config"
	"github.com/phoenix-pos/stock-display/internal/app"
	"github.com/phoenix-pos/stock-display/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	stockService := app.New(sigCtx, cfg)

	stockService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	stockService.Close(ctx)
}
