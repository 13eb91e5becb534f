package main

import (
	"context"
	"time"

	"github.com/viglianco/go-sales-ledger/cmd/setup"
	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/deliveries/http"
)

const fallbackGracefulTimeout = 5 * time.Second

func main() {
	ctx := context.Background()

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := fallbackGracefulTimeout
		if s != nil && s.Config.App.GracefulTimeout > 0 {
			timeout = s.Config.App.GracefulTimeout
		}
		_ = graceful.StopProcess(timeout, stopperContract...)
		log.Fatalf(ctx, "failed to setup sales ledger api: %v", err)
	}

	server := http.NewHTTPServer(s.Config, s.NewRelic, s.Service.SalesLedger)
	log.Info(ctx, "sales ledger api starting", log.Int("port", s.Config.App.HTTPPort))

	graceful.StartProcessAtBackground(server.Start())
	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, append(stopperContract, server.Stop())...)

	log.Info(ctx, "sales ledger api stopped")
}
