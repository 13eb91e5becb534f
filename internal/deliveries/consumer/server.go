package consumer

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/deliveries/http/health"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		if err := s.e.Start(s.addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		return s.e.Shutdown(ctx)
	}
}

func (s *svc) Handler() nethttp.Handler {
	return s.e
}

// NewHTTPServer serves health, metrics and pprof next to a running consumer.
func NewHTTPServer(conf config.Config) *svc {
	app := echo.New()
	app.HideBanner = true
	svc := &svc{e: app, addr: fmt.Sprintf(":%d", conf.MessageBroker.Consumer.HTTPPort), gracefulTimeout: conf.App.GracefulTimeout}

	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())

	if conf.Environment() != config.PROD_ENV {
		pprof.Register(app)
	}

	// consumer histograms land on the default registry too
	app.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "consumer_http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	app.GET("/metrics", echoprometheus.NewHandler())

	health.New(app.Group("/api"))

	return svc
}
