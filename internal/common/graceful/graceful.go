package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func(start ProcessStarter) {
			if err := start(); err != nil {
				log.Error(context.Background(), "[GRACEFUL.START]", log.Err(err))
			}
		}(p)
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 and then runs the stoppers.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	received := <-sig
	log.Info(context.Background(), "[GRACEFUL.STOP]", log.String("signal", received.String()))

	if err := StopProcess(duration, ps...); err != nil {
		log.Warn(context.Background(), "[GRACEFUL.STOP]", log.Err(err))
	}
}

// StopProcess runs the stoppers in reverse registration order, each with its own timeout.
// Every stopper runs even when an earlier one fails.
func StopProcess(duration time.Duration, ps ...ProcessStopper) error {
	stoppers := slices.Clone(ps)
	slices.Reverse(stoppers)

	var result *multierror.Error
	for _, p := range stoppers {
		if p == nil {
			continue
		}
		func() {
			ctx, cancel := context.WithTimeout(context.Background(), duration)
			defer cancel()
			if err := p(ctx); err != nil {
				result = multierror.Append(result, err)
			}
		}()
	}
	return result.ErrorOrNil()
}
