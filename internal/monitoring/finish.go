package monitoring

import (
	"time"

	"github.com/viglianco/go-sales-ledger/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerClient:     "[SALESAPI]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err    error
	fields []log.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishFields(fields ...log.Field) FinishOption {
	return func(o *finishOptions) {
		o.fields = append(o.fields, fields...)
	}
}

// Finish logs the outcome and ends the segment. Successful calls are only logged on the
// delivery and service layers.
func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fields := append(fOpts.fields,
		log.String("segment", m.segmentName),
		log.Duration("processDuration", time.Since(m.start)))

	switch {
	case fOpts.err != nil:
		fields = append(fields, log.String("status", "error"), log.Err(fOpts.err))
		log.Warn(m.ctx, messagePrefix[m.layer], fields...)
	case m.layer == LayerDelivery || m.layer == LayerService:
		fields = append(fields, log.String("status", "success"))
		log.Info(m.ctx, messagePrefix[m.layer], fields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}
