package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerClient     = "salesapi"
	LayerUnknown    = "unknown"
)

// layers is checked in order against the caller's file path.
var layers = []string{LayerRepository, LayerService, LayerDelivery, LayerClient}

// Monitor times one call of a layer and reports it to the log and the New Relic transaction of ctx.
type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time
	segment     *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

func New(ctx context.Context, opts ...InitOption) *Monitor {
	iOpts := &initOptions{}
	for _, opt := range opts {
		opt(iOpts)
	}

	if iOpts.segmentName == "" {
		// must stay directly inside New, the skip count points at our caller
		pc, file, _, ok := runtime.Caller(1)
		if !ok {
			pc = 0
		}

		iOpts.segmentName = "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			iOpts.segmentName = getSegmentName(fn.Name())
		}
		if iOpts.layer == "" {
			iOpts.layer = layerFromFile(file)
		}
	}
	if iOpts.layer == "" {
		iOpts.layer = LayerUnknown
	}

	segment := newrelic.FromContext(ctx).StartSegment(iOpts.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", iOpts.layer)
	}

	return &Monitor{
		ctx:         ctx,
		segmentName: iOpts.segmentName,
		layer:       iOpts.layer,
		start:       time.Now(),
		segment:     segment,
	}
}

func layerFromFile(file string) string {
	for _, layer := range layers {
		if strings.Contains(file, "/"+layer+"/") {
			return layer
		}
	}
	return LayerUnknown
}

// NewMiddlewareRoundTripper wraps an outgoing transport with New Relic external segments.
// The transaction is read from the request context.
func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return newrelic.NewRoundTripper(next)
}
