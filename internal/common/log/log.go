package log

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

const (
	LogToStdout  = "stdout"
	LogToConsole = "console"
)

type options struct {
	level      zapcore.Level
	logTo      string
	env        string
	withCaller bool
	callerSkip int
}

type Option func(*options)

func DebugLogLevel() Option {
	return func(o *options) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() Option {
	return func(o *options) { o.level = zapcore.InfoLevel }
}

// WithLogToOption selects the encoder: "console" writes human readable lines, anything else JSON.
func WithLogToOption(logTo string) Option {
	return func(o *options) { o.logTo = logTo }
}

func WithLogEnvOption(env string) Option {
	return func(o *options) { o.env = env }
}

func WithCaller(enabled bool) Option {
	return func(o *options) { o.withCaller = enabled }
}

func AddCallerSkip(skip int) Option {
	return func(o *options) { o.callerSkip = skip }
}

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Init replaces the process wide logger.
func Init(appName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, logTo: LogToStdout}
	for _, opt := range opts {
		opt(o)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.MessageKey = "message"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if o.logTo == LogToConsole {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(o.level))

	zapOpts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if o.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	fields := []zap.Field{zap.String("app", appName)}
	if o.env != "" {
		fields = append(fields, zap.String("env", o.env))
	}

	current.Store(zap.New(core, zapOpts...).With(fields...))
}

// InitForTest discards every log line.
func InitForTest() {
	current.Store(zap.NewNop())
}

// Logger exposes the underlying zap logger, e.g. for the New Relic bridge.
func Logger() *zap.Logger {
	return current.Load()
}

func Sync() error {
	return current.Load().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if id := GetCorrelationID(ctx); id != "" {
		fields = append(fields, zap.String(CorrelationIDKey, id))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	current.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	current.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	current.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	current.Load().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	current.Load().Panic(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	current.Load().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}

func String(key, val string) Field { return zap.String(key, val) }
func Strings(key string, val []string) Field { return zap.Strings(key, val) }
func Int(key string, val int) Field { return zap.Int(key, val) }
func Int32(key string, val int32) Field { return zap.Int32(key, val) }
func Int64(key string, val int64) Field { return zap.Int64(key, val) }
func Bool(key string, val bool) Field { return zap.Bool(key, val) }
func Err(err error) Field { return zap.Error(err) }
func Any(key string, val any) Field { return zap.Any(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Time(key string, val time.Time) Field { return zap.Time(key, val) }
func Stringer(key string, val fmt.Stringer) Field { return zap.Stringer(key, val) }
