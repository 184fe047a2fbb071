package configuration

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-logr/logr/funcr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/willibrandon/timber"
	"github.com/willibrandon/timber/core"
	"github.com/willibrandon/timber/selflog"
	"github.com/willibrandon/timber/sinks"
)

// SinkFactory creates a sink from configuration args.
type SinkFactory func(args map[string]any) (core.Sink, error)

// RegistryBuilder builds a registry from configuration.
type RegistryBuilder struct {
	sinkFactories map[string]SinkFactory
}

// NewRegistryBuilder creates a builder with the Console, Zap, Zerolog, Logr
// and Sentry factories registered.
func NewRegistryBuilder() *RegistryBuilder {
	rb := &RegistryBuilder{
		sinkFactories: make(map[string]SinkFactory),
	}

	rb.RegisterSink("Console", createConsoleSink)
	rb.RegisterSink("Zap", createZapSink)
	rb.RegisterSink("Zerolog", createZerologSink)
	rb.RegisterSink("Logr", createLogrSink)
	rb.RegisterSink("Sentry", createSentrySink)

	return rb
}

// RegisterSink registers a sink factory, replacing any factory of that name.
func (rb *RegistryBuilder) RegisterSink(name string, factory SinkFactory) {
	rb.sinkFactories[name] = factory
}

// Build creates a registry from configuration. No sink is registered unless
// every sink was created.
func (rb *RegistryBuilder) Build(config *Configuration) (*timber.Registry, error) {
	if config == nil {
		return nil, errors.New("nil configuration")
	}

	var created []core.Sink
	for _, sinkConfig := range config.Timber.Sinks {
		sink, err := rb.createSink(sinkConfig)
		if err != nil {
			closeAll(created)
			return nil, errors.Wrapf(err, "create sink %s", sinkConfig.Name)
		}
		created = append(created, sink)
	}

	r, err := timber.Build(timber.WithName(config.Timber.Name), timber.WithSinks(created...))
	if err != nil {
		closeAll(created)
		return nil, err
	}
	return r, nil
}

func (rb *RegistryBuilder) createSink(config SinkConfiguration) (core.Sink, error) {
	factory, ok := rb.sinkFactories[config.Name]
	if !ok {
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] unknown sink type '%s', available sinks: %s",
				config.Name, strings.Join(rb.sinkNames(), ", "))
		}
		return nil, errors.Errorf("unknown sink: %s", config.Name)
	}

	sink, err := factory(config.Args)
	if err != nil {
		return nil, err
	}

	// Any sink can be guarded by a circuit breaker and limited to a minimum
	// level.
	if threshold := GetInt(config.Args, "failureThreshold", 0); threshold > 0 {
		sink = sinks.NewCircuitBreakerSinkWithOptions(sink, sinks.CircuitBreakerOptions{
			FailureThreshold: threshold,
			ResetTimeout:     GetDuration(config.Args, "resetTimeout", 0),
		})
	}
	if name := GetString(config.Args, "minimumLevel", ""); name != "" {
		level, err := core.ParseLevel(name)
		if err != nil {
			closeAll([]core.Sink{sink})
			return nil, err
		}
		sink = sinks.NewConditionalSink(sinks.LevelPredicate(level), sink)
	}
	return sink, nil
}

func (rb *RegistryBuilder) sinkNames() []string {
	names := make([]string, 0, len(rb.sinkFactories))
	for name := range rb.sinkFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func closeAll(created []core.Sink) {
	for _, sink := range created {
		if closer, ok := sink.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}

// stream resolves the "stream" argument shared by the writer-backed sinks.
func stream(args map[string]any, defaultValue string) (io.Writer, error) {
	switch name := strings.ToLower(GetString(args, "stream", defaultValue)); name {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, errors.Errorf("unknown stream %q, expected stdout or stderr", name)
	}
}

// Default sink factories

func createConsoleSink(args map[string]any) (core.Sink, error) {
	var sink *sinks.ConsoleSink
	switch name := strings.ToLower(GetString(args, "stream", "stdout")); name {
	case "stdout":
		sink = sinks.NewConsoleSink()
	case "stderr":
		sink = sinks.NewConsoleSinkStderr()
	default:
		return nil, errors.Errorf("unknown stream %q, expected stdout or stderr", name)
	}

	if prefix := GetString(args, "prefix", ""); prefix != "" {
		sink.SetPrefix(prefix)
	}

	switch theme := GetString(args, "theme", "Default"); theme {
	case "Default":
	case "Vivid":
		sink.SetTheme(sinks.VividTheme())
	default:
		if selflog.IsEnabled() {
			selflog.Printf("[configuration] unknown console theme '%s', using Default", theme)
		}
	}

	if _, ok := args["color"]; ok {
		sink.SetUseColor(GetBool(args, "color", false))
	}
	return sink, nil
}

func createZapSink(args map[string]any) (core.Sink, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if GetBool(args, "development", false) {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}
	return sinks.NewZapSink(logger.Named(GetString(args, "name", "timber"))), nil
}

func createZerologSink(args map[string]any) (core.Sink, error) {
	w, err := stream(args, "stderr")
	if err != nil {
		return nil, err
	}
	if GetBool(args, "pretty", false) {
		w = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	return sinks.NewZerologSink(logger), nil
}

func createLogrSink(args map[string]any) (core.Sink, error) {
	w, err := stream(args, "stderr")
	if err != nil {
		return nil, err
	}
	logger := funcr.NewJSON(func(obj string) {
		fmt.Fprintln(w, obj)
	}, funcr.Options{
		Verbosity:    GetInt(args, "verbosity", 0),
		LogTimestamp: GetBool(args, "timestamp", true),
	})
	return sinks.NewLogrSink(logger), nil
}

func createSentrySink(args map[string]any) (core.Sink, error) {
	dsn := GetString(args, "dsn", os.Getenv("SENTRY_DSN"))

	opts := []sinks.SentryOption{
		sinks.WithSentryBreadcrumbs(GetBool(args, "breadcrumbs", true)),
		sinks.WithSentrySampleRate(GetFloat(args, "sampleRate", 1.0)),
	}
	if env := GetString(args, "environment", ""); env != "" {
		opts = append(opts, sinks.WithSentryEnvironment(env))
	}
	if release := GetString(args, "release", ""); release != "" {
		opts = append(opts, sinks.WithSentryRelease(release))
	}
	if server := GetString(args, "serverName", ""); server != "" {
		opts = append(opts, sinks.WithSentryServerName(server))
	}
	if timeout := GetDuration(args, "flushTimeout", 0); timeout > 0 {
		opts = append(opts, sinks.WithSentryFlushTimeout(timeout))
	}

	sink, err := sinks.NewSentrySink(dsn, opts...)
	if err != nil {
		return nil, err
	}
	return sink, nil
}
