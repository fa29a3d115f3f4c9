package observability

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"coursehub/internal/infrastructure/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

const ServiceName = "coursehub"

type OtelConfig struct {
	Enabled bool
	// Endpoint is either host:port or a full URL such as http://collector:4318.
	Endpoint    string
	Insecure    bool
	Environment string
}

// InitOTel installs a global tracer provider. The returned func flushes and
// stops it; it is a no-op when tracing is disabled.
func InitOTel(ctx context.Context, log *logger.Logger, cfg OtelConfig) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		log.Warn("otel resource init failed (continuing)", "error", err)
	}

	exporter, err := buildTraceExporter(ctx, log, cfg)
	if err != nil {
		return noop, fmt.Errorf("otel exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	log.Info("otel tracing initialized", "endpoint", cfg.Endpoint)
	return tp.Shutdown, nil
}

func buildTraceExporter(ctx context.Context, log *logger.Logger, cfg OtelConfig) (sdktrace.SpanExporter, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint != "" {
		return otlptracehttp.New(ctx, otlpOptions(endpoint, cfg.Insecure)...)
	}
	log.Warn("otel using stdout exporter (no OTLP endpoint configured)")
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// A URL endpoint is a base URL as in OTEL_EXPORTER_OTLP_ENDPOINT: its scheme
// decides TLS and the traces path is appended. Insecure only applies to the
// bare host:port form.
func otlpOptions(endpoint string, insecure bool) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpointURL(endpoint),
			otlptracehttp.WithURLPath(tracesPath(endpoint)),
		}
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

func tracesPath(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "/v1/traces"
	}
	p := strings.TrimRight(u.Path, "/")
	if strings.HasSuffix(p, "/v1/traces") {
		return p
	}
	return p + "/v1/traces"
}
