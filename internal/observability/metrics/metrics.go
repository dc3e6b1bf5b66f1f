package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	inspectionsRecorded   metric.Int64Counter
	diagnosticsRecorded   metric.Int64Counter
	invoicesIssued        metric.Int64Counter
	appointmentsScheduled metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "tallertech"
	}
	meter := provider.Meter(name)

	inspectionsRecorded, err := meter.Int64Counter("tallertech_inspections_recorded_total")
	if err != nil {
		return nil, err
	}
	diagnosticsRecorded, err := meter.Int64Counter("tallertech_diagnostics_recorded_total")
	if err != nil {
		return nil, err
	}
	invoicesIssued, err := meter.Int64Counter("tallertech_invoices_issued_total")
	if err != nil {
		return nil, err
	}
	appointmentsScheduled, err := meter.Int64Counter("tallertech_appointments_scheduled_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		inspectionsRecorded:   inspectionsRecorded,
		diagnosticsRecorded:   diagnosticsRecorded,
		invoicesIssued:        invoicesIssued,
		appointmentsScheduled: appointmentsScheduled,
	}, nil
}

// RecordInspection increments the recorded inspection count.
func (m *Metrics) RecordInspection(ctx context.Context) {
	if m == nil {
		return
	}
	m.inspectionsRecorded.Add(ctx, 1)
}

// RecordDiagnostic increments the recorded diagnostic count.
func (m *Metrics) RecordDiagnostic(ctx context.Context) {
	if m == nil {
		return
	}
	m.diagnosticsRecorded.Add(ctx, 1)
}

// RecordInvoice increments the issued invoice count.
func (m *Metrics) RecordInvoice(ctx context.Context) {
	if m == nil {
		return
	}
	m.invoicesIssued.Add(ctx, 1)
}

// RecordAppointment increments the scheduled appointment count.
func (m *Metrics) RecordAppointment(ctx context.Context, reminderSent bool) {
	if m == nil {
		return
	}
	m.appointmentsScheduled.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("reminder_sent", reminderSent),
	))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}
