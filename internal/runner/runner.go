package runner

import (
	"context"
	"errors"
	"io"

	"github.com/giantswarm/namespace-pods/internal/config"
	"github.com/giantswarm/namespace-pods/internal/instrumentation"
	"github.com/giantswarm/namespace-pods/internal/k8s"
	"github.com/giantswarm/namespace-pods/internal/logging"
	"github.com/giantswarm/namespace-pods/internal/output"
)

// Client is the part of *k8s.Client a run uses.
type Client interface {
	CheckNamespace(ctx context.Context, name string) (k8s.NamespaceStatus, error)
	ListPods(ctx context.Context, namespace string) (*k8s.PodList, error)
}

// ClientFactory builds a Client for a connection.
type ClientFactory func(cfg k8s.ConnectionConfig) (Client, error)

// SettingsLoader returns the settings for a run.
type SettingsLoader func() (*config.Settings, error)

// Runner sequences one run. Build it with New.
type Runner struct {
	out          io.Writer
	logger       logging.Logger
	metrics      *instrumentation.Metrics
	loadSettings SettingsLoader
	newClient    ClientFactory
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used by the run and by the default client.
func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder used by the run and by the default client.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(r *Runner) {
		r.metrics = metrics
	}
}

// WithSettingsLoader replaces config.Load.
func WithSettingsLoader(load SettingsLoader) Option {
	return func(r *Runner) {
		r.loadSettings = load
	}
}

// WithClientFactory replaces k8s.Authenticate.
func WithClientFactory(factory ClientFactory) Option {
	return func(r *Runner) {
		r.newClient = factory
	}
}

// New returns a Runner that prints the pod list to out.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:          out,
		logger:       logging.DefaultLogger(),
		loadSettings: config.Load,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.newClient == nil {
		r.newClient = r.authenticate
	}
	return r
}

func (r *Runner) authenticate(cfg k8s.ConnectionConfig) (Client, error) {
	client, err := k8s.Authenticate(cfg, k8s.WithLogger(r.logger), k8s.WithMetrics(r.metrics))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Run performs the workflow once and returns the first failure.
func (r *Runner) Run(ctx context.Context) (err error) {
	ctx, span := instrumentation.StartRunSpan(ctx)
	defer func() {
		r.metrics.RecordRun(ctx, runResult(err))
		instrumentation.EndSpan(span, err)
	}()

	settings, err := r.loadSettings()
	if err != nil {
		return err
	}

	printer, err := output.NewPrinter(settings.Output)
	if err != nil {
		return &config.ConfigError{Key: config.EnvOutput, Reason: "invalid value", Err: err}
	}

	span.SetAttributes(instrumentation.AttrNamespace.String(settings.Namespace))
	r.logger.Debug("settings loaded",
		logging.Connection(settings.Host, settings.Token),
		logging.Namespace(settings.Namespace),
		logging.Output(settings.Output))

	conn := k8s.NewConnectionConfig(settings.Host, settings.Token).WithCAFile(settings.CAFile)
	client, err := r.newClient(conn)
	if err != nil {
		return &config.ConfigError{Key: config.EnvHost, Reason: "invalid API server address", Err: err}
	}

	status, err := client.CheckNamespace(ctx, settings.Namespace)
	if err != nil {
		return err
	}
	if status != k8s.NamespaceFound {
		return &NamespaceNotFoundError{Namespace: settings.Namespace}
	}

	pods, err := client.ListPods(ctx, settings.Namespace)
	if err != nil {
		return err
	}

	if err := printer.PrintPods(r.out, pods); err != nil {
		return err
	}

	r.logger.Info("listed pods",
		logging.Namespace(settings.Namespace),
		logging.ItemCount(len(pods.Items)),
		logging.Status(logging.StatusSuccess))
	return nil
}

func runResult(err error) string {
	switch {
	case err == nil:
		return instrumentation.RunResultSuccess
	case errors.Is(err, config.ErrConfig):
		return instrumentation.RunResultConfigError
	case errors.Is(err, ErrNamespaceNotFound):
		return instrumentation.RunResultNamespaceNotFound
	default:
		return instrumentation.RunResultQueryError
	}
}
