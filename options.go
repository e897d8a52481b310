package stability

import (
	"io"
	"log/slog"

	"github.com/clustkit/stability/metric"
	"github.com/clustkit/stability/split"
)

// options holds the configurable parameters of a run.
type options struct {
	splitters   []split.Splitter
	spaces      []Space
	metrics     []metric.Metric
	groundTruth []int
	transform   Transform
	workers     int
	runID       string
	logger      *Logger
	collector   Collector
}

// Option is a function that configures a run.
type Option func(*options)

// WithSplitters sets the splitters whose folds the run iterates.
// Required; splitters and spaces are matched by position.
//
// Example:
//
//	splitter, _ := split.KFold(subjects, 2)
//	stability.WithSplitters(splitter)
func WithSplitters(splitters ...split.Splitter) Option {
	return func(o *options) {
		o.splitters = splitters
	}
}

// WithSpaces sets the annotation space each splitter partitions over.
// Defaults to a single unit space over the "subjects" attribute.
//
// Example:
//
//	stability.WithSpaces(stability.UnitSpace("session"))
func WithSpaces(spaces ...Space) Option {
	return func(o *options) {
		o.spaces = spaces
	}
}

// WithMetrics sets the agreement metrics scored on every fold.
// Defaults to adjusted Rand index and adjusted mutual information.
//
// Example:
//
//	stability.WithMetrics(metric.ARI{}, metric.Instability{})
func WithMetrics(metrics ...metric.Metric) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithGroundTruth supplies reference labels for the clustered samples.
// Each metric is additionally scored against them, under the metric name
// suffixed with "_gt".
func WithGroundTruth(labels []int) Option {
	return func(o *options) {
		o.groundTruth = labels
	}
}

// WithTransform sets the transform applied to the train and test
// sub-datasets of every fold before clustering. Defaults to the identity.
//
// Example:
//
//	stability.WithTransform(stability.MeanGroups("targets"))
func WithTransform(t Transform) Option {
	return func(o *options) {
		o.transform = t
	}
}

// WithWorkers bounds the number of folds processed concurrently.
// Defaults to 1; values below 1 use one worker per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithRunID tags all log records of one run. Defaults to a random UUID.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// WithLogger configures structured logging for the run.
//
// Example:
//
//	stability.WithLogger(stability.NewJSONLogger(os.Stderr, slog.LevelDebug))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}

		o.logger = logger
	}
}

// WithLogLevel is a convenience option that enables text logging to w at
// the given level.
func WithLogLevel(w io.Writer, level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(w, level)
	}
}

// WithCollector configures metrics collection for the run.
//
// Example:
//
//	collector := &stability.BasicCollector{}
//	stability.WithCollector(collector)
func WithCollector(collector Collector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopCollector{}
		}

		o.collector = collector
	}
}

// applyOptions applies the given option functions to a default options
// struct.
func applyOptions(optFns []Option) options {
	o := options{
		spaces:    []Space{UnitSpace("subjects")},
		metrics:   []metric.Metric{metric.ARI{}, metric.AMI{}},
		workers:   1,
		logger:    NoopLogger(),
		collector: NoopCollector{},
	}

	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
