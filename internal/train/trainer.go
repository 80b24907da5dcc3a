// Package train fits nn modules to a Dataset.
//
// Every step evaluates one fresh graph per sample, in parallel, runs backward
// on each sample's squared-error loss, folds the graph gradients into the
// shared parameters and applies one optimizer update. Graphs are discarded
// after the step, so gradients never carry over between steps.
package train

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/nodegrad/internal/autodiff"
	"github.com/born-ml/nodegrad/internal/nn"
	"github.com/born-ml/nodegrad/internal/optim"
	"github.com/born-ml/nodegrad/internal/parallel"
	"github.com/born-ml/nodegrad/internal/telemetry"
)

// Trainer runs the training loop for one model and optimizer.
type Trainer struct {
	model    nn.Module
	opt      optim.Optimizer
	par      parallel.Config
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	logEvery int
	runID    string
	steps    int
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithWorkers sets the number of goroutines evaluating samples.
// 0 uses one per CPU, 1 runs sequentially.
func WithWorkers(n int) Option {
	return func(t *Trainer) { t.par = parallel.WithWorkers(n) }
}

// WithLogger sets the logger. Without it the logger comes from the context
// passed to Fit.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Trainer) { t.logger = logger }
}

// WithMetrics records step metrics on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(t *Trainer) { t.metrics = m }
}

// WithLogEvery logs progress every n steps. 0 disables step logs.
func WithLogEvery(n int) Option {
	return func(t *Trainer) { t.logEvery = n }
}

// WithRunID tags logs and history with id instead of a random one.
func WithRunID(id string) Option {
	return func(t *Trainer) { t.runID = id }
}

// New creates a trainer updating model's parameters with opt.
func New(model nn.Module, opt optim.Optimizer, opts ...Option) *Trainer {
	t := &Trainer{
		model:    model,
		opt:      opt,
		par:      parallel.DefaultConfig(),
		logEvery: 10,
	}
	for _, o := range opts {
		o(t)
	}
	if t.runID == "" {
		t.runID = uuid.NewString()
	}
	return t
}

// Model returns the model being trained.
func (t *Trainer) Model() nn.Module {
	return t.model
}

// RunID returns the identifier attached to this trainer's logs.
func (t *Trainer) RunID() string {
	return t.runID
}

// Steps returns the number of completed steps.
func (t *Trainer) Steps() int {
	return t.steps
}

type sample struct {
	scope *nn.Scope
	loss  float64
	nodes int
}

// Step performs one full-batch update and returns the loss summed over all
// samples, measured before the update.
//
// If any sample fails nothing is updated and the errors of all failed
// samples are returned together.
func (t *Trainer) Step(ctx context.Context, ds Dataset) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := ds.Validate(); err != nil {
		return 0, err
	}

	start := time.Now()
	t.opt.ZeroGrad()

	samples, err := parallel.Map(ds.Len(), func(i int) (sample, error) {
		s, err := t.evaluate(ds.Inputs[i], ds.Targets[i])
		if err != nil {
			return s, fmt.Errorf("sample %d: %w", i, err)
		}
		return s, nil
	}, t.par)
	if err != nil {
		return 0, err
	}

	losses := make([]float64, len(samples))
	for i := range samples {
		if err := samples[i].scope.Accumulate(); err != nil {
			t.opt.ZeroGrad()
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		losses[i] = samples[i].loss
	}
	total := floats.Sum(losses)
	t.opt.Step()
	t.steps++

	if t.metrics != nil {
		t.metrics.Steps.Inc()
		t.metrics.Loss.Set(total)
		t.metrics.StepDuration.Observe(time.Since(start).Seconds())
		t.metrics.GraphNodes.Set(float64(samples[0].nodes))
	}
	return total, nil
}

// evaluate builds the graph for one sample and runs backward on its loss.
func (t *Trainer) evaluate(x, y []float64) (sample, error) {
	g := autodiff.NewGraph()
	s := nn.NewScope(g)

	out, err := t.model.Forward(s, s.Inputs(x))
	if err != nil {
		return sample{}, err
	}
	loss, err := nn.SumSquaredError(out, y)
	if err != nil {
		return sample{}, err
	}
	if err := loss.Backward(); err != nil {
		return sample{}, err
	}
	return sample{scope: s, loss: loss.Data(), nodes: g.Len()}, nil
}

// History records the loss of every step of a Fit call.
type History struct {
	RunID    string
	Losses   []float64
	Duration time.Duration
}

// Len returns the number of recorded steps.
func (h History) Len() int {
	return len(h.Losses)
}

// Final returns the last recorded loss, or 0 for an empty history.
func (h History) Final() float64 {
	if len(h.Losses) == 0 {
		return 0
	}
	return h.Losses[len(h.Losses)-1]
}

// Fit runs steps training steps on ds.
//
// On cancellation or a failed step Fit returns the history so far together
// with the error.
func (t *Trainer) Fit(ctx context.Context, ds Dataset, steps int) (History, error) {
	logger := t.logger
	if logger == nil {
		logger = telemetry.FromContext(ctx)
	}
	logger = telemetry.WithRunID(logger, t.runID)

	h := History{RunID: t.runID, Losses: make([]float64, 0, steps)}
	start := time.Now()

	logger.Info("training started",
		"steps", steps,
		"samples", ds.Len(),
		"parameters", len(t.model.Parameters()),
		"lr", t.opt.GetLR(),
	)

	for i := range steps {
		loss, err := t.Step(ctx, ds)
		if err != nil {
			h.Duration = time.Since(start)
			logger.Error("training stopped", "step", t.steps, "error", err)
			return h, fmt.Errorf("step %d: %w", t.steps+1, err)
		}
		h.Losses = append(h.Losses, loss)

		if t.logEvery > 0 && ((i+1)%t.logEvery == 0 || i == steps-1) {
			logger.Info("step", "step", t.steps, "loss", loss)
		} else {
			logger.Debug("step", "step", t.steps, "loss", loss)
		}
	}

	h.Duration = time.Since(start)
	logger.Info("training finished",
		"steps", h.Len(),
		"loss", h.Final(),
		"duration", h.Duration,
	)
	return h, nil
}
