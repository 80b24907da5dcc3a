package train_test

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nodegrad/internal/config"
	"github.com/born-ml/nodegrad/internal/nn"
	"github.com/born-ml/nodegrad/internal/optim"
	"github.com/born-ml/nodegrad/internal/telemetry"
	"github.com/born-ml/nodegrad/internal/train"
)

func classic() train.Dataset {
	c := config.Default()
	return train.Dataset{Inputs: c.Data.Inputs, Targets: c.Data.Targets}
}

func newTrainer(t *testing.T, workers int, opts ...train.Option) *train.Trainer {
	t.Helper()
	cfg := config.Default()
	cfg.Train.Workers = workers
	tr, _, err := train.FromConfig(cfg, opts...)
	require.NoError(t, err)
	return tr
}

func TestDataset_Validate(t *testing.T) {
	require.NoError(t, classic().Validate())

	tests := []struct {
		name string
		ds   train.Dataset
	}{
		{"empty", train.Dataset{}},
		{"count mismatch", train.Dataset{Inputs: [][]float64{{1}, {2}}, Targets: [][]float64{{1}}}},
		{"ragged inputs", train.Dataset{Inputs: [][]float64{{1}, {2, 3}}, Targets: [][]float64{{1}, {1}}}},
		{"ragged targets", train.Dataset{Inputs: [][]float64{{1}, {2}}, Targets: [][]float64{{1}, {1, 2}}}},
		{"empty target", train.Dataset{Inputs: [][]float64{{1}}, Targets: [][]float64{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.ds.Validate(), train.ErrDataset)
		})
	}
}

func TestStep_MatchesManualLoss(t *testing.T) {
	model := nn.NewMLP(3, []int{1}, nn.Constant(0.1))
	tr := train.New(model, optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05}), train.WithWorkers(1))

	ds := classic()
	loss, err := tr.Step(context.Background(), ds)
	require.NoError(t, err)

	// All weights 0.1: out = tanh(0.1 + 0.1*sum(x)).
	var want float64
	for i, x := range ds.Inputs {
		out := math.Tanh(0.1 + 0.1*(x[0]+x[1]+x[2]))
		d := out - ds.Targets[i][0]
		want += d * d
	}
	assert.InDelta(t, want, loss, 1e-12)
	assert.Equal(t, 1, tr.Steps())

	for _, p := range model.Parameters() {
		assert.NotEqual(t, 0.1, p.Data(), "%s was not updated", p.Name())
	}
}

func TestFit_LossDecreases(t *testing.T) {
	for _, workers := range []int{1, 4} {
		tr := newTrainer(t, workers)

		h, err := tr.Fit(context.Background(), classic(), 50)
		require.NoError(t, err)
		require.Equal(t, 50, h.Len())

		assert.Less(t, h.Final(), h.Losses[0]/2, "workers=%d", workers)
		assert.Equal(t, tr.RunID(), h.RunID)
	}
}

func TestFit_WorkersAgree(t *testing.T) {
	seq, par := newTrainer(t, 1), newTrainer(t, 4)

	// Enough samples to be split across goroutines.
	var ds train.Dataset
	for range 4 {
		c := classic()
		ds.Inputs = append(ds.Inputs, c.Inputs...)
		ds.Targets = append(ds.Targets, c.Targets...)
	}

	h1, err := seq.Fit(context.Background(), ds, 5)
	require.NoError(t, err)
	h2, err := par.Fit(context.Background(), ds, 5)
	require.NoError(t, err)

	require.Equal(t, h1.Len(), h2.Len())
	for i := range h1.Losses {
		assert.InDelta(t, h1.Losses[i], h2.Losses[i], 1e-12)
	}
}

func TestStep_SampleErrorLeavesParameters(t *testing.T) {
	tr := newTrainer(t, 1)
	before := nn.StateDict(tr.Model())

	ds := train.Dataset{
		Inputs:  [][]float64{{1, 2}, {3, 4}},
		Targets: [][]float64{{1}, {1}},
	}
	_, err := tr.Step(context.Background(), ds)
	require.Error(t, err)

	assert.ErrorIs(t, err, nn.ErrInputSize)
	assert.ErrorContains(t, err, "sample 0")
	assert.ErrorContains(t, err, "sample 1")
	assert.Equal(t, before, nn.StateDict(tr.Model()))
	assert.Equal(t, 0, tr.Steps())
}

func TestStep_ParallelErrorsInSampleOrder(t *testing.T) {
	tr := newTrainer(t, 4)
	before := nn.StateDict(tr.Model())

	var ds train.Dataset
	for range 8 {
		ds.Inputs = append(ds.Inputs, []float64{1, 2})
		ds.Targets = append(ds.Targets, []float64{1})
	}
	_, err := tr.Step(context.Background(), ds)
	require.ErrorIs(t, err, nn.ErrInputSize)

	msg := err.Error()
	last := -1
	for i := range 8 {
		at := strings.Index(msg, fmt.Sprintf("sample %d:", i))
		require.GreaterOrEqual(t, at, 0, "sample %d reported", i)
		assert.Greater(t, at, last, "sample %d in order", i)
		last = at
	}
	assert.Equal(t, before, nn.StateDict(tr.Model()))
}

func TestFit_Cancelled(t *testing.T) {
	tr := newTrainer(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h, err := tr.Fit(ctx, classic(), 10)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, h.Len())
}

func TestFit_LogsWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(&buf, "json", 0)
	tr := newTrainer(t, 1, train.WithLogger(logger), train.WithRunID("run-42"), train.WithLogEvery(2))

	_, err := tr.Fit(context.Background(), classic(), 4)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-42"`)
	assert.Contains(t, out, `"msg":"training started"`)
	assert.Contains(t, out, `"msg":"training finished"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte(`"msg":"step"`)))
}

func TestFit_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := telemetry.NewMetrics(reg)
	require.NoError(t, err)

	tr := newTrainer(t, 1, train.WithMetrics(m))
	h, err := tr.Fit(context.Background(), classic(), 3)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	got := make(map[string]float64)
	for _, mf := range families {
		metric := mf.GetMetric()[0]
		switch {
		case metric.GetCounter() != nil:
			got[mf.GetName()] = metric.GetCounter().GetValue()
		case metric.GetGauge() != nil:
			got[mf.GetName()] = metric.GetGauge().GetValue()
		case metric.GetHistogram() != nil:
			got[mf.GetName()] = float64(metric.GetHistogram().GetSampleCount())
		}
	}

	assert.Equal(t, 3.0, got["nodegrad_train_steps_total"])
	assert.Equal(t, 3.0, got["nodegrad_train_step_seconds"])
	assert.InDelta(t, h.Final(), got["nodegrad_train_loss"], 1e-12)
	assert.Positive(t, got["nodegrad_graph_nodes"])
}

func TestNewOptimizer(t *testing.T) {
	params := []*nn.Parameter{nn.NewParameter("w", 1)}

	opt, err := train.NewOptimizer(config.OptimizerConfig{Name: "adam", LR: 0.01}, params)
	require.NoError(t, err)
	assert.IsType(t, &optim.Adam{}, opt)
	assert.Equal(t, 0.01, opt.GetLR())

	opt, err = train.NewOptimizer(config.OptimizerConfig{Name: "sgd"}, params)
	require.NoError(t, err)
	assert.Equal(t, 0.05, opt.GetLR())

	_, err = train.NewOptimizer(config.OptimizerConfig{Name: "lbfgs"}, params)
	assert.Error(t, err)
}
