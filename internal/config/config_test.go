package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 3, c.Model.Inputs)
	assert.Equal(t, []int{4, 4, 1}, c.Model.Layers)
	assert.Equal(t, OptimizerSGD, c.Optimizer.Name)
	assert.Equal(t, 100, c.Train.Steps)
	assert.Len(t, c.Data.Inputs, 4)
	require.NoError(t, c.Validate())
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
model:
  layers: [3, 2]
  seed: 7
optimizer:
  name: adam
  lr: 0.01
train:
  steps: 20
  workers: 1
data:
  inputs: [[0, 0], [0, 1], [1, 0], [1, 1]]
  targets: [[-1, 1], [1, -1], [1, -1], [-1, 1]]
`))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Model.Inputs, "inferred from data")
	assert.Equal(t, []int{3, 2}, c.Model.Layers)
	assert.Equal(t, uint64(7), c.Model.Seed)
	assert.Equal(t, OptimizerAdam, c.Optimizer.Name)
	assert.Equal(t, 0.01, c.Optimizer.LR)
	assert.Equal(t, 20, c.Train.Steps)
	assert.Equal(t, 10, c.Train.LogEvery, "default")
	assert.Equal(t, 1, c.Train.Workers)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown optimizer", "optimizer: {name: rmsprop}"},
		{"bad layer", "model: {layers: [4, 0]}"},
		{"target width", "data: {inputs: [[1]], targets: [[1, 2]]}"},
		{"input width", "model: {inputs: 2}\ndata: {inputs: [[1]], targets: [[1]]}"},
		{"count mismatch", "data: {inputs: [[1], [2]], targets: [[1]]}"},
		{"negative steps", "train: {steps: -1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("model: {depth: 3}"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte("train: {steps: 5}\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Train.Steps)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
