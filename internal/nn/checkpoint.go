package nn

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// CheckpointVersion is the format version written by Checkpoint.Save.
const CheckpointVersion = 1

// Checkpoint is a training state snapshot: parameter values plus the
// metadata needed to resume or inspect a run.
//
// Example:
//
//	ckpt := &nn.Checkpoint{Model: model, Step: 100, Loss: 0.01}
//	err := ckpt.Save("mlp.yaml")
//
// To resume:
//
//	ckpt, err := nn.LoadCheckpoint("mlp.yaml", model)
type Checkpoint struct {
	Model     Module         // Model the parameters belong to
	RunID     string         // Training run that produced it
	Step      int            // Optimizer steps taken
	Loss      float64        // Loss at this step
	Metadata  map[string]any // Additional training metadata
	CreatedAt time.Time
}

type checkpointFile struct {
	Version   int                `yaml:"version"`
	RunID     string             `yaml:"run_id,omitempty"`
	Step      int                `yaml:"step"`
	Loss      float64            `yaml:"loss"`
	CreatedAt time.Time          `yaml:"created_at"`
	Metadata  map[string]any     `yaml:"metadata,omitempty"`
	Params    map[string]float64 `yaml:"params"`
	Checksum  string             `yaml:"checksum"`
}

// paramsChecksum returns the hex SHA-256 of params in name order. Values are
// hashed by their bit pattern so the sum does not depend on YAML formatting.
func paramsChecksum(params map[string]float64) string {
	h := sha256.New()
	var buf [8]byte
	for _, name := range slices.Sorted(maps.Keys(params)) {
		h.Write([]byte(name))
		h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(params[name]))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Marshal encodes the checkpoint as YAML.
func (c *Checkpoint) Marshal() ([]byte, error) {
	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	params := StateDict(c.Model)
	return yaml.Marshal(checkpointFile{
		Version:   CheckpointVersion,
		RunID:     c.RunID,
		Step:      c.Step,
		Loss:      c.Loss,
		CreatedAt: created,
		Metadata:  c.Metadata,
		Params:    params,
		Checksum:  paramsChecksum(params),
	})
}

// Save writes the checkpoint to path.
func (c *Checkpoint) Save(path string) error {
	b, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads path into model, which must have the architecture the
// checkpoint was saved from.
func LoadCheckpoint(path string, model Module) (*Checkpoint, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	return UnmarshalCheckpoint(b, model)
}

// UnmarshalCheckpoint decodes b into model. A checkpoint with a missing
// checksum, or parameters that do not match it, is rejected with
// ErrChecksumMismatch and model is left unchanged.
func UnmarshalCheckpoint(b []byte, model Module) (*Checkpoint, error) {
	var f checkpointFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	if f.Version != CheckpointVersion {
		return nil, fmt.Errorf("unsupported checkpoint version %d", f.Version)
	}
	if f.Checksum == "" {
		return nil, fmt.Errorf("%w: checkpoint has no checksum", ErrChecksumMismatch)
	}
	if f.Checksum != paramsChecksum(f.Params) {
		return nil, ErrChecksumMismatch
	}
	if err := LoadStateDict(model, f.Params); err != nil {
		return nil, fmt.Errorf("failed to load model state: %w", err)
	}

	return &Checkpoint{
		Model:     model,
		RunID:     f.RunID,
		Step:      f.Step,
		Loss:      f.Loss,
		Metadata:  f.Metadata,
		CreatedAt: f.CreatedAt,
	}, nil
}
