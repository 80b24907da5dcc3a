package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/born-ml/nodegrad/internal/config"
	"github.com/born-ml/nodegrad/internal/nn"
	"github.com/born-ml/nodegrad/internal/telemetry"
	"github.com/born-ml/nodegrad/internal/train"
)

type trainResult struct {
	RunID    string             `json:"run_id"`
	Steps    int                `json:"steps"`
	Loss     float64            `json:"loss"`
	Duration string             `json:"duration"`
	Params   map[string]float64 `json:"params"`
}

// NewTrainCmd creates the train command.
func NewTrainCmd() *cobra.Command {
	var configPath string
	var steps int
	var workers int
	var metricsAddr string
	var outPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an MLP on a dataset",
		Long: `Trains a tanh MLP with squared-error loss. Without --config the default
network (3-4-4-1) is fitted to the default four-sample dataset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := telemetry.FromContext(ctx)

			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("steps") {
				cfg.Train.Steps = steps
			}
			if cmd.Flags().Changed("workers") {
				cfg.Train.Workers = workers
			}

			opts := []train.Option{train.WithLogger(logger)}
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				m, err := telemetry.NewMetrics(reg)
				if err != nil {
					return err
				}
				stop, err := serveMetrics(metricsAddr, reg, logger)
				if err != nil {
					return err
				}
				defer stop()
				opts = append(opts, train.WithMetrics(m))
			}

			tr, ds, err := train.FromConfig(cfg, opts...)
			if err != nil {
				return err
			}

			h, err := tr.Fit(ctx, ds, cfg.Train.Steps)
			if err != nil {
				return err
			}

			if outPath != "" {
				ckpt := &nn.Checkpoint{
					Model:    tr.Model(),
					RunID:    h.RunID,
					Step:     tr.Steps(),
					Loss:     h.Final(),
					Metadata: map[string]any{"optimizer": cfg.Optimizer.Name, "layers": cfg.Model.Layers},
				}
				if err := ckpt.Save(outPath); err != nil {
					return err
				}
				logger.Info("checkpoint saved", "path", outPath)
			}

			res := trainResult{
				RunID:    h.RunID,
				Steps:    h.Len(),
				Loss:     h.Final(),
				Duration: h.Duration.String(),
				Params:   nn.StateDict(tr.Model()),
			}
			return NewOutput(cmd.OutOrStdout(), jsonOutput).Print(
				[]string{"RUN_ID", "STEPS", "LOSS", "DURATION"},
				[][]string{{res.RunID, strconv.Itoa(res.Steps), strconv.FormatFloat(res.Loss, 'g', 6, 64), res.Duration}},
				res,
			)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML training config")
	cmd.Flags().IntVar(&steps, "steps", 0, "Override train.steps")
	cmd.Flags().IntVar(&workers, "workers", 0, "Override train.workers (0 = one per CPU)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write a checkpoint after training")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

// serveMetrics exposes reg on addr under /metrics until the returned stop
// function is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", telemetry.Handler(reg))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}, nil
}
