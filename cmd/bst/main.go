package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/e11jah/bst/internal/harness"
	"github.com/e11jah/bst/internal/workload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := rootCommand()
	root.AddCommand(checkCommand(), benchCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Str("bin", "bst").Logger()

func rootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:          "bst",
		Short:        "Exercise and benchmark the unbalanced BST ordered map",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log = log.Level(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	return root
}

func checkCommand() *cobra.Command {
	var (
		stress int
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the behavioural scenarios against the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := harness.New(log.With().Str("cmd", "check").Logger())
			h.StressElements = stress
			h.Seed = seed
			return h.Run()
		},
	}
	cmd.Flags().IntVar(&stress, "stress-elements", harness.StressElements, "number of keys in the randomized stress scenario")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the randomized stress scenario")
	return cmd
}

func benchCommand() *cobra.Command {
	var (
		source      string
		order       string
		metricsAddr string
	)
	ctx := &workload.Context{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert, look up, iterate and delete a key corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := workload.ParseOrder(order)
			if err != nil {
				return err
			}
			keys, err := workload.LoadKeys(source)
			if err != nil {
				return err
			}

			ctx.Context = cmd.Context()
			ctx.Log = log.With().Str("cmd", "bench").Str("source", source).Logger()

			reg := prometheus.NewRegistry()
			ctx.Metrics = workload.NewMetrics(reg, prometheus.Labels{"order": string(o)})
			if metricsAddr != "" {
				srv := &http.Server{
					Addr:              metricsAddr,
					Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
					ReadHeaderTimeout: 5 * time.Second,
				}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						ctx.Log.Error().Err(err).Msg("metrics server")
					}
				}()
				defer srv.Close()
				ctx.Log.Info().Str("addr", metricsAddr).Msg("serving metrics")
			}

			_, err = ctx.Run(keys, o)
			return err
		},
	}
	cmd.Flags().StringVar(&source, "keys", "seq:1000000", "key source: testkeys:<asset> or seq:<n>")
	cmd.Flags().StringVar(&order, "order", string(workload.Shuffled), "insertion order (shuffled|ascending|as-given)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")
	cmd.Flags().IntVar(&ctx.ProgressEvery, "progress-every", 100_000, "log progress every n operations")
	cmd.Flags().Uint64Var(&ctx.Seed, "seed", 0, "seed for shuffling")
	return cmd
}
