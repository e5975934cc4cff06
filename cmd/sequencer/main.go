package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	evlog "github.com/cuemby/evseq/pkg/log"
	"github.com/cuemby/evseq/pkg/metrics"
)

var (
	// Version is set via ldflags during build.
	Version = "dev"

	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "sequencer",
	Short:   "Replicated sequencer: leader-elected, single-writer event ordering over a durable log",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (see pkg/config)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", true, "Output logs in JSON format")

	cobra.OnInitialize(initLogging)

	rootCmd.AddCommand(runCmd)
}

func initLogging() {
	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	jsonOutput, _ := rootCmd.PersistentFlags().GetBool("log-json")

	evlog.Init(evlog.Config{
		Level:      evlog.Level(level),
		JSONOutput: jsonOutput,
	})
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/health", metrics.HealthHandler())
	mux.Handle("/ready", metrics.ReadyHandler())
	mux.Handle("/live", metrics.LivenessHandler())

	logger := evlog.WithComponent("metrics")
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error().Err(err).Msg("metrics server exited")
		}
	}()
	logger.Info().Str("addr", addr).Msg("metrics endpoint listening")
}
