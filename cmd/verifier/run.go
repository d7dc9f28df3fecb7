package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"juscash/verifier/pkg/config"
	"juscash/verifier/pkg/evaluator"
	"juscash/verifier/pkg/evidence/recorder"
	"juscash/verifier/pkg/evidence/retention"
	"juscash/verifier/pkg/evidence/storage"
	"juscash/verifier/pkg/policy"
	"juscash/verifier/pkg/prompt"
	"juscash/verifier/pkg/providers"
	"juscash/verifier/pkg/providers/gemini"
	"juscash/verifier/pkg/server"
	"juscash/verifier/pkg/telemetry/logging"
	"juscash/verifier/pkg/telemetry/metrics"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the verification server",
	Long: `Start the verification server with the specified configuration.

The server accepts judicial process records on POST /verify, validates them,
and returns a policy decision with rationale and rule citations.

Examples:
  # Start with default config
  verifier run

  # Start with custom config
  verifier run --config /etc/verifier/config.yaml

  # Override listen address
  verifier run --listen 0.0.0.0:8000

  # Validate config without starting
  verifier run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	// Policy document: read once at startup, never reloaded. Changing the
	// policy requires a restart so every decision in one process lifetime
	// cites the same rule set.
	doc := policy.Default()
	if cfg.Policy.File != "" {
		doc, err = policy.Load(cfg.Policy.File)
		if err != nil {
			return fmt.Errorf("failed to load policy file: %w", err)
		}
	}
	logger.Info("policy document loaded",
		"version", doc.Version,
		"rules", len(doc.Rules()),
	)

	provider, err := gemini.NewProvider(providers.ProviderConfig{
		Name:    "gemini",
		Type:    "gemini",
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Model:   cfg.Provider.Model,
		Timeout: cfg.Provider.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	defer provider.Close()

	if cfg.Provider.APIKey == "" {
		logger.Warn("no reasoning-service credential configured; verification requests will fail until GEMINI_API_KEY is set")
	}

	builder := prompt.NewBuilder(doc,
		prompt.WithTemperature(cfg.Provider.Temperature),
		prompt.WithMaxOutputTokens(cfg.Provider.MaxOutputTokens),
	)

	// The evaluator and the server share one registry: the evaluator
	// observes call durations and token usage, the handlers count requests
	// and decisions.
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	evalOpts := []evaluator.Option{
		evaluator.WithTimeout(cfg.Provider.Timeout),
	}
	if m != nil {
		evalOpts = append(evalOpts, evaluator.WithMetrics(m))
	}
	eval := evaluator.New(provider, doc, builder, evalOpts...)

	serverOpts := []server.Option{
		server.WithVersion(Version),
	}
	if m != nil {
		serverOpts = append(serverOpts, server.WithMetrics(m))
	}

	if cfg.Evidence.Enabled {
		sqliteConfig := storage.DefaultSQLiteConfig()
		sqliteConfig.Path = cfg.Evidence.Path

		evidenceStorage, err := storage.NewSQLiteStorage(sqliteConfig)
		if err != nil {
			return fmt.Errorf("failed to create evidence storage: %w", err)
		}
		defer evidenceStorage.Close()

		evidenceRecorder := recorder.NewRecorder(evidenceStorage, nil)
		defer evidenceRecorder.Close()

		serverOpts = append(serverOpts, server.WithRecorder(evidenceRecorder))

		if cfg.Evidence.PruneSchedule != "" {
			pruner := retention.NewPruner(evidenceStorage, &retention.Config{
				RetentionDays: cfg.Evidence.RetentionDays,
				PruneSchedule: cfg.Evidence.PruneSchedule,
			})
			scheduler := retention.NewScheduler(pruner)
			if err := scheduler.Start(context.Background()); err != nil {
				logger.Warn("failed to start retention scheduler", "error", err)
			} else {
				defer scheduler.Stop()
			}
		}
	}

	srv := server.NewServer(cfg, provider, eval, serverOpts...)

	// Start blocks until a shutdown signal or a listener error.
	return srv.Start(context.Background())
}
