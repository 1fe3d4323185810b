package mock

import (
	"fmt"
	"os/signal"
	"syscall"

	"nathanbeddoewebdev/svrmgr/internal/logging"
	"nathanbeddoewebdev/svrmgr/internal/mockserver"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func ServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mock backend",
		Long: `Serve the mock backend until interrupted.

Environment:
  SVRMGR_MOCK_ADDR      listen address (default :8080)
  SVRMGR_MOCK_SERVERS   number of generated servers (default 100)
  SVRMGR_MOCK_SEED      generation seed (default: time based)
  SVRMGR_MOCK_LATENCY   delay added to every API response
  SVRMGR_MOCK_SECRET    require HS256 bearer tokens signed with this secret

Examples:
  svrmgr mock serve
  svrmgr mock serve --addr :9090 --servers 10 --seed 42
  svrmgr mock serve --secret dev-secret --latency 200ms`,
		Args:         cobra.NoArgs,
		RunE:         runServe,
		SilenceUsage: true,
	}

	cmd.Flags().String("addr", "", "Listen address")
	cmd.Flags().Int("servers", 0, "Number of servers to generate")
	cmd.Flags().Int64("seed", 0, "Seed for deterministic generation")
	cmd.Flags().Duration("latency", 0, "Delay added to every API response")
	cmd.Flags().String("secret", "", "Require bearer tokens signed with this secret")
	cmd.Flags().String("log-format", "json", "Log format: json or text")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := mockserver.LoadConfig()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("log-format")
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := logging.NewLogger(logging.Config{Level: level, Format: format})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	gin.SetMode(gin.ReleaseMode)
	backend := mockserver.New(cfg, mockserver.WithLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Mock backend on %s (%d servers). Press Ctrl+C to stop.\n",
		cfg.Addr, len(backend.Fleet().Servers()))
	return backend.ListenAndServe(ctx)
}

// applyFlags overrides environment settings with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *mockserver.Config) error {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("servers") {
		cfg.Servers, _ = flags.GetInt("servers")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("latency") {
		cfg.Latency, _ = flags.GetDuration("latency")
	}
	if flags.Changed("secret") {
		cfg.Secret, _ = flags.GetString("secret")
	}
	return cfg.Validate()
}
