package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/minatsilvester/hedwig/internal/cli"
	"github.com/minatsilvester/hedwig/internal/config"
	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/keybinds"
	"github.com/minatsilvester/hedwig/internal/logging"
	"github.com/minatsilvester/hedwig/internal/tui"
)

const appName = "hedwig"

var (
	version = "0.1.0"
)

// Flags
var (
	flagConfig string
	flagDebug  bool
	flagMethod string
	flagOutput string
	flagChoose bool
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runApp executes the root command with panic recovery
func runApp() (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "hedwig",
	Short: "hedwig - interactive HTTP request builder",
	Long: `hedwig is a terminal HTTP client. Compose requests from a name, URL and
method, send them, and read the responses side by side.

Examples:
  hedwig                                  # Start interactive TUI
  hedwig send https://example.com/ping    # Send a GET and print the body
  hedwig send -X POST https://example.com # Send with another method
  hedwig send -o json https://example.com # Print method, url, timing and body as JSON
  hedwig keys                             # Show effective key bindings`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

var sendCmd = &cobra.Command{
	Use:   "send <url>",
	Short: "Send a single request and print the response body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSend(cmd.Context(), cmd.OutOrStdout(), flagMethod, args[0])
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the effective key bindings and any problems with them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeys(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default ~/.hedwig/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging (also "+logging.DebugEnv+")")

	sendCmd.Flags().StringVarP(&flagMethod, "method", "X", "GET", "HTTP method (GET, POST, PUT, DELETE)")
	sendCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.FormatBody, "Output format (body/text/json/yaml)")
	sendCmd.Flags().BoolVarP(&flagChoose, "choose", "i", false, "Pick the method from a list")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(keysCmd)
}

// app holds everything built from the config before a command runs
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	closer   io.Closer
	exec     *executor.HTTPExecutor
	registry *keybinds.Registry
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setup loads the config and builds the logger, executor and key bindings
func setup() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := logging.InitLogger(appName, flagDebug || logging.DebugFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closer = logging.NewNopLogger(), nopCloser{}
	}

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		closer.Close()
		return nil, err
	}

	exec, err := executor.New(executor.Options{
		Timeout:            timeout,
		UserAgent:          cfg.UserAgentOr(appName + "/" + version),
		InsecureSkipVerify: cfg.TLS.InsecureSkipVerify,
		CAFile:             cfg.CAFilePath(),
	}, logger)
	if err != nil {
		closer.Close()
		return nil, err
	}

	registry, err := keybinds.LoadOrDefault(cfg.Keybinds)
	if err != nil {
		closer.Close()
		return nil, err
	}

	result := keybinds.NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		closer.Close()
		return nil, fmt.Errorf("invalid keybinds:\n%s", result)
	}
	for _, warn := range result.Warnings {
		logger.Warn("keybind warning", slog.String("warning", warn.Error()))
	}

	logger.Info("starting",
		slog.String("version", version),
		slog.String("config", cfg.Path),
		slog.Duration("timeout", timeout),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		closer:   closer,
		exec:     exec,
		registry: registry,
	}, nil
}

func runTUI(ctx context.Context) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.closer.Close()

	return tui.Run(ctx, tui.Options{
		Executor:  a.exec,
		Keybinds:  a.registry,
		Logger:    a.logger,
		Highlight: a.cfg.HighlightEnabled(),
		Theme:     a.cfg.ThemeName(),
	})
}

// runSend sends one request with the configured executor
func runSend(ctx context.Context, out io.Writer, method, url string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.closer.Close()

	return cli.Send(ctx, a.exec, cli.SendOptions{
		Method:       method,
		URL:          url,
		OutputFormat: flagOutput,
		ChooseMethod: flagChoose,
		Out:          out,
	})
}

// runKeys prints the effective bindings, including any from the config file
func runKeys(out io.Writer) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := keybinds.LoadOrDefault(cfg.Keybinds)
	if err != nil {
		return err
	}

	return cli.PrintKeys(out, registry)
}
