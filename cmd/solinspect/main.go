package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/brojonat/solinspect/service/config"
	"github.com/brojonat/solinspect/service/metrics"
	"github.com/brojonat/solinspect/service/render"
	"github.com/brojonat/solinspect/service/rpc"
	"github.com/brojonat/solinspect/service/solana"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes: 0 success, 2 invalid address, 1 any RPC or decode failure.
const (
	exitRPCFailure     = 1
	exitInvalidAddress = 2
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		// cli.Exit errors are handled by Run itself; anything else is
		// a flag-level problem.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "solinspect",
		Usage:     "Read-only Solana wallet inspector",
		ArgsUsage: "WALLET_ADDRESS",
		Description: `Queries a Solana node's JSON-RPC interface for a wallet's SOL balance,
SPL token holdings, and recent transaction signatures.

Endpoints are tried in order with retry and backoff, so flaky or
rate-limited public nodes are tolerated.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "rpc",
				Usage:   "RPC endpoint URL (repeatable; order is failover order)",
				EnvVars: []string{"SOLINSPECT_RPC_ENDPOINTS"},
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Value:   10,
				Usage:   "Number of recent transactions to fetch",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Value:   0,
				Usage:   "Per-attempt RPC timeout (e.g. 10s); 0 uses the configured default",
			},
			&cli.StringFlag{
				Name:    "commitment",
				Aliases: []string{"c"},
				Usage:   "Commitment level: processed, confirmed, or finalized",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output the report as JSON",
			},
			&cli.StringFlag{
				Name:  "jq",
				Usage: "Apply a jq expression to the JSON report (implies --json)",
			},
			&cli.BoolFlag{
				Name:  "no-tokens",
				Usage: "Skip the SPL token query",
			},
			&cli.BoolFlag{
				Name:  "no-txs",
				Usage: "Skip the transaction history query",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log RPC attempts and retries to stderr",
			},
		},
		Action: inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("wallet address is required", exitInvalidAddress)
	}
	address := c.Args().Get(0)

	cfg, err := config.Load()
	if err != nil {
		return cli.Exit(err.Error(), exitRPCFailure)
	}

	// Flags override environment configuration.
	if endpoints := c.StringSlice("rpc"); len(endpoints) > 0 {
		cfg.Endpoints = endpoints
	}
	if c.IsSet("limit") {
		cfg.Limit = c.Int("limit")
	}
	if timeout := c.Duration("timeout"); timeout > 0 {
		cfg.Timeout = timeout
	}
	if raw := c.String("commitment"); raw != "" {
		commitment := solana.Commitment(raw)
		if !commitment.Valid() {
			return cli.Exit(
				fmt.Sprintf("invalid commitment %q: must be processed, confirmed, or finalized", raw),
				exitRPCFailure,
			)
		}
		cfg.Commitment = commitment
	}

	logger := newLogger(c.Bool("verbose"))
	m := metrics.NewMetrics(prometheus.NewRegistry())

	client, err := rpc.NewClient(cfg.Endpoints, cfg.Timeout, m, logger)
	if err != nil {
		return cli.Exit(err.Error(), exitRPCFailure)
	}

	inspector := solana.NewInspector(client, logger)
	report, err := inspector.Inspect(c.Context, solana.InspectParams{
		Address:          address,
		Commitment:       cfg.Commitment,
		Limit:            cfg.Limit,
		SkipTokens:       c.Bool("no-tokens"),
		SkipTransactions: c.Bool("no-txs"),
	})
	if err != nil {
		if errors.Is(err, solana.ErrInvalidAddress) {
			return cli.Exit(err.Error(), exitInvalidAddress)
		}
		return cli.Exit(fmt.Sprintf("RPC error: %v", err), exitRPCFailure)
	}

	opts := render.Options{
		JSON:        c.Bool("json"),
		JQ:          c.String("jq"),
		ClearScreen: !c.Bool("json") && c.String("jq") == "",
	}
	if err := render.Render(os.Stdout, report, opts); err != nil {
		return cli.Exit(err.Error(), exitRPCFailure)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}
