package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"helloweb/internal/config"
	"helloweb/internal/logging"
	"helloweb/internal/otel"
	"helloweb/internal/server"
)

var initTracing = otel.Init

type serveOptions struct {
	host   string
	port   string
	engine string
	debug  bool
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	root := &cobra.Command{
		Use:           "helloweb",
		Short:         "Minimal greeting web app",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	addServeFlags(root, opts)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	addServeFlags(serve, opts)

	routes := &cobra.Command{
		Use:   "routes",
		Short: "Print the registered routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, opts)
			return printRoutes(cmd.OutOrStdout(), cfg)
		},
	}
	routes.Flags().StringVar(&opts.engine, "engine", "", "view engine: inline or template (env VIEW_ENGINE)")

	root.AddCommand(serve, routes)
	return root
}

func addServeFlags(cmd *cobra.Command, opts *serveOptions) {
	cmd.Flags().StringVar(&opts.host, "host", "", "listen host (env APP_HOST)")
	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "listen port (env PORT)")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "view engine: inline or template (env VIEW_ENGINE)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "development logging and route table on start (env APP_DEBUG)")
}

// loadConfig reads the environment and applies flags the user actually set.
func loadConfig(cmd *cobra.Command, opts *serveOptions) *config.AppConfig {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.AppHost = opts.host
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("engine") {
		cfg.View.Engine = opts.engine
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	return cfg
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg := loadConfig(cmd, opts)

	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := initTracing(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := server.New(cfg, server.Deps{Logger: logger, Registry: reg, Tracing: true})
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_starting", zap.String("addr", cfg.Addr()), zap.String("view_engine", cfg.View.Engine))
		errCh <- app.Listen(cfg.Addr())
	}()

	var errs []error
	listening := true
	select {
	case err := <-errCh:
		listening = false
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to start server: %w", err))
		}
	case <-ctx.Done():
	}

	logger.Info("server_stopping")
	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if listening {
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
		}
	}
	// Flushes pending spans whether Listen failed or the process was signalled.
	if err := shutdownTracing(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracing: %w", err))
	}
	return errors.Join(errs...)
}

func printRoutes(w io.Writer, cfg *config.AppConfig) error {
	app, err := server.New(cfg, server.Deps{Registry: prometheus.NewRegistry()})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tNAME")
	for _, r := range server.Routes(app) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Method, r.Path, r.Name)
	}
	return tw.Flush()
}
