package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bloghub/app/cli"
	"bloghub/app/config"
	"bloghub/app/logging"
	"bloghub/app/repositories"
	"bloghub/app/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

const CliVersion = "1.0.0"

const shutdownTimeout = 10 * time.Second

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches os.Args and exits with a non-zero code on failure.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	var code int
	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("bloghub version %s\n", CliVersion)
	case "serve":
		code = serve(os.Args[2:])
	case "store":
		code = storeCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		code = 1
	}

	if code != 0 {
		exit(code)
	}
}

func printHelp() {
	helpText := `Usage: bloghub <command> [options]
Commands:
  help                               Display this help message.
  version                            Show version information.
  serve [--config <file>]            Run the HTTP API.
  store [--config <file>] <command>  Maintain the on-disk store:
                                       init, clean, backup, restore, stats.

Settings come from the config file, .env and BLOGHUB_* variables
(for example BLOGHUB_HTTP_ADDR, BLOGHUB_STORE_PATH, BLOGHUB_AUTH_PASSWORD).
`
	fmt.Println(helpText)
}

// loadConfig parses the shared --config flag and returns the remaining args.
func loadConfig(name string, args []string) (*config.Config, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	configFile := fs.String("config", "", "path to a YAML, JSON or TOML config file")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

func serve(args []string) int {
	cfg, _, err := loadConfig("serve", args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	logger, err := logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return 1
	}
	return 0
}

// run serves the API until ctx is done, then shuts the server down gracefully.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	store, err := repositories.NewStore(cfg.Store.Path, logging.NewBadgerLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := routes.NewRouter(routes.Dependencies{
		Store:    store,
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
	})
	if err != nil {
		return err
	}

	srv := routes.NewServer(cfg.HTTP, handler)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info().
		Str("addr", cfg.HTTP.Addr).
		Bool("in_memory", store.InMemory()).
		Bool("protect_videos", cfg.Auth.ProtectVideos).
		Msg("server started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func storeCommand(args []string) int {
	cfg, rest, err := loadConfig("store", args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	commands := &cli.StoreCommands{
		Path:   cfg.Store.Path,
		Logger: logging.NewBadgerLogger(logger),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
	return commands.Handle(rest)
}
