package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/app"
	"log-analyzer/internal/shared/configs"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("log-analyzer", pflag.ContinueOnError)
	configPath := flags.String("config", "./configs/configs.yml", "path to the YAML config file")
	serve := flags.Bool("serve", false, "serve the HTTP API instead of running one analysis")
	logName := flags.String("log", "", "log file to analyze (default: the latest one)")
	force := flags.Bool("force", false, "regenerate the report even if it already exists")
	printTable := flags.Bool("print", false, "also print the report as a table to stdout")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return 1
	}

	if *serve {
		return serveHTTP(application)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := application.RunOnce(ctx, analyzers.AnalysisRequest{LogName: *logName, Force: *force})
	if err != nil {
		return application.ExitCode(err)
	}
	if *printTable {
		if err := application.PrintReport(os.Stdout, result.Report); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to print report: %v\n", err)
			return 1
		}
	}
	return 0
}

func serveHTTP(application *app.App) int {
	serverErr := make(chan error, 1)
	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	fmt.Println("Server started")

	// Wait for interrupt signal or a failed listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return 1
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return 1
	}
	return 0
}
