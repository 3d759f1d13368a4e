package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/toppings/internal/application"
	"github.com/eugenenazirov/toppings/internal/config"
	"github.com/eugenenazirov/toppings/internal/input"
	"github.com/eugenenazirov/toppings/internal/logging"
	"github.com/eugenenazirov/toppings/internal/order"
	"github.com/eugenenazirov/toppings/internal/toppings"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("toppings", "Pizza topping tally and order pricing")
	logLevel := kingpinApp.Flag("log-level", "Minimum log level (debug, info, warn, error)").Default("info").String()

	topCmd := kingpinApp.Command("top", "Print the most popular topping combinations")
	topFile := topCmd.Arg("file", "Pizza orders file (.json, .yaml or .yml)").Required().String()
	topLimit := topCmd.Flag("limit", "Number of combinations to print").Default("20").Int()

	orderCmd := kingpinApp.Command("order", "Price an order and print its summary")
	orderFile := orderCmd.Arg("file", "Order file (.json, .yaml or .yml)").Required().String()

	serveCmd := kingpinApp.Command("serve", "Run the HTTP API")
	configFile := serveCmd.Flag("config", "Path to YAML configuration file").String()
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	pizzasFile := serveCmd.Flag("pizzas", "Pizza orders file loaded at startup").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.New(logging.WithLevel(*logLevel))
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	switch command {
	case topCmd.FullCommand():
		if err := runTop(os.Stdout, *topFile, *topLimit); err != nil {
			logger.Fatal("failed to tally toppings", zap.String("file", *topFile), zap.Error(err))
		}
	case orderCmd.FullCommand():
		if err := runOrder(os.Stdout, *orderFile); err != nil {
			logger.Fatal("failed to price order", zap.String("file", *orderFile), zap.Error(err))
		}
	case serveCmd.FullCommand():
		overrides := &config.CLIOverrides{
			ConfigFile: *configFile,
		}
		if *port != "" {
			overrides.Port = port
		}
		if *pizzasFile != "" {
			overrides.PizzasFile = pizzasFile
		}
		if *rateLimitRPSFlag >= 0 {
			overrides.RateLimitRPS = rateLimitRPSFlag
		}
		if *rateLimitBurstFlag >= 0 {
			overrides.RateLimitBurst = rateLimitBurstFlag
		}
		serve(overrides, logger)
	}
}

func runTop(w io.Writer, path string, limit int) error {
	pizzas, err := input.LoadPizzas(path)
	if err != nil {
		return err
	}
	groups, err := toppings.New().Aggregate(pizzas, limit)
	if err != nil {
		return err
	}
	return toppings.WriteReport(w, groups)
}

func runOrder(w io.Writer, path string) error {
	o, err := input.LoadOrder(path)
	if err != nil {
		return err
	}
	result, err := order.Process(o.Customer, o.Products)
	if err != nil {
		return err
	}

	if result.Summary != "" {
		if _, err := fmt.Fprintln(w, result.Summary); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Total: %s\n", order.FormatCurrency(result.Total))
	return err
}

func serve(overrides *config.CLIOverrides, logger *zap.Logger) {
	cfg, err := config.Load(overrides)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
