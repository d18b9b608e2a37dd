// Package main starts the dorra actuator controller binary.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dorra-iot/dorrad/internal/actuator"
	"github.com/dorra-iot/dorrad/internal/bearer"
	"github.com/dorra-iot/dorrad/internal/command"
	"github.com/dorra-iot/dorrad/internal/config"
	"github.com/dorra-iot/dorrad/internal/log"
	"github.com/dorra-iot/dorrad/internal/session"
	"github.com/dorra-iot/dorrad/internal/status"
	"github.com/dorra-iot/dorrad/internal/storage"
)

func run() int {
	logger := log.New()
	logger.Info("Starting dorra actuator controller")

	cfg, err := loadAndLogConfig(logger)
	if err != nil {
		return 1
	}

	store, driver, err := initializeDevice(cfg, logger)
	if err != nil {
		return 1
	}
	defer closeDevice(store, driver, logger)

	return runSession(cfg, driver, logger)
}

func loadAndLogConfig(logger *log.Logger) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}

	logger.Info("Configuration loaded successfully")
	logger.Info("Broker: %s, Status: %s, Control: %s", cfg.MQTT.BrokerURL, cfg.Topics.Status, cfg.Topics.Control)
	logger.Info("Actuator: %s line %d (active-high=%t)", cfg.Actuator.Chip, cfg.Actuator.Line, cfg.Actuator.ActiveHigh)
	logger.Info("Store: %s", cfg.Storage.Address)
	return cfg, nil
}

// initializeDevice brings up the local collaborators: persistent store first,
// then the output pin. Either failure aborts startup entirely.
func initializeDevice(cfg *config.Config, logger *log.Logger) (*storage.Client, *actuator.Driver, error) {
	store, err := storage.NewClient(&cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to initialize persistent store: %v", err)
	}

	ctx := context.Background()
	if last, err := store.LastBoot(ctx); err == nil && !last.IsZero() {
		logger.Info("Previous boot at %s", last)
	}
	if count, err := store.RecordBoot(ctx); err != nil {
		logger.Warn("Failed to record boot: %v", err)
	} else {
		logger.Info("Boot #%d recorded", count)
	}

	pin := actuator.NewLinePin(cfg.Actuator.Chip, cfg.Actuator.Line)
	driver := actuator.NewDriver(pin, cfg.Actuator.ActiveHigh, logger)
	if err := driver.Configure(); err != nil {
		logger.Fatal("Failed to initialize actuator: %v", err)
	}

	return store, driver, nil
}

func closeDevice(store *storage.Client, driver *actuator.Driver, logger *log.Logger) {
	if err := driver.Close(); err != nil {
		logger.Error("Error closing actuator: %v", err)
	}
	if err := store.Close(); err != nil {
		logger.Error("Error closing store: %v", err)
	}
}

// runSession waits for the network bearer, opens the broker session, and
// blocks until a termination signal arrives.
func runSession(cfg *config.Config, driver *actuator.Driver, logger *log.Logger) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gate := bearer.New(&cfg.Bearer, logger)
	if err := gate.Wait(ctx); err != nil {
		logger.Error("Network bearer never became ready: %v", err)
		return 1
	}

	reporter := status.NewReporter(&cfg.Topics)
	decoder := command.NewDecoder(&cfg.Topics)

	var controller *session.Controller
	client, err := session.NewClient(&cfg.MQTT, reporter.Will(), session.HandlerFunc(func(ev session.Event) {
		controller.Handle(ev)
	}), logger)
	if err != nil {
		logger.Error("Failed to create session client: %v", err)
		return 1
	}
	controller = session.NewController(client, driver, decoder, reporter, &cfg.Topics, logger)

	if err := client.Open(ctx); err != nil {
		logger.Error("Failed to open broker session: %v", err)
		return 1
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Received signal %v, initiating graceful shutdown", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.MQTT.DisconnectTimeout)
	defer shutdownCancel()
	if err := client.Close(shutdownCtx); err != nil {
		logger.Error("Error closing broker session: %v", err)
		return 1
	}

	logger.Info("Controller stopped")
	return 0
}

func main() {
	// Keep main minimal to ensure defers in run() execute correctly.
	os.Exit(run())
}
