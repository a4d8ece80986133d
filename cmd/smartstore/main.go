package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"smartstore/internal/command"
	"smartstore/internal/config"
	"smartstore/internal/data"
	"smartstore/internal/events"
	"smartstore/internal/repository"
	"smartstore/internal/service"
	"smartstore/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run holds the real main so deferred cleanup happens before os.Exit.
func run() int {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("starting smartstore",
		zap.String("environment", cfg.Environment),
		zap.String("user_store", cfg.UserStore),
		zap.String("event_publisher", cfg.EventPublisher),
	)

	// Data layer
	dataStore := data.NewDataStore()
	registry := repository.NewRegistry(dataStore)

	var users repository.UserRepository
	if cfg.UserStore == "sqlite" {
		sqliteUsers, err := repository.NewSQLiteUserRepository(cfg.SQLitePath, appLogger)
		if err != nil {
			appLogger.Warn("failed to open sqlite user store, using in-memory fallback", zap.Error(err))
			users = repository.NewMemoryUserRepository(dataStore)
		} else {
			defer sqliteUsers.Close()
			users = sqliteUsers
		}
	} else {
		users = repository.NewMemoryUserRepository(dataStore)
	}

	// Event publisher
	var publisher events.EventPublisher
	if cfg.EventPublisher == "kafka" {
		kafkaPublisher, err := events.NewKafkaEventPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Warn("failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
			publisher = events.NewInMemoryEventPublisher(appLogger)
		} else {
			publisher = kafkaPublisher
		}
	} else {
		publisher = events.NewInMemoryEventPublisher(appLogger)
	}
	defer publisher.Close()

	// Services
	storeService := service.NewStoreService(registry, publisher, appLogger)
	authService := service.NewAuthenticationService(users, appLogger)

	processor := command.NewCommandProcessor(storeService, authService, cfg.AuthToken, os.Stdout, os.Stderr, appLogger)

	// With script files as arguments, replay each one; otherwise read
	// commands from stdin.
	exitCode := 0
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			if err := processor.ProcessCommandFile(path); err != nil {
				exitCode = 1
			}
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := processor.ProcessCommand(line); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}
	}

	return exitCode
}
