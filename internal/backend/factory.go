// Package backend assembles a ready-to-use expense service from
// configuration: store selection, optional event publishing, seeding.
package backend

import (
	"context"
	"fmt"

	"paisa/internal/events"
	"paisa/internal/log"
	"paisa/internal/services"
	"paisa/internal/storage"
)

// Type identifies a storage backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// Config holds what the factory needs to build a backend.
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Insert the sample transactions when the store is empty
	SeedSampleData bool

	// AMQP events (optional)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Result contains the assembled service and its cleanup function.
type Result struct {
	Service *services.ExpenseService
	Cleanup func() error
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent("backend")
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	var (
		store storage.Store
		err   error
	)
	switch config.Type {
	case SQLiteBackend:
		store, err = storage.NewSQLiteStore(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	case MemoryBackend:
		store = storage.NewMemoryStore()
		f.logger.Info("Initialized memory backend")
	}

	// Event publishing is optional; a missing broker degrades to none
	var publisher services.EventPublisher
	if config.AMQPURL != "" {
		p, err := events.NewPublisher(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP publisher, continuing without events", "error", err)
		} else {
			publisher = p
			f.logger.Info("Initialized AMQP publisher",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	if config.SeedSampleData {
		if err := storage.SeedIfEmpty(ctx, store); err != nil {
			store.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	service := services.NewExpenseService(store, publisher)
	return &Result{
		Service: service,
		Cleanup: service.Close,
	}, nil
}
