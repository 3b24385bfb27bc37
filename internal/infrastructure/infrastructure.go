// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (logging, lifecycle, storage, validation)
// that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/lifecycle"
	"github.com/JaimeStill/promptlab/pkg/logging"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Infrastructure holds the core systems required by all domain modules.
// The store is created here and injected; nothing else owns entity state.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Store     storage.System
	Validator *validation.Validator

	sync func() error
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger, sync, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Store:     storage.New(logger, models.SystemClock),
		Validator: validation.New(),
		sync:      sync,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Store.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}

// Sync flushes any buffered log entries.
func (i *Infrastructure) Sync() error {
	if i.sync == nil {
		return nil
	}
	return i.sync()
}
