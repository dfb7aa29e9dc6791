package cli

import (
	"log/slog"

	"github.com/aretw0/objects"
	"github.com/aretw0/objects/internal/logging"
)

// Options are the global flags shared by every command.
type Options struct {
	LogLevel    string
	LogJSON     bool
	Definitions []string
}

// NewCatalog builds the catalog used by a command invocation.
func NewCatalog(opts Options) (*objects.Catalog, *slog.Logger, error) {
	logger := createLogger(opts)
	cat, err := objects.New(
		objects.WithLogger(logger),
		objects.WithDefinitions(opts.Definitions...),
		objects.WithHooks(createDebugHooks(logger)),
	)
	if err != nil {
		return nil, nil, err
	}
	return cat, logger, nil
}

func createLogger(opts Options) *slog.Logger {
	if opts.LogLevel == "" {
		return logging.NewNop()
	}
	return logging.New(logging.ParseLevel(opts.LogLevel), opts.LogJSON)
}

func createDebugHooks(logger *slog.Logger) objects.Hooks {
	return objects.Hooks{
		OnNormalize: func(e objects.Event) {
			if e.Err != nil {
				logger.Info("Normalize (Rejected)", "type", e.TypeName, "duration", e.Duration)
				return
			}
			logger.Info("Normalize (Success)", "type", e.TypeName, "duration", e.Duration)
		},
	}
}
