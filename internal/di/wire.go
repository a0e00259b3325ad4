//go:build wireinject

package di

import (
	"github.com/google/wire"

	"buildcard/internal/adapter/logging"
	"buildcard/internal/app"
	"buildcard/internal/config"
	"buildcard/internal/domain/ports"
	"buildcard/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideRunSource,
		provideNotifier,
		usecase.NewBuildNotifier,
		provideWatcher,
		app.New,
		provideSchedule,
	)
	return nil, nil
}
