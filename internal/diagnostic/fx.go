package diagnostic

import (
	"github.com/tallertech/tallertech/internal/diagnostic/repository"
	"github.com/tallertech/tallertech/internal/diagnostic/service"
	"go.uber.org/fx"
)

var Module = fx.Module("diagnostic.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
