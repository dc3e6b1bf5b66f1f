package consumption

import (
	"github.com/tallertech/tallertech/internal/consumption/repository"
	"github.com/tallertech/tallertech/internal/consumption/service"
	"go.uber.org/fx"
)

var Module = fx.Module("consumption.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
