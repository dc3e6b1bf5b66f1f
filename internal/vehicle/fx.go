package vehicle

import (
	"github.com/tallertech/tallertech/internal/vehicle/repository"
	"github.com/tallertech/tallertech/internal/vehicle/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vehicle.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
