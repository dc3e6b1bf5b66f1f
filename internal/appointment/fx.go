package appointment

import (
	"github.com/tallertech/tallertech/internal/appointment/repository"
	"github.com/tallertech/tallertech/internal/appointment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("appointment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
