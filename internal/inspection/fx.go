package inspection

import (
	"github.com/tallertech/tallertech/internal/inspection/repository"
	"github.com/tallertech/tallertech/internal/inspection/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inspection.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
