package catalog

import (
	"github.com/tallertech/tallertech/internal/catalog/repository"
	"github.com/tallertech/tallertech/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
