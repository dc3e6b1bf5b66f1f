package client

import (
	"github.com/tallertech/tallertech/internal/client/repository"
	"github.com/tallertech/tallertech/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
