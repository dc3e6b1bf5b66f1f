package auth

import (
	"github.com/tallertech/tallertech/internal/auth/repository"
	"github.com/tallertech/tallertech/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
