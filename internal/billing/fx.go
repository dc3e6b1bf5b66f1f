package billing

import (
	"github.com/tallertech/tallertech/internal/billing/repository"
	"github.com/tallertech/tallertech/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
