package seed

import (
	"context"

	catalogdomain "github.com/tallertech/tallertech/internal/catalog/domain"
	"github.com/tallertech/tallertech/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module loads the predefined service catalog on startup when enabled.
var Module = fx.Module("seed",
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, cfg config.Config, catalog catalogdomain.Service, log *zap.Logger) {
	if !cfg.SeedCatalog {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			inserted, err := catalog.LoadPredefinidos(ctx)
			if err != nil {
				return err
			}
			if inserted > 0 {
				log.Info("service catalog seeded", zap.Int("inserted", inserted))
			}
			return nil
		},
	})
}
