package migration

import (
	"strings"

	appointmentdomain "github.com/tallertech/tallertech/internal/appointment/domain"
	authdomain "github.com/tallertech/tallertech/internal/auth/domain"
	billingdomain "github.com/tallertech/tallertech/internal/billing/domain"
	catalogdomain "github.com/tallertech/tallertech/internal/catalog/domain"
	clientdomain "github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/internal/config"
	consumptiondomain "github.com/tallertech/tallertech/internal/consumption/domain"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
	inspectiondomain "github.com/tallertech/tallertech/internal/inspection/domain"
	vehicledomain "github.com/tallertech/tallertech/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module applies the schema on startup: versioned SQL migrations on
// postgres, gorm AutoMigrate on sqlite and mysql.
var Module = fx.Module("migration",
	fx.Invoke(run),
)

func run(cfg config.Config, gdb *gorm.DB, log *zap.Logger) error {
	if strings.EqualFold(strings.TrimSpace(cfg.DBType), "postgres") {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
		log.Info("schema migrations applied", zap.String("driver", "postgres"))
		return nil
	}

	if err := gdb.AutoMigrate(
		&clientdomain.Cliente{},
		&vehicledomain.Vehiculo{},
		&inspectiondomain.Inspeccion{},
		&inspectiondomain.DetalleInspeccion{},
		&diagnosticdomain.Diagnostico{},
		&diagnosticdomain.DetalleDiagnostico{},
		&catalogdomain.Servicio{},
		&billingdomain.Factura{},
		&billingdomain.DetalleFactura{},
		&consumptiondomain.Consumo{},
		&appointmentdomain.Cita{},
		&authdomain.Usuario{},
	); err != nil {
		return err
	}
	log.Info("schema migrated", zap.String("driver", cfg.DBType))
	return nil
}
