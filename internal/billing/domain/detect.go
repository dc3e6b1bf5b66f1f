package domain

import (
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
)

// Detection prices by repair category.
const (
	PrecioReparacion = 80.0
	PrecioReemplazo  = 50.0
)

// DetectServices infers billable services from a vehicle's diagnostic
// detail rows. A "Falla" value suggests a repair, "Desgastados" a
// replacement. Input order is preserved and nothing is deduplicated;
// numeric detail values never match.
func DetectServices(detalles []diagnosticdomain.DetalleDiagnostico) []LineItem {
	items := []LineItem{}
	for _, detalle := range detalles {
		switch string(detalle.Valor) {
		case diagnosticdomain.CondicionFalla:
			items = append(items, LineItem{
				Nombre: "Repair " + detalle.Componente,
				Precio: PrecioReparacion,
				Origen: OrigenAuto,
			})
		case diagnosticdomain.CondicionDesgastados:
			items = append(items, LineItem{
				Nombre: "Replace " + detalle.Componente,
				Precio: PrecioReemplazo,
				Origen: OrigenAuto,
			})
		}
	}
	return items
}
