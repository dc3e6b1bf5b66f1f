package domain

import "time"

// Registro is one consumption record as seen by the aggregator.
type Registro struct {
	Servicio string
	Costo    float64
	Fecha    string // YYYY-MM-DD
}

// Rango is an inclusive date filter. Zero-value bounds are open.
type Rango struct {
	Inicio string
	Fin    string
}

// ServicioCount is one byService aggregation row.
type ServicioCount struct {
	Servicio string `json:"servicio"`
	Cantidad int    `json:"cantidad"`
}

// MesTotal is one byMonth aggregation row, keyed by English month name
// and year ("January 2024").
type MesTotal struct {
	Mes   string  `json:"mes"`
	Total float64 `json:"total"`
}

// Resumen is the aggregated report. Both groupings keep first-seen order,
// which JSON maps cannot guarantee, so they are slices.
type Resumen struct {
	PorServicio []ServicioCount `json:"por_servicio"`
	PorMes      []MesTotal      `json:"por_mes"`
}

// Aggregate groups consumption records by service name (counts) and by
// calendar month (summed cost), optionally filtered to an inclusive date
// range first. Empty input or an all-excluding range yields empty slices.
func Aggregate(registros []Registro, rango *Rango) Resumen {
	resumen := Resumen{
		PorServicio: []ServicioCount{},
		PorMes:      []MesTotal{},
	}

	servicioIdx := map[string]int{}
	mesIdx := map[string]int{}

	for _, registro := range registros {
		if rango != nil {
			if rango.Inicio != "" && registro.Fecha < rango.Inicio {
				continue
			}
			if rango.Fin != "" && registro.Fecha > rango.Fin {
				continue
			}
		}

		if idx, ok := servicioIdx[registro.Servicio]; ok {
			resumen.PorServicio[idx].Cantidad++
		} else {
			servicioIdx[registro.Servicio] = len(resumen.PorServicio)
			resumen.PorServicio = append(resumen.PorServicio, ServicioCount{
				Servicio: registro.Servicio,
				Cantidad: 1,
			})
		}

		fecha, err := time.Parse("2006-01-02", registro.Fecha)
		if err != nil {
			continue
		}
		mes := fecha.Month().String() + " " + fecha.Format("2006")
		if idx, ok := mesIdx[mes]; ok {
			resumen.PorMes[idx].Total += registro.Costo
		} else {
			mesIdx[mes] = len(resumen.PorMes)
			resumen.PorMes = append(resumen.PorMes, MesTotal{
				Mes:   mes,
				Total: registro.Costo,
			})
		}
	}

	return resumen
}
