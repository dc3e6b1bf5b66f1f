package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GenerateFactura(ctx context.Context, data FacturaData) (io.Reader, error)
	GenerateHistorial(ctx context.Context, data HistorialData) (io.Reader, error)
}

// FacturaData is everything the invoice PDF renders.
type FacturaData struct {
	NumFactura    string
	Fecha         string
	ClienteNombre string
	ClienteID     string
	Placa         string
	Marca         string
	Modelo        string

	Items []FacturaItem

	Subtotal  string
	Impuestos string
	Total     string
}

type FacturaItem struct {
	Nombre string
	Origen string
	Precio string
}

// HistorialData is the vehicle service-history export.
type HistorialData struct {
	Placa         string
	ClienteNombre string
	Registros     []HistorialItem
}

type HistorialItem struct {
	Fecha    string
	Servicio string
	Costo    string
}
