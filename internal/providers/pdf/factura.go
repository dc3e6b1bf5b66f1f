package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateFactura(ctx context.Context, factura FacturaData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(12, "TallerTech - Factura", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(15,
		col.New(6).Add(
			text.New("Factura No: "+factura.NumFactura, props.Text{Top: 0}),
			text.New("Fecha: "+factura.Fecha, props.Text{Top: 5}),
		),
		col.New(6),
	)

	m.AddRow(30,
		col.New(6).Add(
			text.New("Cliente", props.Text{Style: fontstyle.Bold}),
			text.New(factura.ClienteNombre, props.Text{Top: 5}),
			text.New(factura.ClienteID, props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Vehículo", props.Text{Style: fontstyle.Bold}),
			text.New(factura.Placa, props.Text{Top: 5}),
			text.New(factura.Marca+" "+factura.Modelo, props.Text{Top: 10}),
		),
	)

	m.AddRow(10,
		text.NewCol(7, "Servicio", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Origen", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Precio", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range factura.Items {
		m.AddRow(10,
			text.NewCol(7, item.Nombre, props.Text{Size: 9}),
			text.NewCol(2, item.Origen, props.Text{Size: 9}),
			text.NewCol(3, item.Precio, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(3, factura.Subtotal, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "IVA 16%", props.Text{Size: 9}),
		text.NewCol(3, factura.Impuestos, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(7),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, factura.Total, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
