package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

func (p *PDFProvider) GenerateHistorial(ctx context.Context, historial HistorialData) (io.Reader, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(12, "TallerTech - Historial de servicios", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(15,
		text.NewCol(6, "Placa: "+historial.Placa, props.Text{Size: 10}),
		text.NewCol(6, "Cliente: "+historial.ClienteNombre, props.Text{Size: 10}),
	)

	m.AddRow(10,
		text.NewCol(4, "Fecha", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "Servicio", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Costo", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, registro := range historial.Registros {
		m.AddRow(10,
			text.NewCol(4, registro.Fecha, props.Text{Size: 9}),
			text.NewCol(5, registro.Servicio, props.Text{Size: 9}),
			text.NewCol(3, registro.Costo, props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
