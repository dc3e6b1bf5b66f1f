package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// Diagnostico is the header of one diagnostic session.
type Diagnostico struct {
	IDDiagnostico string    `gorm:"column:id_diagnostico;primaryKey" json:"id_diagnostico"`
	Placa         string    `gorm:"not null;index" json:"placa"`
	Fecha         string    `gorm:"not null" json:"fecha"`
	Observaciones string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Diagnostico) TableName() string { return "diagnosticos" }

// DetalleDiagnostico is one flattened component/value row of a diagnostic.
// Rows are immutable after creation.
type DetalleDiagnostico struct {
	IDDetalle     string `gorm:"column:id_detalle;primaryKey" json:"id_detalle"`
	IDDiagnostico string `gorm:"column:id_diagnostico;not null;index" json:"id_diagnostico"`
	Placa         string `gorm:"not null;index" json:"placa"`
	Fecha         string `gorm:"not null" json:"fecha"`
	Componente    string `gorm:"not null" json:"componente"`
	Valor         Valor  `gorm:"not null;default:''" json:"valor"`
}

func (DetalleDiagnostico) TableName() string { return "detalle_diagnostico" }

// Valor holds a detail measurement. Builder-produced rows carry numbers
// (booleans coerced to 0/1, pressure to 25/30, camber as float), but
// historical rows may carry condition codes such as "Falla". The value is
// stored in its wire form so both survive a round trip.
type Valor string

// ValorFromFloat renders a numeric measurement.
func ValorFromFloat(f float64) Valor {
	return Valor(strconv.FormatFloat(f, 'g', -1, 64))
}

// Float returns the numeric form of the value, if it has one.
func (v Valor) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (v *Valor) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Valor(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = Valor(n.String())
	return nil
}

// MarshalJSON emits a number when the value is numeric, a string otherwise.
// ParseFloat accepts forms that are not JSON numbers (NaN, Inf, hex floats,
// underscore separators), so raw emission is gated on json.Valid.
func (v Valor) MarshalJSON() ([]byte, error) {
	if _, ok := v.Float(); ok && json.Valid([]byte(v)) {
		return []byte(v), nil
	}
	return json.Marshal(string(v))
}
