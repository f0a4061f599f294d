package records

import "github.com/Hyken1/OdontoClinic/internal/sheets"

// Registro is one daily charge record. ID is the positional id of the row
// at read time; UID is the durable id stored in the ID column, when the
// sheet has one.
type Registro struct {
	ID           int    `json:"id"`
	UID          string `json:"uid,omitempty"`
	Data         string `json:"data"`
	Procedimento string `json:"procedimento"`
	Paciente     string `json:"paciente"`
	Valor        Valor  `json:"valor"`
	Pagamento    string `json:"pagamento"`
	Tipo         string `json:"tipo"`
	Dentista     string `json:"dentista"`
	StatusRecibo string `json:"statusRecibo"`
}

func RegistroFromRow(row *sheets.Row) Registro {
	return Registro{
		ID:           row.Index,
		UID:          row.Get(ColID),
		Data:         row.Get(ColData),
		Procedimento: row.Get(ColProcedimento),
		Paciente:     row.Get(ColPaciente),
		Valor:        Valor(row.Get(ColValor)),
		Pagamento:    row.Get(ColPagamento),
		Tipo:         row.Get(ColTipo),
		Dentista:     orDefault(row.Get(ColDentista), DefaultDentista),
		StatusRecibo: orDefault(row.Get(ColStatusRecibo), DefaultStatusRecibo),
	}
}

// CreateFields maps a new record onto columns. Every new record starts with
// a pending receipt, whatever the caller sent.
func (r Registro) CreateFields(uid string) map[string]string {
	return map[string]string{
		ColID:           uid,
		ColData:         r.Data,
		ColProcedimento: r.Procedimento,
		ColPaciente:     r.Paciente,
		ColValor:        r.Valor.String(),
		ColPagamento:    r.Pagamento,
		ColTipo:         r.Tipo,
		ColDentista:     orDefault(r.Dentista, DefaultDentista),
		ColStatusRecibo: DefaultStatusRecibo,
	}
}
