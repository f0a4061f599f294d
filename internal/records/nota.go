package records

import "github.com/Hyken1/OdontoClinic/internal/sheets"

// Nota is a read-only history entry; ID is its positional id.
type Nota struct {
	ID           int    `json:"id"`
	Data         string `json:"data"`
	Paciente     string `json:"paciente"`
	CPF          string `json:"cpf"`
	Procedimento string `json:"procedimento"`
	Valor        Valor  `json:"valor"`
	Status       string `json:"status"`
}

func NotaFromRow(row *sheets.Row) Nota {
	return Nota{
		ID:           row.Index,
		Data:         row.Get(ColData),
		Paciente:     row.Get(ColPaciente),
		CPF:          row.Get(ColCPF),
		Procedimento: row.Get(ColProcedimento),
		Valor:        Valor(row.Get(ColValor)),
		Status:       row.Get(ColStatus),
	}
}
