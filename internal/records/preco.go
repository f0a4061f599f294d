package records

import "github.com/Hyken1/OdontoClinic/internal/sheets"

type Preco struct {
	Procedimento string `json:"procedimento"`
	Valor        Valor  `json:"valor"`
}

func PrecoFromRow(row *sheets.Row) Preco {
	return Preco{
		Procedimento: row.Get(ColProcedimento),
		Valor:        Valor(row.Get(ColValor)),
	}
}

func (p Preco) Fields() map[string]string {
	return map[string]string{
		ColProcedimento: p.Procedimento,
		ColValor:        p.Valor.String(),
	}
}
