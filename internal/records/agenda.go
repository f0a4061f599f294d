package records

import "github.com/Hyken1/OdontoClinic/internal/sheets"

type Agenda struct {
	Data         string `json:"data"`
	Hora         string `json:"hora"`
	Paciente     string `json:"paciente"`
	Procedimento string `json:"procedimento"`
	Dentista     string `json:"dentista"`
	Status       string `json:"status"`
}

func AgendaFromRow(row *sheets.Row) Agenda {
	return Agenda{
		Data:         row.Get(ColData),
		Hora:         row.Get(ColHora),
		Paciente:     row.Get(ColPaciente),
		Procedimento: row.Get(ColProcedimento),
		Dentista:     orDefault(row.Get(ColDentista), DefaultDentista),
		Status:       orDefault(row.Get(ColStatus), DefaultStatusAgenda),
	}
}

// CreateFields maps a new appointment onto columns; it is always
// created confirmed.
func (a Agenda) CreateFields() map[string]string {
	return map[string]string{
		ColData:         a.Data,
		ColHora:         a.Hora,
		ColPaciente:     a.Paciente,
		ColProcedimento: a.Procedimento,
		ColDentista:     orDefault(a.Dentista, DefaultDentista),
		ColStatus:       DefaultStatusAgenda,
	}
}
