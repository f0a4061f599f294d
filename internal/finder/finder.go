// Package finder locates a single row among all rows of a sheet. Scans are
// linear and the first row in store order that matches wins.
package finder

import (
	"strings"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

type Predicate func(row *sheets.Row) bool

// Find returns the first row matching pred, or httperr.ErrRowNotFound.
func Find(rows []*sheets.Row, pred Predicate) (*sheets.Row, error) {
	for _, row := range rows {
		if pred(row) {
			return row, nil
		}
	}
	return nil, httperr.ErrRowNotFound
}

// AtPosition matches the row at a positional id taken from an earlier list.
// Negative ids never match.
func AtPosition(pos int) Predicate {
	return func(row *sheets.Row) bool {
		return pos >= 0 && row.Index == pos
	}
}

// ByUID matches the durable id column. An empty uid never matches.
func ByUID(uid string) Predicate {
	return func(row *sheets.Row) bool {
		return uid != "" && row.Get(records.ColID) == uid
	}
}

func ColumnEquals(column, value string) Predicate {
	return func(row *sheets.Row) bool {
		return row.Get(column) == value
	}
}

// All matches rows satisfying every predicate.
func All(preds ...Predicate) Predicate {
	return func(row *sheets.Row) bool {
		for _, p := range preds {
			if !p(row) {
				return false
			}
		}
		return true
	}
}

// Any matches rows satisfying at least one predicate.
func Any(preds ...Predicate) Predicate {
	return func(row *sheets.Row) bool {
		for _, p := range preds {
			if p(row) {
				return true
			}
		}
		return false
	}
}

// RegistroKey requires date, patient and procedure to match on the same row.
func RegistroKey(data, paciente, procedimento string) Predicate {
	return All(
		ColumnEquals(records.ColData, data),
		ColumnEquals(records.ColPaciente, paciente),
		ColumnEquals(records.ColProcedimento, procedimento),
	)
}

func PacienteByNome(nome string) Predicate {
	return ColumnEquals(records.ColNome, nome)
}

// PacienteDuplicate matches an existing patient with the same trimmed name,
// ignoring case, or with the same CPF when cpf is not empty. nome and cpf
// are expected trimmed.
func PacienteDuplicate(nome, cpf string) Predicate {
	sameName := func(row *sheets.Row) bool {
		return strings.EqualFold(strings.TrimSpace(row.Get(records.ColNome)), nome)
	}
	if cpf == "" {
		return sameName
	}
	sameCPF := func(row *sheets.Row) bool {
		return strings.TrimSpace(row.Get(records.ColCPF)) == cpf
	}
	return Any(sameName, sameCPF)
}

func AgendaSlot(data, hora string) Predicate {
	return All(
		ColumnEquals(records.ColData, data),
		ColumnEquals(records.ColHora, hora),
	)
}

func PrecoByProcedimento(procedimento string) Predicate {
	return ColumnEquals(records.ColProcedimento, procedimento)
}
