package paciente

import (
	"context"
	"strings"

	"github.com/Hyken1/OdontoClinic/internal/audit"
	"github.com/Hyken1/OdontoClinic/internal/finder"
	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

const entity = "paciente"

type Service struct {
	gw    *sheets.Gateway
	audit *audit.Dispatcher
}

func NewService(gw *sheets.Gateway, audit *audit.Dispatcher) *Service {
	return &Service{gw: gw, audit: audit}
}

func (s *Service) List(ctx context.Context) ([]records.Paciente, error) {
	rows, err := s.gw.ReadAll(ctx, records.SheetPacientes)
	if err != nil {
		return nil, err
	}

	out := make([]records.Paciente, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.PacienteFromRow(row))
	}
	return out, nil
}

// Create rejects the patient when another one already has the same name,
// ignoring case, or the same CPF.
func (s *Service) Create(ctx context.Context, in records.Paciente) error {
	p := in.Normalized()
	if p.Nome == "" {
		return httperr.Invalid("Nome é obrigatório.")
	}

	err := s.gw.Mutate(ctx, records.SheetPacientes, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		if existing, err := finder.Find(rows, finder.PacienteDuplicate(p.Nome, p.CPF)); err == nil {
			return httperr.Duplicate("Paciente já cadastrado: " + strings.TrimSpace(existing.Get(records.ColNome)))
		}

		return s.gw.Append(ctx, sheet, p.Fields())
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{Action: "paciente_created", Entity: entity, Key: p.Nome})
	return nil
}

// Update finds the patient by the name it had before editing and
// overwrites every field, allowing a rename.
func (s *Service) Update(ctx context.Context, nomeOriginal string, in records.Paciente) error {
	p := in.Normalized()
	if p.Nome == "" {
		return httperr.Invalid("Nome é obrigatório.")
	}

	err := s.gw.Mutate(ctx, records.SheetPacientes, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		row, err := finder.Find(rows, finder.PacienteByNome(nomeOriginal))
		if err != nil {
			return httperr.RowNotFound("Paciente não encontrado para edição.")
		}

		p.Apply(row)
		return s.gw.Persist(ctx, sheet, row)
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "paciente_updated",
		Entity:   entity,
		Key:      p.Nome,
		Metadata: map[string]string{"nomeOriginal": nomeOriginal},
	})
	return nil
}

func (s *Service) Delete(ctx context.Context, nome string) error {
	err := s.gw.Mutate(ctx, records.SheetPacientes, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		row, err := finder.Find(rows, finder.PacienteByNome(nome))
		if err != nil {
			return err
		}
		return s.gw.Remove(ctx, sheet, row)
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{Action: "paciente_deleted", Entity: entity, Key: nome})
	return nil
}
