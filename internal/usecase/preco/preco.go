package preco

import (
	"context"

	"github.com/Hyken1/OdontoClinic/internal/audit"
	"github.com/Hyken1/OdontoClinic/internal/finder"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

const entity = "preco"

type Service struct {
	gw    *sheets.Gateway
	audit *audit.Dispatcher
}

func NewService(gw *sheets.Gateway, audit *audit.Dispatcher) *Service {
	return &Service{gw: gw, audit: audit}
}

func (s *Service) List(ctx context.Context) ([]records.Preco, error) {
	rows, err := s.gw.ReadAll(ctx, records.SheetPrecos)
	if err != nil {
		return nil, err
	}

	out := make([]records.Preco, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.PrecoFromRow(row))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in records.Preco) error {
	err := s.gw.Mutate(ctx, records.SheetPrecos, func(sheet sheets.Sheet) error {
		return s.gw.Append(ctx, sheet, in.Fields())
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "preco_created",
		Entity:   entity,
		Key:      in.Procedimento,
		Metadata: map[string]string{"valor": in.Valor.String()},
	})
	return nil
}

func (s *Service) Delete(ctx context.Context, procedimento string) error {
	err := s.gw.Mutate(ctx, records.SheetPrecos, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		row, err := finder.Find(rows, finder.PrecoByProcedimento(procedimento))
		if err != nil {
			return err
		}
		return s.gw.Remove(ctx, sheet, row)
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{Action: "preco_deleted", Entity: entity, Key: procedimento})
	return nil
}
