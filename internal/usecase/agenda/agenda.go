package agenda

import (
	"context"

	"github.com/Hyken1/OdontoClinic/internal/audit"
	"github.com/Hyken1/OdontoClinic/internal/finder"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

const entity = "agenda"

type Service struct {
	gw    *sheets.Gateway
	audit *audit.Dispatcher
}

func NewService(gw *sheets.Gateway, audit *audit.Dispatcher) *Service {
	return &Service{gw: gw, audit: audit}
}

func (s *Service) List(ctx context.Context) ([]records.Agenda, error) {
	rows, err := s.gw.ReadAll(ctx, records.SheetAgenda)
	if err != nil {
		return nil, err
	}

	out := make([]records.Agenda, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.AgendaFromRow(row))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in records.Agenda) error {
	err := s.gw.Mutate(ctx, records.SheetAgenda, func(sheet sheets.Sheet) error {
		return s.gw.Append(ctx, sheet, in.CreateFields())
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "agenda_created",
		Entity:   entity,
		Key:      in.Data + "|" + in.Hora,
		Metadata: map[string]string{"paciente": in.Paciente, "procedimento": in.Procedimento},
	})
	return nil
}

// Delete removes the first appointment at exactly data and hora.
func (s *Service) Delete(ctx context.Context, data, hora string) error {
	err := s.gw.Mutate(ctx, records.SheetAgenda, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		row, err := finder.Find(rows, finder.AgendaSlot(data, hora))
		if err != nil {
			return err
		}
		return s.gw.Remove(ctx, sheet, row)
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{Action: "agenda_deleted", Entity: entity, Key: data + "|" + hora})
	return nil
}
