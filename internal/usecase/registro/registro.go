package registro

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Hyken1/OdontoClinic/internal/audit"
	"github.com/Hyken1/OdontoClinic/internal/finder"
	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

const entity = "registro"

type StatusUpdateInput struct {
	// ID is the positional id seen in an earlier list.
	ID records.Position
	// UID, when set and the sheet carries the ID column, wins over ID.
	UID        string
	NovoStatus string
}

type DeleteInput struct {
	Data         string
	Paciente     string
	Procedimento string
}

type Service struct {
	gw    *sheets.Gateway
	audit *audit.Dispatcher
	newID func() string
}

func NewService(gw *sheets.Gateway, audit *audit.Dispatcher) *Service {
	return &Service{
		gw:    gw,
		audit: audit,
		newID: uuid.NewString,
	}
}

// List returns the records newest first, optionally only those whose date
// equals data exactly. Each record keeps its positional id from before
// filtering.
func (s *Service) List(ctx context.Context, data string) ([]records.Registro, error) {
	rows, err := s.gw.ReadAll(ctx, records.SheetRegistros)
	if err != nil {
		return nil, err
	}

	out := make([]records.Registro, 0, len(rows))
	for _, row := range rows {
		r := records.RegistroFromRow(row)
		if data != "" && r.Data != data {
			continue
		}
		out = append(out, r)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in records.Registro) error {
	uid := s.newID()

	err := s.gw.Mutate(ctx, records.SheetRegistros, func(sheet sheets.Sheet) error {
		return s.gw.Append(ctx, sheet, in.CreateFields(uid))
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "registro_created",
		Entity:   entity,
		Key:      uid,
		Metadata: map[string]string{"data": in.Data, "paciente": in.Paciente, "procedimento": in.Procedimento},
	})
	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, in StatusUpdateInput) error {
	if strings.TrimSpace(in.NovoStatus) == "" {
		return httperr.Invalid("novoStatus é obrigatório.")
	}

	var (
		key       string
		oldStatus string
	)
	err := s.gw.Mutate(ctx, records.SheetRegistros, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		row, err := locate(rows, in)
		if err != nil {
			return httperr.RowNotFound("Linha não encontrada.")
		}

		oldStatus = records.RegistroFromRow(row).StatusRecibo
		key = row.Get(records.ColID)
		row.Set(records.ColStatusRecibo, in.NovoStatus)
		return s.gw.Persist(ctx, sheet, row)
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "registro_status_updated",
		Entity:   entity,
		Key:      key,
		Metadata: map[string]string{"de": oldStatus, "para": in.NovoStatus},
	})
	return nil
}

func locate(rows []*sheets.Row, in StatusUpdateInput) (*sheets.Row, error) {
	if in.UID != "" && len(rows) > 0 && rows[0].Has(records.ColID) {
		return finder.Find(rows, finder.ByUID(in.UID))
	}
	if !in.ID.Valid {
		return nil, httperr.ErrRowNotFound
	}
	return finder.Find(rows, finder.AtPosition(in.ID.Value))
}

func (s *Service) Delete(ctx context.Context, in DeleteInput) error {
	err := s.gw.Mutate(ctx, records.SheetRegistros, func(sheet sheets.Sheet) error {
		rows, err := sheet.Rows(ctx)
		if err != nil {
			return err
		}

		row, err := finder.Find(rows, finder.RegistroKey(in.Data, in.Paciente, in.Procedimento))
		if err != nil {
			return err
		}
		return s.gw.Remove(ctx, sheet, row)
	})
	if err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action: "registro_deleted",
		Entity: entity,
		Key:    strings.Join([]string{in.Data, in.Paciente, in.Procedimento}, "|"),
	})
	return nil
}
