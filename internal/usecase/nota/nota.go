package nota

import (
	"context"

	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

// Service exposes the history feed. It is read-only.
type Service struct {
	gw *sheets.Gateway
}

func NewService(gw *sheets.Gateway) *Service {
	return &Service{gw: gw}
}

func (s *Service) List(ctx context.Context) ([]records.Nota, error) {
	rows, err := s.gw.ReadAll(ctx, records.SheetNotas)
	if err != nil {
		return nil, err
	}

	out := make([]records.Nota, 0, len(rows))
	for _, row := range rows {
		out = append(out, records.NotaFromRow(row))
	}
	return out, nil
}
