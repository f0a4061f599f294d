package sheets

import "context"

// Store is the external tabular store: a spreadsheet with named sheets.
type Store interface {
	LoadSheetsByTitle(ctx context.Context) (map[string]Sheet, error)
}

// Sheet is a handle on one named sheet. Row 1 of every sheet is its header.
type Sheet interface {
	Title() string
	Rows(ctx context.Context) ([]*Row, error)
	AddRow(ctx context.Context, fields map[string]string) error
	SaveRow(ctx context.Context, row *Row) error
	DeleteRow(ctx context.Context, row *Row) error
}
