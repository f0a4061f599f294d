package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/Hyken1/OdontoClinic/internal/config"
)

const valueInput = "USER_ENTERED"

// GoogleStore talks to one Google spreadsheet through a service account.
type GoogleStore struct {
	svc           *gsheets.Service
	spreadsheetID string
}

func NewGoogleStore(ctx context.Context, cfg *config.Config, creds *config.Credentials) (*GoogleStore, error) {
	jwtCfg := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     []string{gsheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &GoogleStore{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

func (s *GoogleStore) LoadSheetsByTitle(ctx context.Context) (map[string]Sheet, error) {
	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("load spreadsheet: %w", err)
	}

	out := make(map[string]Sheet, len(doc.Sheets))
	for _, sh := range doc.Sheets {
		if sh.Properties == nil {
			continue
		}
		out[sh.Properties.Title] = &googleSheet{
			store:   s,
			title:   sh.Properties.Title,
			sheetID: sh.Properties.SheetId,
		}
	}
	return out, nil
}

type googleSheet struct {
	store   *GoogleStore
	title   string
	sheetID int64

	mu     sync.Mutex
	header []string
}

func (g *googleSheet) Title() string {
	return g.title
}

func (g *googleSheet) Rows(ctx context.Context) ([]*Row, error) {
	resp, err := g.store.svc.Spreadsheets.Values.
		Get(g.store.spreadsheetID, quoteTitle(g.title)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", g.title, err)
	}
	if len(resp.Values) == 0 {
		return []*Row{}, nil
	}

	header := cellsToStrings(resp.Values[0])
	g.setHeader(header)

	rows := make([]*Row, 0, len(resp.Values)-1)
	for i, raw := range resp.Values[1:] {
		cells := cellsToStrings(raw)
		values := make(map[string]string, len(header))
		// the API omits trailing blank cells
		for col, name := range header {
			if col < len(cells) && cells[col] != "" {
				values[name] = cells[col]
			}
		}
		rows = append(rows, NewRow(i, header, values))
	}
	return rows, nil
}

func (g *googleSheet) AddRow(ctx context.Context, fields map[string]string) error {
	header, err := g.loadHeader(ctx)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(header))
	for i, name := range header {
		cells[i] = fields[name]
	}

	_, err = g.store.svc.Spreadsheets.Values.
		Append(g.store.spreadsheetID, quoteTitle(g.title), &gsheets.ValueRange{
			Values: [][]interface{}{cells},
		}).
		ValueInputOption(valueInput).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", g.title, err)
	}
	return nil
}

func (g *googleSheet) SaveRow(ctx context.Context, row *Row) error {
	cells := row.Cells()
	if len(cells) == 0 {
		return nil
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	// header is sheet row 1, data row 0 is sheet row 2
	line := row.Index + 2
	rng := fmt.Sprintf("%s!A%d:%s%d", quoteTitle(g.title), line, columnLetter(len(cells)), line)

	_, err := g.store.svc.Spreadsheets.Values.
		Update(g.store.spreadsheetID, rng, &gsheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption(valueInput).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("save row %d of %s: %w", row.Index, g.title, err)
	}
	return nil
}

func (g *googleSheet) DeleteRow(ctx context.Context, row *Row) error {
	start := int64(row.Index + 1)

	_, err := g.store.svc.Spreadsheets.BatchUpdate(g.store.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    g.sheetID,
					Dimension:  "ROWS",
					StartIndex: start,
					EndIndex:   start + 1,
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("delete row %d of %s: %w", row.Index, g.title, err)
	}
	return nil
}

func (g *googleSheet) setHeader(header []string) {
	g.mu.Lock()
	g.header = header
	g.mu.Unlock()
}

func (g *googleSheet) loadHeader(ctx context.Context) ([]string, error) {
	g.mu.Lock()
	header := g.header
	g.mu.Unlock()
	if header != nil {
		return header, nil
	}

	resp, err := g.store.svc.Spreadsheets.Values.
		Get(g.store.spreadsheetID, quoteTitle(g.title)+"!1:1").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", g.title, err)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", g.title)
	}

	header = cellsToStrings(resp.Values[0])
	g.setHeader(header)
	return header, nil
}

func quoteTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func cellsToStrings(raw []interface{}) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		if v == nil {
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}

// columnLetter converts a 1-based column number to A1 notation.
func columnLetter(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
