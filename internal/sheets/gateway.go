package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
)

// Gateway resolves sheets by name and persists row mutations. It keeps no
// state between calls other than the store and the write locker.
type Gateway struct {
	store  Store
	locker Locker
}

func NewGateway(store Store, locker Locker) *Gateway {
	if locker == nil {
		locker = NewLocalLocker()
	}
	return &Gateway{
		store:  store,
		locker: locker,
	}
}

// Resolve looks the sheet up by its exact title, then by the upper-cased
// title. Nothing broader than that.
func (g *Gateway) Resolve(ctx context.Context, name string) (Sheet, error) {
	byTitle, err := g.store.LoadSheetsByTitle(ctx)
	if err != nil {
		return nil, err
	}

	if sheet, ok := byTitle[name]; ok {
		return sheet, nil
	}
	if sheet, ok := byTitle[strings.ToUpper(name)]; ok {
		return sheet, nil
	}

	return nil, httperr.SheetNotFound(name)
}

// ReadAll resolves name and returns every data row in store order.
func (g *Gateway) ReadAll(ctx context.Context, name string) ([]*Row, error) {
	sheet, err := g.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}
	return sheet.Rows(ctx)
}

// Mutate runs fn against the resolved sheet while holding the write lock
// for name, so a read-locate-write sequence is not interleaved with
// another writer of the same sheet.
func (g *Gateway) Mutate(ctx context.Context, name string, fn func(Sheet) error) error {
	unlock, err := g.locker.Lock(ctx, strings.ToUpper(name))
	if err != nil {
		return fmt.Errorf("lock sheet %s: %w", name, err)
	}
	defer unlock()

	sheet, err := g.Resolve(ctx, name)
	if err != nil {
		return err
	}
	return fn(sheet)
}

func (g *Gateway) Append(ctx context.Context, sheet Sheet, fields map[string]string) error {
	return sheet.AddRow(ctx, fields)
}

func (g *Gateway) Persist(ctx context.Context, sheet Sheet, row *Row) error {
	return sheet.SaveRow(ctx, row)
}

func (g *Gateway) Remove(ctx context.Context, sheet Sheet, row *Row) error {
	return sheet.DeleteRow(ctx, row)
}
