package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
)

type failingStore struct{ err error }

func (f failingStore) LoadSheetsByTitle(context.Context) (map[string]Sheet, error) {
	return nil, f.err
}

func TestGateway_Resolve(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	store.AddSheet("REGISTROS", "Data")
	store.AddSheet("agenda", "Data")
	store.AddSheet("Precos", "Procedimento")
	gw := NewGateway(store, nil)

	testCases := []struct {
		name      string
		lookup    string
		wantTitle string
		wantErr   string
	}{
		{name: "Exact", lookup: "agenda", wantTitle: "agenda"},
		{name: "UpperFallback", lookup: "registros", wantTitle: "REGISTROS"},
		{name: "MixedCaseUpperFallback", lookup: "Registros", wantTitle: "REGISTROS"},
		{name: "NoLowerFallback", lookup: "AGENDA", wantErr: "Aba 'AGENDA' não encontrada."},
		{name: "NoCaseFolding", lookup: "precos", wantErr: "Aba 'precos' não encontrada."},
		{name: "Missing", lookup: "NOTAS", wantErr: "Aba 'NOTAS' não encontrada."},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sheet, err := gw.Resolve(context.Background(), tc.lookup)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				assert.True(t, httperr.IsBusiness(err, httperr.CodeSheetNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, sheet.Title())
		})
	}
}

func TestGateway_ResolvePropagatesStoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("network down")
	gw := NewGateway(failingStore{err: boom}, nil)

	_, err := gw.Resolve(context.Background(), "REGISTROS")
	require.ErrorIs(t, err, boom)
}

func TestGateway_PersistAndRemove(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	sh := store.AddSheet("PRECOS", "Procedimento", "Valor")
	gw := NewGateway(store, nil)
	ctx := context.Background()

	err := gw.Mutate(ctx, "PRECOS", func(sheet Sheet) error {
		require.NoError(t, gw.Append(ctx, sheet, map[string]string{"Procedimento": "Limpeza", "Valor": "100"}))
		return gw.Append(ctx, sheet, map[string]string{"Procedimento": "Canal", "Valor": "800", "Extra": "x"})
	})
	require.NoError(t, err)
	require.Equal(t, 2, sh.Len())
	assert.Empty(t, sh.Cell(1, "Extra"))

	rows, err := gw.ReadAll(ctx, "PRECOS")
	require.NoError(t, err)

	rows[0].Set("Valor", "120")
	require.NoError(t, gw.Persist(ctx, sh, rows[0]))
	assert.Equal(t, "120", sh.Cell(0, "Valor"))

	require.NoError(t, gw.Remove(ctx, sh, rows[0]))
	require.Equal(t, 1, sh.Len())
	assert.Equal(t, "Canal", sh.Cell(0, "Procedimento"))
}

func TestGateway_MutateMissingSheet(t *testing.T) {
	t.Parallel()

	gw := NewGateway(NewMemoryStore(), nil)
	called := false

	err := gw.Mutate(context.Background(), "NOTAS", func(Sheet) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}
