package nota

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

func TestList_PositionalIDsInStoreOrder(t *testing.T) {
	t.Parallel()

	store := records.NewMemoryStore()
	sheet := store.Sheet(records.SheetNotas)
	ctx := context.Background()
	require.NoError(t, sheet.AddRow(ctx, map[string]string{"Data": "2024-05-01", "Paciente": "Ana", "CPF": "1", "Valor": "100", "Status": "Emitida"}))
	require.NoError(t, sheet.AddRow(ctx, map[string]string{"Data": "2024-05-02", "Paciente": "Bia"}))

	list, err := NewService(sheets.NewGateway(store, nil)).List(ctx)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, records.Nota{ID: 0, Data: "2024-05-01", Paciente: "Ana", CPF: "1", Valor: "100", Status: "Emitida"}, list[0])
	assert.Equal(t, 1, list[1].ID)
	assert.Empty(t, list[1].Status)
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	list, err := NewService(sheets.NewGateway(records.NewMemoryStore(), nil)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
