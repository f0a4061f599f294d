package preco

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

func TestPrecos_CreateListDelete(t *testing.T) {
	t.Parallel()

	store := records.NewMemoryStore()
	svc := NewService(sheets.NewGateway(store, nil), nil)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, records.Preco{Procedimento: "Limpeza", Valor: "150.5"}))
	require.NoError(t, svc.Create(ctx, records.Preco{Procedimento: "Canal", Valor: "800"}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []records.Preco{
		{Procedimento: "Limpeza", Valor: "150.5"},
		{Procedimento: "Canal", Valor: "800"},
	}, list)

	require.ErrorIs(t, svc.Delete(ctx, "Clareamento"), httperr.ErrRowNotFound)
	require.NoError(t, svc.Delete(ctx, "Limpeza"))

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Canal", list[0].Procedimento)
}
