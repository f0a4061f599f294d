package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRow_GetSetCells(t *testing.T) {
	t.Parallel()

	values := map[string]string{"Nome": "Ana"}
	row := NewRow(3, []string{"Nome", "CPF"}, values)

	assert.Equal(t, 3, row.Index)
	assert.Equal(t, "Ana", row.Get("Nome"))
	assert.Empty(t, row.Get("CPF"))
	assert.Empty(t, row.Get("Telefone"))
	assert.True(t, row.Has("CPF"))
	assert.False(t, row.Has("Telefone"))

	row.Set("CPF", "123")
	row.Set("Telefone", "999")
	assert.Equal(t, []string{"Ana", "123"}, row.Cells())

	// the source map is not aliased
	assert.NotContains(t, values, "CPF")
}

func TestColumnLetter(t *testing.T) {
	t.Parallel()

	cases := map[int]string{1: "A", 9: "I", 26: "Z", 27: "AA", 52: "AZ", 703: "AAA"}
	for n, want := range cases {
		assert.Equal(t, want, columnLetter(n), "column %d", n)
	}
}

func TestQuoteTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "'REGISTROS'", quoteTitle("REGISTROS"))
	assert.Equal(t, "'D''Ávila'", quoteTitle("D'Ávila"))
}
