package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
	"github.com/Hyken1/OdontoClinic/internal/records"
	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

func rowsOf(header []string, data ...map[string]string) []*sheets.Row {
	out := make([]*sheets.Row, len(data))
	for i, d := range data {
		out[i] = sheets.NewRow(i, header, d)
	}
	return out
}

func registros() []*sheets.Row {
	return rowsOf(records.Headers[records.SheetRegistros],
		map[string]string{"ID": "u0", "Data": "2024-05-01", "Paciente": "Ana", "Procedimento": "Limpeza"},
		map[string]string{"ID": "u1", "Data": "2024-05-01", "Paciente": "Ana", "Procedimento": "Canal"},
		map[string]string{"ID": "u2", "Data": "2024-05-02", "Paciente": "Ana", "Procedimento": "Limpeza"},
		map[string]string{"ID": "u3", "Data": "2024-05-01", "Paciente": "Bia", "Procedimento": "Limpeza"},
	)
}

func TestFind_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Find(registros(), ColumnEquals("Paciente", "Zé"))
	require.ErrorIs(t, err, httperr.ErrRowNotFound)

	_, err = Find(nil, func(*sheets.Row) bool { return true })
	require.ErrorIs(t, err, httperr.ErrRowNotFound)
}

func TestFind_FirstMatchWins(t *testing.T) {
	t.Parallel()

	row, err := Find(registros(), ColumnEquals("Paciente", "Ana"))
	require.NoError(t, err)
	assert.Equal(t, 0, row.Index)
}

func TestAtPosition(t *testing.T) {
	t.Parallel()

	rows := registros()

	row, err := Find(rows, AtPosition(2))
	require.NoError(t, err)
	assert.Equal(t, "u2", row.Get("ID"))

	for _, pos := range []int{-1, 4, 100} {
		_, err := Find(rows, AtPosition(pos))
		assert.ErrorIs(t, err, httperr.ErrRowNotFound, "position %d", pos)
	}
}

func TestByUID(t *testing.T) {
	t.Parallel()

	row, err := Find(registros(), ByUID("u3"))
	require.NoError(t, err)
	assert.Equal(t, 3, row.Index)

	_, err = Find(rowsOf([]string{"Data"}, map[string]string{"Data": "x"}), ByUID(""))
	assert.ErrorIs(t, err, httperr.ErrRowNotFound)
}

func TestRegistroKey_RequiresAllThree(t *testing.T) {
	t.Parallel()

	rows := registros()

	row, err := Find(rows, RegistroKey("2024-05-01", "Ana", "Canal"))
	require.NoError(t, err)
	assert.Equal(t, "u1", row.Get("ID"))

	testCases := []struct {
		name                         string
		data, paciente, procedimento string
	}{
		{name: "WrongDate", data: "2024-05-03", paciente: "Bia", procedimento: "Limpeza"},
		{name: "WrongPatient", data: "2024-05-02", paciente: "Bia", procedimento: "Limpeza"},
		{name: "WrongProcedure", data: "2024-05-01", paciente: "Bia", procedimento: "Canal"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Find(rows, RegistroKey(tc.data, tc.paciente, tc.procedimento))
			assert.ErrorIs(t, err, httperr.ErrRowNotFound)
		})
	}
}

func TestPacienteDuplicate(t *testing.T) {
	t.Parallel()

	rows := rowsOf(records.Headers[records.SheetPacientes],
		map[string]string{"Nome": " Ana Silva ", "CPF": "111"},
		map[string]string{"Nome": "Bruno", "CPF": "123"},
		map[string]string{"Nome": "Carla"},
	)

	testCases := []struct {
		name    string
		nome    string
		cpf     string
		wantIdx int
	}{
		{name: "NameIgnoringCase", nome: "ana silva", wantIdx: 0},
		{name: "NameUpper", nome: "ANA SILVA", cpf: "999", wantIdx: 0},
		{name: "CPFAlone", nome: "Outro Nome", cpf: "123", wantIdx: 1},
		{name: "NoMatch", nome: "Daniel", cpf: "456", wantIdx: -1},
		{name: "EmptyCPFIgnored", nome: "Daniel", cpf: "", wantIdx: -1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			row, err := Find(rows, PacienteDuplicate(tc.nome, tc.cpf))
			if tc.wantIdx < 0 {
				assert.ErrorIs(t, err, httperr.ErrRowNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantIdx, row.Index)
		})
	}
}

func TestAgendaSlotAndPreco(t *testing.T) {
	t.Parallel()

	agenda := rowsOf(records.Headers[records.SheetAgenda],
		map[string]string{"Data": "2024-05-01", "Hora": "09:00"},
		map[string]string{"Data": "2024-05-01", "Hora": "10:00"},
	)

	row, err := Find(agenda, AgendaSlot("2024-05-01", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, 1, row.Index)

	_, err = Find(agenda, AgendaSlot("2024-05-01", "11:00"))
	assert.ErrorIs(t, err, httperr.ErrRowNotFound)

	precos := rowsOf(records.Headers[records.SheetPrecos],
		map[string]string{"Procedimento": "Limpeza", "Valor": "100"},
	)
	_, err = Find(precos, PrecoByProcedimento("limpeza"))
	assert.ErrorIs(t, err, httperr.ErrRowNotFound)
}
