package records

const (
	SheetRegistros = "REGISTROS"
	SheetPacientes = "PACIENTES"
	SheetAgenda    = "AGENDA"
	SheetPrecos    = "PRECOS"
	SheetNotas     = "NOTAS"
)

const (
	ColID             = "ID"
	ColData           = "Data"
	ColHora           = "Hora"
	ColProcedimento   = "Procedimento"
	ColPaciente       = "Paciente"
	ColValor          = "Valor"
	ColPagamento      = "Pagamento"
	ColTipo           = "Tipo"
	ColDentista       = "Dentista"
	ColStatusRecibo   = "StatusRecibo"
	ColStatus         = "Status"
	ColNome           = "Nome"
	ColDataNascimento = "DataNascimento"
	ColCPF            = "CPF"
	ColCPFResponsavel = "CPFResponsavel"
	ColTelefone       = "Telefone"
	ColEndereco       = "Endereco"
)

// Defaults applied on read when a cell is blank or its column is missing,
// and on create when the caller leaves the field empty.
const (
	DefaultDentista     = "Dra. Emilly"
	DefaultStatusRecibo = "Pendente"
	DefaultStatusAgenda = "confirmado"
)

// Headers is the header row each sheet is expected to carry. Older sheets
// may lack trailing columns; reads fall back to the defaults above.
var Headers = map[string][]string{
	SheetRegistros: {ColID, ColData, ColProcedimento, ColPaciente, ColValor, ColPagamento, ColTipo, ColDentista, ColStatusRecibo},
	SheetPacientes: {ColNome, ColDataNascimento, ColCPF, ColCPFResponsavel, ColTelefone, ColEndereco},
	SheetAgenda:    {ColData, ColHora, ColPaciente, ColProcedimento, ColDentista, ColStatus},
	SheetPrecos:    {ColProcedimento, ColValor},
	SheetNotas:     {ColData, ColPaciente, ColCPF, ColProcedimento, ColValor, ColStatus},
}

// SheetNames lists every sheet the service reads, in a stable order.
var SheetNames = []string{SheetRegistros, SheetPacientes, SheetAgenda, SheetPrecos, SheetNotas}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
