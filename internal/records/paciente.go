package records

import (
	"strings"

	"github.com/Hyken1/OdontoClinic/internal/sheets"
)

type Paciente struct {
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	CPF            string `json:"cpf"`
	CPFResponsavel string `json:"cpfResponsavel"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
}

func PacienteFromRow(row *sheets.Row) Paciente {
	return Paciente{
		Nome:           row.Get(ColNome),
		DataNascimento: row.Get(ColDataNascimento),
		CPF:            row.Get(ColCPF),
		CPFResponsavel: row.Get(ColCPFResponsavel),
		Telefone:       row.Get(ColTelefone),
		Endereco:       row.Get(ColEndereco),
	}
}

// Normalized trims the identifying fields, name and CPF.
func (p Paciente) Normalized() Paciente {
	p.Nome = strings.TrimSpace(p.Nome)
	p.CPF = strings.TrimSpace(p.CPF)
	return p
}

func (p Paciente) Fields() map[string]string {
	return map[string]string{
		ColNome:           p.Nome,
		ColDataNascimento: p.DataNascimento,
		ColCPF:            p.CPF,
		ColCPFResponsavel: p.CPFResponsavel,
		ColTelefone:       p.Telefone,
		ColEndereco:       p.Endereco,
	}
}

// Apply overwrites every paciente column of row.
func (p Paciente) Apply(row *sheets.Row) {
	for col, v := range p.Fields() {
		row.Set(col, v)
	}
}
