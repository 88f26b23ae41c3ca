package models

// TableName overrides for names the default pluralizer gets wrong in
// Portuguese.
func (Fornecedor) TableName() string {
	return "fornecedores"
}

func (Mensagem) TableName() string {
	return "mensagens"
}

func (NotaEvento) TableName() string {
	return "notas_evento"
}

func (Avaliacao) TableName() string {
	return "avaliacoes"
}
