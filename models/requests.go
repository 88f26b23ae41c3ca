// File: /models/requests.go
package models

// Request payloads. Rules live in `validate` tags and are checked by
// utils.Validate before a payload reaches a service.

type RegisterRequest struct {
	Nome     string `json:"nome" validate:"required,max=255" msg:"Por favor, informe o nome"`
	Email    string `json:"email" validate:"required,email,max=191" msg:"Por favor, informe o email"`
	Password string `json:"password" validate:"required,min=6,max=72" msg:"A password deve ter pelo menos 6 caracteres"`
	Tipo     string `json:"tipo" validate:"required,tipo_conta" msg:"Por favor, selecione o tipo de conta"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Por favor, informe o email"`
	Password string `json:"password" validate:"required" msg:"Por favor, informe a password"`
}

type EmpresaRequest struct {
	Nome                  string   `json:"nome" validate:"required,max=255" msg:"Por favor, informe o nome da empresa"`
	Setor                 *string  `json:"setor" validate:"omitempty,max=255"`
	NFuncionarios         *int     `json:"n_funcionarios" validate:"omitempty,gte=0"`
	Localizacao           *string  `json:"localizacao" validate:"omitempty,max=255"`
	OrcamentoMedio        *float64 `json:"orcamento_medio" validate:"omitempty,gte=0"`
	PreferenciaAtividades *string  `json:"preferencia_atividades"`
	Telefone              *string  `json:"telefone" validate:"omitempty,max=50"`
}

type FornecedorRequest struct {
	Nome        string  `json:"nome" validate:"required,max=255" msg:"Por favor, informe o nome do fornecedor"`
	Localizacao *string `json:"localizacao" validate:"omitempty,max=255"`
	Descricao   *string `json:"descricao"`
	Contacto    *string `json:"contacto" validate:"omitempty,max=255"`
}

type AtividadeRequest struct {
	Nome           string     `json:"nome" validate:"required,max=255" msg:"Por favor, informe o nome da atividade"`
	Tipo           string     `json:"tipo" validate:"required,max=100" msg:"Por favor, informe o tipo da atividade"`
	Categoria      *string    `json:"categoria" validate:"omitempty,max=100"`
	PrecoPorPessoa float64    `json:"preco_por_pessoa" validate:"required,gt=0" msg:"Por favor, informe o preço por pessoa"`
	CapacidadeMax  int        `json:"capacidade_max" validate:"required,gt=0" msg:"Por favor, informe a capacidade máxima"`
	Localizacao    string     `json:"localizacao" validate:"required,max=255" msg:"Por favor, informe a localização"`
	Descricao      *string    `json:"descricao"`
	Imagens        StringList `json:"imagens" validate:"omitempty,max=20,dive,required"`
	Clima          *string    `json:"clima" validate:"omitempty,max=50"`
	DuracaoMinutos *int       `json:"duracao_minutos" validate:"omitempty,gt=0"`
}

type RecomendacaoRequest struct {
	NPessoas     int      `json:"n_pessoas" validate:"required,gt=0" msg:"Por favor, informe o número de pessoas"`
	OrcamentoMax *float64 `json:"orcamento_max" validate:"omitempty,gt=0"`
	Localizacao  string   `json:"localizacao"`
	Categoria    string   `json:"categoria"`
	Clima        string   `json:"clima"`
	DuracaoMax   *int     `json:"duracao_max" validate:"omitempty,gt=0"`
}

type ReservaRequest struct {
	AtividadeID string `json:"atividade_id" validate:"required" msg:"Por favor, selecione a atividade"`
	Data        string `json:"data" validate:"required,isodate" msg:"Por favor, selecione a data"`
	NPessoas    int    `json:"n_pessoas" validate:"required,gt=0" msg:"Por favor, informe o número de pessoas"`
}

type ReservaGuestRequest struct {
	AtividadeID  string  `json:"atividade_id" validate:"required" msg:"Por favor, selecione a atividade"`
	Data         string  `json:"data" validate:"required,isodate" msg:"Por favor, selecione a data"`
	NPessoas     int     `json:"n_pessoas" validate:"required,gt=0" msg:"Por favor, informe o número de pessoas"`
	NomeEmpresa  string  `json:"nome_empresa" validate:"required,max=255" msg:"Por favor, informe o nome da empresa"`
	Email        string  `json:"email" validate:"required,email" msg:"Por favor, informe o email"`
	Telefone     *string `json:"telefone" validate:"omitempty,max=50"`
	NomeContacto *string `json:"nome_contacto" validate:"omitempty,max=255"`
	Localizacao  *string `json:"localizacao" validate:"omitempty,max=255"`
}

type CancelarReservaRequest struct {
	ReservaID string `json:"reserva_id" validate:"required" msg:"Por favor, indique a reserva"`
}

type RFQRequest struct {
	NPessoas           int     `json:"n_pessoas" validate:"required,gt=0" msg:"Por favor, informe o número de pessoas"`
	DataPreferida      string  `json:"data_preferida" validate:"required,isodate" msg:"Por favor, selecione a data preferida"`
	DataAlternativa    *string `json:"data_alternativa" validate:"omitempty,isodate"`
	Localizacao        string  `json:"localizacao" validate:"required,max=255" msg:"Por favor, informe a localização"`
	RaioKm             *int    `json:"raio_km" validate:"omitempty,gt=0,lte=1000"`
	OrcamentoMax       float64 `json:"orcamento_max" validate:"required,gt=0" msg:"Por favor, informe o orçamento máximo"`
	Objetivo           *string `json:"objetivo"`
	Preferencias       *string `json:"preferencias"`
	CategoriaPreferida *string `json:"categoria_preferida" validate:"omitempty,max=100"`
	ClimaPreferido     *string `json:"clima_preferido" validate:"omitempty,max=50"`
	DuracaoMaxMinutos  *int    `json:"duracao_max_minutos" validate:"omitempty,gt=0"`
}

// PropostaRequest may omit one of the two prices; the other is derived
// from the RFQ headcount.
type PropostaRequest struct {
	RFQID          string   `json:"rfq_id" validate:"required" msg:"Por favor, indique o RFQ"`
	AtividadeID    *string  `json:"atividade_id"`
	PrecoTotal     *float64 `json:"preco_total" validate:"required_without=PrecoPorPessoa,omitempty,gt=0" msg:"Por favor, informe o preço"`
	PrecoPorPessoa *float64 `json:"preco_por_pessoa" validate:"required_without=PrecoTotal,omitempty,gt=0" msg:"Por favor, informe o preço"`
	Descricao      string   `json:"descricao" validate:"required" msg:"Por favor, descreva a proposta"`
	Extras         *string  `json:"extras"`
	Condicoes      *string  `json:"condicoes"`
	DataProposta   *string  `json:"data_proposta" validate:"omitempty,isodate"`
	DuracaoMinutos *int     `json:"duracao_minutos" validate:"omitempty,gt=0"`
}

type CriarEventoRequest struct {
	DataInicio        string   `json:"data_inicio" validate:"required,isodate" msg:"Por favor, selecione a data de início"`
	DataFim           *string  `json:"data_fim" validate:"omitempty,isodate"`
	DuracaoAtividades string   `json:"duracao_atividades" validate:"required,oneof=manha tarde dia_todo" msg:"Por favor, selecione a duração das atividades"`
	NPessoas          int      `json:"n_pessoas" validate:"required,gt=0" msg:"Por favor, informe o número de pessoas"`
	Localizacao       string   `json:"localizacao" validate:"required,max=255" msg:"Por favor, informe a localização"`
	TiposAtividades   []string `json:"tipos_atividades" validate:"required,min=1" msg:"Por favor, selecione pelo menos um tipo de atividade"`
	Almoco            bool     `json:"almoco"`
	Transporte        bool     `json:"transporte"`
	ExpectativaPreco  string   `json:"expectativa_preco" validate:"required" msg:"Por favor, selecione a expectativa de preço"`
	Observacoes       *string  `json:"observacoes"`
	Email             *string  `json:"email" validate:"omitempty,email"`
	NomeEmpresa       *string  `json:"nome_empresa" validate:"omitempty,max=255"`
}

// EdicaoAgenda is one edit applied to a generated proposal.
type EdicaoAgenda struct {
	Operacao       string           `json:"operacao" validate:"required,oneof=adicionar_atividade adicionar_almoco adicionar_transporte editar remover"`
	Indice         *int             `json:"indice" validate:"required_if=Operacao editar,required_if=Operacao remover,omitempty,gte=0"`
	AtividadeID    string           `json:"atividade_id" validate:"required_if=Operacao adicionar_atividade"`
	HorarioInicio  string           `json:"horario_inicio" validate:"required_if=Operacao adicionar_atividade"`
	HorarioFim     string           `json:"horario_fim" validate:"required_if=Operacao adicionar_atividade"`
	PrecoPorPessoa *float64         `json:"preco_por_pessoa" validate:"omitempty,gte=0"`
	Alteracoes     *AgendaItemPatch `json:"alteracoes" validate:"required_if=Operacao editar"`
}

type EditarPropostaEventoRequest struct {
	Proposta PropostaEvento `json:"proposta" validate:"required"`
	Edicoes  []EdicaoAgenda `json:"edicoes" validate:"omitempty,dive"`
}

type ConfirmarEventoRequest struct {
	Proposta    PropostaEvento `json:"proposta" validate:"required"`
	Grupos      []Grupo        `json:"grupos" validate:"omitempty,dive"`
	Email       *string        `json:"email" validate:"omitempty,email"`
	NomeEmpresa *string        `json:"nome_empresa" validate:"omitempty,max=255"`
	Telefone    *string        `json:"telefone" validate:"omitempty,max=50"`
}

type PagamentoCartaoRequest struct {
	ReservaID    string  `json:"reserva_id" validate:"required" msg:"Por favor, indique a reserva"`
	NomeTitular  string  `json:"nome_titular" validate:"required,max=255" msg:"Por favor, informe o nome do titular"`
	NumeroCartao string  `json:"numero_cartao" validate:"required,min=12,max=23" msg:"Por favor, informe o número do cartão"`
	EmailFatura  *string `json:"email_fatura" validate:"omitempty,email"`
	Descricao    *string `json:"descricao" validate:"omitempty,max=500"`
}

type PagamentoMBWayRequest struct {
	ReservaID   string  `json:"reserva_id" validate:"required" msg:"Por favor, indique a reserva"`
	Telefone    string  `json:"telefone" validate:"required,min=9,max=20" msg:"Por favor, informe o número de telemóvel"`
	EmailFatura *string `json:"email_fatura" validate:"omitempty,email"`
	Descricao   *string `json:"descricao" validate:"omitempty,max=500"`
}

// ConfirmarPagamentoRequest is accepted for compatibility. The outcome is
// read from the gateway, never from the client.
type ConfirmarPagamentoRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
	TransactionID   string `json:"transaction_id"`
}

type GatewayWebhookRequest struct {
	GatewayPaymentID string  `json:"gateway_payment_id" validate:"required"`
	TransactionID    string  `json:"transaction_id" validate:"required_if=Status succeeded"`
	Status           string  `json:"status" validate:"required,oneof=succeeded failed"`
	Raw              RawJSON `json:"raw,omitempty"`
}

type MensagemRequest struct {
	Conteudo string `json:"conteudo" validate:"required,max=5000" msg:"Escreva uma mensagem"`
}

type NotaRequest struct {
	Titulo   string `json:"titulo" validate:"required,max=255" msg:"Indique o título da nota"`
	Conteudo string `json:"conteudo" validate:"required" msg:"Escreva o conteúdo da nota"`
}

type DocumentoRequest struct {
	Nome      string  `json:"nome" validate:"required,max=255" msg:"Indique o nome do documento"`
	URL       string  `json:"url" validate:"required,url,max=1000" msg:"Indique o URL do documento"`
	Tipo      *string `json:"tipo" validate:"omitempty,max=50"`
	Descricao *string `json:"descricao"`
}

type AvaliacaoRequest struct {
	AtividadeID  *string `json:"atividade_id" validate:"required_without=FornecedorID"`
	FornecedorID *string `json:"fornecedor_id" validate:"required_without=AtividadeID"`
	Rating       int     `json:"rating" validate:"required,gte=1,lte=5" msg:"A avaliação deve ser entre 1 e 5"`
	Comentario   *string `json:"comentario" validate:"omitempty,max=2000"`
}

type ItinerarioRequest struct {
	Data         string   `json:"data" validate:"required,isodate" msg:"Por favor, selecione a data"`
	AtividadeIDs []string `json:"atividade_ids" validate:"omitempty,max=3"`
}
