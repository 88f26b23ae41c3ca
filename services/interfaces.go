// File: /services/interfaces.go
package services

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"teamsync-api/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type EmpresaRepository interface {
	Create(ctx context.Context, empresa *models.Empresa) error
	Update(ctx context.Context, empresa *models.Empresa) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Empresa, error)
	FindByUserID(ctx context.Context, userID string) (*models.Empresa, error)
	List(ctx context.Context, skip, limit int) ([]models.Empresa, error)
}

type FornecedorRepository interface {
	Create(ctx context.Context, fornecedor *models.Fornecedor) error
	Update(ctx context.Context, fornecedor *models.Fornecedor) error
	FindByID(ctx context.Context, id string) (*models.Fornecedor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Fornecedor, error)
	List(ctx context.Context, skip, limit int) ([]models.Fornecedor, error)
}

type AtividadeRepository interface {
	Create(ctx context.Context, atividade *models.Atividade) error
	Update(ctx context.Context, atividade *models.Atividade) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Atividade, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Atividade, error)
	Search(ctx context.Context, filtro models.AtividadeFiltro) ([]models.Atividade, error)
	ListByEstado(ctx context.Context, estado models.AtividadeEstado) ([]models.Atividade, error)
	UpdateEstado(ctx context.Context, id string, from, to models.AtividadeEstado) error
}

type ReservaRepository interface {
	Create(ctx context.Context, reserva *models.Reserva) error
	CreateMany(ctx context.Context, reservas []*models.Reserva) error
	FindByID(ctx context.Context, id string) (*models.Reserva, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]models.Reserva, error)
	ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Reserva, error)
	MapByPropostas(ctx context.Context, propostaIDs []string) (map[string]string, error)
	UpdateEstado(ctx context.Context, id string, from []models.ReservaEstado, to models.ReservaEstado) error
}

type RFQRepository interface {
	Create(ctx context.Context, rfq *models.RFQ) error
	FindByID(ctx context.Context, id string) (*models.RFQ, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]models.RFQResumo, error)
	ListDisponiveis(ctx context.Context, fornecedorID string) ([]models.RFQ, error)
	UpdateEstado(ctx context.Context, id string, from []models.RFQEstado, to models.RFQEstado) error
}

type PropostaRepository interface {
	Create(ctx context.Context, proposta *models.Proposta) error
	FindByID(ctx context.Context, id string) (*models.Proposta, error)
	ListByRFQ(ctx context.Context, rfqID string) ([]models.Proposta, error)
	ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Proposta, error)
	// Accept marks the proposal aceite, closes its RFQ, declines the other
	// pending proposals and stores reserva, all in one transaction.
	Accept(ctx context.Context, propostaID string, reserva *models.Reserva) error
	UpdateEstado(ctx context.Context, id string, from, to models.PropostaEstado) error
	ExpireBefore(ctx context.Context, before time.Time) (int64, error)
}

type PagamentoRepository interface {
	Create(ctx context.Context, pagamento *models.Pagamento) error
	Save(ctx context.Context, pagamento *models.Pagamento) error
	FindByID(ctx context.Context, id string) (*models.Pagamento, error)
	FindByReservaID(ctx context.Context, reservaID string) (*models.Pagamento, error)
	FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*models.Pagamento, error)
	MarkProcessing(ctx context.Context, id, gatewayPaymentID string, response models.RawJSON) error
	// Complete concludes a processing payment and confirms its reservation
	// in one transaction.
	Complete(ctx context.Context, id, transactionID string, response models.RawJSON, at time.Time) error
	Fail(ctx context.Context, id string, to models.PagamentoEstado, response models.RawJSON) error
	ExpireStale(ctx context.Context, before time.Time) (int64, error)
}

type EventoRepository interface {
	CreateMensagem(ctx context.Context, mensagem *models.Mensagem) error
	ListMensagens(ctx context.Context, reservaID string) ([]models.Mensagem, error)
	MarkMensagensLidas(ctx context.Context, reservaID, destinatarioID string) error
	CreateNota(ctx context.Context, nota *models.NotaEvento) error
	ListNotas(ctx context.Context, reservaID string) ([]models.NotaEvento, error)
	CreateDocumento(ctx context.Context, documento *models.Documento) error
	ListDocumentos(ctx context.Context, reservaID string) ([]models.Documento, error)
}

type AvaliacaoRepository interface {
	// Create stores the review and refreshes the activity rating aggregates.
	Create(ctx context.Context, avaliacao *models.Avaliacao) error
	ListByAtividade(ctx context.Context, atividadeID string) ([]models.Avaliacao, error)
	ListByFornecedor(ctx context.Context, fornecedorID string) ([]models.Avaliacao, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]models.Avaliacao, error)
}

type ItinerarioRepository interface {
	Create(ctx context.Context, itinerario *models.Itinerario) error
	ListByEmpresa(ctx context.Context, empresaID string) ([]models.Itinerario, error)
}

type StatsRepository interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	Relatorio(ctx context.Context, since time.Time) (*models.Relatorio, error)
}

type GatewayStatus string

const (
	GatewayPending   GatewayStatus = "pending"
	GatewaySucceeded GatewayStatus = "succeeded"
	GatewayFailed    GatewayStatus = "failed"
)

// GatewayIntent is the gateway's answer to a new payment request.
type GatewayIntent struct {
	PaymentID    string
	ClientSecret string
	Status       string
	Raw          json.RawMessage
}

// GatewayResult is the settled (or still pending) outcome of a payment.
type GatewayResult struct {
	Status        GatewayStatus
	TransactionID string
	Raw           json.RawMessage
}

// PaymentGateway abstracts the external payment provider.
type PaymentGateway interface {
	Name() string
	PublicKey() string
	CreateCardIntent(ctx context.Context, amount float64, metadata map[string]string) (*GatewayIntent, error)
	CreateMBWayRequest(ctx context.Context, amount float64, telefone string, metadata map[string]string) (*GatewayIntent, error)
	GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (*GatewayResult, error)
}

// Notifier delivers the marketplace notifications. Failures are logged by
// callers and never abort the operation that triggered them.
type Notifier interface {
	RFQCreated(ctx context.Context, to string, rfq *models.RFQ) error
	PropostaReceived(ctx context.Context, to string, rfq *models.RFQ, proposta *models.Proposta) error
	PropostaAccepted(ctx context.Context, to string, proposta *models.Proposta, reservaID string) error
	ReservaConfirmed(ctx context.Context, to string, reserva *models.Reserva) error
	PaymentCompleted(ctx context.Context, to string, pagamento *models.Pagamento) error
	MensagemReceived(ctx context.Context, to string, mensagem *models.Mensagem) error
}
