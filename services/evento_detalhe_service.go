// File: /services/evento_detalhe_service.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"teamsync-api/models"
)

// EventoDetalheService serves the shared workspace of a booked event: its
// details, the conversation between both parties, notes and documents.
type EventoDetalheService struct {
	reservas     ReservaRepository
	empresas     EmpresaRepository
	fornecedores FornecedorRepository
	propostas    PropostaRepository
	eventos      EventoRepository
	notifier     Notifier
	logger       *slog.Logger
}

func NewEventoDetalheService(
	reservas ReservaRepository,
	empresas EmpresaRepository,
	fornecedores FornecedorRepository,
	propostas PropostaRepository,
	eventos EventoRepository,
	notifier Notifier,
	logger *slog.Logger,
) *EventoDetalheService {
	return &EventoDetalheService{
		reservas:     reservas,
		empresas:     empresas,
		fornecedores: fornecedores,
		propostas:    propostas,
		eventos:      eventos,
		notifier:     notifier,
		logger:       logger,
	}
}

// participantes resolves both sides of a reservation and the caller's side.
type participantes struct {
	reserva    *models.Reserva
	empresa    *models.Empresa
	fornecedor *models.Fornecedor
	parte      parteReserva
}

func (s *EventoDetalheService) load(ctx context.Context, session *Session, reservaID string) (*participantes, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	reserva, err := s.reservas.FindByID(ctx, reservaID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Reserva not found")
		}
		return nil, err
	}
	parte, err := reservaParte(ctx, session, reserva, s.empresas, s.fornecedores, s.propostas)
	if err != nil {
		return nil, err
	}
	if parte == parteNenhuma {
		return nil, forbidden("Not authorized")
	}

	p := &participantes{reserva: reserva, parte: parte}
	p.empresa, err = s.empresas.FindByID(ctx, reserva.EmpresaID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	fornecedorID, err := fornecedorDaReserva(ctx, reserva, s.propostas)
	if err != nil {
		return nil, err
	}
	if fornecedorID != "" {
		p.fornecedor, err = s.fornecedores.FindByID(ctx, fornecedorID)
		if err != nil && !isNotFound(err) {
			return nil, err
		}
	}
	return p, nil
}

func (s *EventoDetalheService) Get(ctx context.Context, session *Session, reservaID string) (*models.Evento, error) {
	p, err := s.load(ctx, session, reservaID)
	if err != nil {
		return nil, err
	}
	mensagens, err := s.eventos.ListMensagens(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	notas, err := s.eventos.ListNotas(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	documentos, err := s.eventos.ListDocumentos(ctx, reservaID)
	if err != nil {
		return nil, err
	}

	return &models.Evento{
		Reserva:    *p.reserva,
		Atividade:  p.reserva.Atividade,
		Empresa:    p.empresa,
		Fornecedor: p.fornecedor,
		Mensagens:  mensagens,
		Notas:      notas,
		Documentos: documentos,
	}, nil
}

// ListMensagens returns the conversation and marks what the caller
// received as read.
func (s *EventoDetalheService) ListMensagens(ctx context.Context, session *Session, reservaID string) ([]models.Mensagem, error) {
	if _, err := s.load(ctx, session, reservaID); err != nil {
		return nil, err
	}
	mensagens, err := s.eventos.ListMensagens(ctx, reservaID)
	if err != nil {
		return nil, err
	}
	if err := s.eventos.MarkMensagensLidas(ctx, reservaID, session.UserID); err != nil {
		return nil, err
	}
	for i := range mensagens {
		if mensagens[i].DestinatarioID == session.UserID {
			mensagens[i].Lida = true
		}
	}
	return mensagens, nil
}

func (s *EventoDetalheService) EnviarMensagem(ctx context.Context, session *Session, reservaID string, req models.MensagemRequest) (*models.Mensagem, error) {
	p, err := s.load(ctx, session, reservaID)
	if err != nil {
		return nil, err
	}

	var destinatario *models.User
	switch p.parte {
	case parteEmpresa:
		if p.fornecedor != nil {
			destinatario = p.fornecedor.User
		}
	case parteFornecedor:
		if p.empresa != nil {
			destinatario = p.empresa.User
		}
	}
	if destinatario == nil {
		return nil, invalidInput("Destinatário não encontrado")
	}

	mensagem := &models.Mensagem{
		ID:             uuid.New().String(),
		ReservaID:      reservaID,
		RemetenteID:    session.UserID,
		DestinatarioID: destinatario.ID,
		Conteudo:       req.Conteudo,
	}
	if err := s.eventos.CreateMensagem(ctx, mensagem); err != nil {
		return nil, err
	}

	if err := s.notifier.MensagemReceived(ctx, destinatario.Email, mensagem); err != nil {
		s.logger.Warn("mensagem notification failed", "mensagem_id", mensagem.ID, "error", err)
	}
	return mensagem, nil
}

func (s *EventoDetalheService) ListNotas(ctx context.Context, session *Session, reservaID string) ([]models.NotaEvento, error) {
	if _, err := s.load(ctx, session, reservaID); err != nil {
		return nil, err
	}
	return s.eventos.ListNotas(ctx, reservaID)
}

func (s *EventoDetalheService) CriarNota(ctx context.Context, session *Session, reservaID string, req models.NotaRequest) (*models.NotaEvento, error) {
	if _, err := s.load(ctx, session, reservaID); err != nil {
		return nil, err
	}
	nota := &models.NotaEvento{
		ID:          uuid.New().String(),
		ReservaID:   reservaID,
		Titulo:      req.Titulo,
		Conteudo:    req.Conteudo,
		CriadoPorID: session.UserID,
	}
	if err := s.eventos.CreateNota(ctx, nota); err != nil {
		return nil, err
	}
	return nota, nil
}

func (s *EventoDetalheService) ListDocumentos(ctx context.Context, session *Session, reservaID string) ([]models.Documento, error) {
	if _, err := s.load(ctx, session, reservaID); err != nil {
		return nil, err
	}
	return s.eventos.ListDocumentos(ctx, reservaID)
}

func (s *EventoDetalheService) CriarDocumento(ctx context.Context, session *Session, reservaID string, req models.DocumentoRequest) (*models.Documento, error) {
	if _, err := s.load(ctx, session, reservaID); err != nil {
		return nil, err
	}
	documento := &models.Documento{
		ID:           uuid.New().String(),
		ReservaID:    reservaID,
		Nome:         req.Nome,
		URL:          req.URL,
		Tipo:         req.Tipo,
		Descricao:    req.Descricao,
		UploadedByID: session.UserID,
	}
	if err := s.eventos.CreateDocumento(ctx, documento); err != nil {
		return nil, err
	}
	return documento, nil
}
