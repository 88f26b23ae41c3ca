// File: /services/evento_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"teamsync-api/models"
	"teamsync-api/utils"
)

const (
	DuracaoManha   = "manha"
	DuracaoTarde   = "tarde"
	DuracaoDiaTodo = "dia_todo"

	atividadesRelevantesLimite = 10
)

type slot struct {
	horario string
	duracao int
}

type refeicao struct {
	nome      string
	descricao string
	horario   string
	preco     float64
}

// modeloEvento describes one of the generated event styles.
type modeloEvento struct {
	titulo     string
	tipo       string
	descricao  string
	combina    func(a *models.Atividade) bool
	reserva    int
	manha      slot
	almoco     refeicao
	tarde      slot
	transporte string
	// tardeGeral takes the afternoon activity from the full candidate list
	// instead of the style's own matches.
	tardeGeral bool
	resumo     string
	notas      []string
	inclusoes  []string
}

var modelosEvento = []modeloEvento{
	{
		titulo:    "Aventura & Outdoor",
		tipo:      "aventura",
		descricao: "Atividades ao ar livre com foco em aventura e espírito de equipa.",
		combina: func(a *models.Atividade) bool {
			return contem(a.Categoria, "aventura") || strings.Contains(strings.ToLower(a.Tipo), "outdoor") || contem(a.Clima, "outdoor")
		},
		reserva: 2,
		manha:   slot{"09:00 - 13:00", 240},
		almoco: refeicao{
			nome:      "Almoço em Restaurante Local",
			descricao: "Menu completo com entrada, prato principal e sobremesa",
			horario:   "13:00 - 14:30",
			preco:     models.PrecoAlmocoPadrao,
		},
		tarde:      slot{"15:00 - 18:00", 180},
		transporte: "08:00 - 19:00",
		resumo:     "Dia repleto de atividades ao ar livre e aventura, perfeito para equipas que gostam de ação e natureza.",
		notas:      []string{"Recomendamos roupa confortável e calçado adequado para atividades outdoor."},
		inclusoes: []string{
			"Todas as atividades incluídas",
			"Equipamento necessário",
			"Guias experientes",
			"Seguro de acidentes pessoais",
		},
	},
	{
		titulo:    "Criativa & Relax",
		tipo:      "criativa",
		descricao: "Workshops criativos e momentos de descontração para a equipa.",
		combina: func(a *models.Atividade) bool {
			return contem(a.Categoria, "artes") || contem(a.Categoria, "workshop") || strings.Contains(strings.ToLower(a.Tipo), "indoor")
		},
		reserva: 2,
		manha:   slot{"09:30 - 13:00", 210},
		almoco: refeicao{
			nome:      "Almoço em Restaurante Premium",
			descricao: "Menu gourmet com opções vegetarianas",
			horario:   "13:00 - 14:30",
			preco:     30,
		},
		tarde:      slot{"15:00 - 17:30", 150},
		transporte: "08:30 - 18:30",
		resumo:     "Experiências criativas e relaxantes, ideais para equipas que valorizam aprendizagem e bem-estar.",
		notas:      []string{"Atividades adaptáveis a diferentes níveis de experiência."},
		inclusoes: []string{
			"Todos os materiais incluídos",
			"Instrutores qualificados",
			"Coffee break",
			"Certificado de participação",
		},
	},
	{
		titulo:    "Híbrida / Corporate-Friendly",
		tipo:      "hibrida",
		descricao: "Equilíbrio entre team building estruturado e networking.",
		combina: func(a *models.Atividade) bool {
			return contem(a.Categoria, "team") || strings.Contains(strings.ToLower(a.Tipo), "team")
		},
		reserva: 1,
		manha:   slot{"09:00 - 12:30", 210},
		almoco: refeicao{
			nome:      "Almoço de Networking",
			descricao: "Menu executivo com espaço para networking",
			horario:   "12:30 - 14:00",
			preco:     27,
		},
		tarde:      slot{"14:30 - 17:00", 150},
		transporte: "08:00 - 18:00",
		tardeGeral: true,
		resumo:     "Combinação equilibrada de atividades, perfeita para eventos corporativos formais.",
		notas:      []string{"Formato adaptável a diferentes necessidades corporativas."},
		inclusoes: []string{
			"Atividades estruturadas",
			"Espaço para networking",
			"Suporte logístico completo",
			"Relatório pós-evento",
		},
	},
}

func contem(campo *string, termo string) bool {
	return campo != nil && strings.Contains(strings.ToLower(*campo), termo)
}

// EventoPropostas is the answer of the event wizard.
type EventoPropostas struct {
	EventoID  string                  `json:"evento_id"`
	Propostas []models.PropostaEvento `json:"propostas"`
}

// ConfirmacaoEvento lists the reservations created from a proposal.
type ConfirmacaoEvento struct {
	ReservasCriadas []string `json:"reservas_criadas"`
	TotalReservas   int      `json:"total_reservas"`
	Mensagem        string   `json:"mensagem"`
}

type EventoService struct {
	atividades AtividadeRepository
	reservas   ReservaRepository
	empresas   EmpresaRepository
	auth       *AuthService
	logger     *slog.Logger
}

func NewEventoService(atividades AtividadeRepository, reservas ReservaRepository, empresas EmpresaRepository, auth *AuthService, logger *slog.Logger) *EventoService {
	return &EventoService{atividades: atividades, reservas: reservas, empresas: empresas, auth: auth, logger: logger}
}

// Criar generates the three event proposals for the wizard input.
func (s *EventoService) Criar(ctx context.Context, req models.CriarEventoRequest) (*EventoPropostas, error) {
	tipos := make([]string, 0, len(req.TiposAtividades))
	for _, t := range req.TiposAtividades {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tipos = append(tipos, t)
		}
	}

	candidatas, err := s.atividades.Search(ctx, models.AtividadeFiltro{
		NPessoas:         req.NPessoas,
		Tipos:            tipos,
		SomenteAprovadas: true,
		Limit:            atividadesRelevantesLimite,
	})
	if err != nil {
		return nil, err
	}

	propostas := make([]models.PropostaEvento, 0, len(modelosEvento))
	for _, modelo := range modelosEvento {
		proposta, err := gerarProposta(modelo, req, candidatas)
		if err != nil {
			return nil, invalidInput("%s", err.Error())
		}
		propostas = append(propostas, *proposta)
	}

	s.logger.Info("event proposals generated", "n_pessoas", req.NPessoas, "candidatas", len(candidatas))
	return &EventoPropostas{EventoID: uuid.New().String(), Propostas: propostas}, nil
}

func gerarProposta(m modeloEvento, req models.CriarEventoRequest, candidatas []models.Atividade) (*models.PropostaEvento, error) {
	var proprias []*models.Atividade
	for i := range candidatas {
		if m.combina(&candidatas[i]) {
			proprias = append(proprias, &candidatas[i])
		}
	}
	if len(proprias) == 0 {
		for i := 0; i < len(candidatas) && i < m.reserva; i++ {
			proprias = append(proprias, &candidatas[i])
		}
	}

	p := &models.PropostaEvento{
		ID:               "prop_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8],
		Titulo:           m.titulo,
		Tipo:             m.tipo,
		Descricao:        m.descricao,
		NPessoas:         req.NPessoas,
		DataEvento:       req.DataInicio,
		Agenda:           []models.AgendaItem{},
		Inclusoes:        m.inclusoes,
		Resumo:           m.resumo,
		NotasImportantes: m.notas,
	}

	var principal, complementar *models.Atividade
	if len(proprias) > 0 {
		principal = proprias[0]
	}
	if m.tardeGeral {
		if len(candidatas) > 1 {
			complementar = &candidatas[1]
		}
	} else if len(proprias) > 1 {
		complementar = proprias[1]
	}

	switch req.DuracaoAtividades {
	case DuracaoManha, DuracaoDiaTodo:
		if principal != nil {
			if err := addAtividadeSlot(p, principal, m.manha); err != nil {
				return nil, err
			}
		}
	}

	if req.Almoco {
		preco, err := utils.TotalFromPerPerson(m.almoco.preco, req.NPessoas)
		if err != nil {
			return nil, err
		}
		if err := p.AddItem(models.AgendaItem{
			Tipo:           models.AgendaAlmoco,
			Nome:           m.almoco.nome,
			Fornecedor:     "Restaurante Parceiro",
			Horario:        m.almoco.horario,
			Local:          req.Localizacao,
			Preco:          preco,
			DuracaoMinutos: 90,
			Descricao:      m.almoco.descricao,
		}); err != nil {
			return nil, err
		}
	}

	switch req.DuracaoAtividades {
	case DuracaoDiaTodo:
		if complementar != nil {
			if err := addAtividadeSlot(p, complementar, m.tarde); err != nil {
				return nil, err
			}
		}
	case DuracaoTarde:
		if principal != nil {
			if err := addAtividadeSlot(p, principal, m.tarde); err != nil {
				return nil, err
			}
		}
	}

	if req.Transporte {
		preco, err := utils.TotalFromPerPerson(models.PrecoTransportePadrao, req.NPessoas)
		if err != nil {
			return nil, err
		}
		if err := p.AddItem(models.AgendaItem{
			Tipo:       models.AgendaTransporte,
			Nome:       "Transporte de/para Local",
			Fornecedor: "Transporte Parceiro",
			Horario:    m.transporte,
			Local:      req.Localizacao,
			Preco:      preco,
			Descricao:  "Transporte em autocarro confortável",
		}); err != nil {
			return nil, err
		}
	}

	if err := p.Recalculate(); err != nil {
		return nil, err
	}
	return p, nil
}

func addAtividadeSlot(p *models.PropostaEvento, a *models.Atividade, s slot) error {
	item, err := models.NewAtividadeItem(a, s.horario, p.NPessoas, s.duracao)
	if err != nil {
		return err
	}
	return p.AddItem(item)
}

// Editar applies the edits in order and returns the repriced proposal.
func (s *EventoService) Editar(ctx context.Context, req models.EditarPropostaEventoRequest) (*models.PropostaEvento, error) {
	proposta := req.Proposta
	if err := proposta.Recalculate(); err != nil {
		return nil, invalidInput("Número de pessoas inválido")
	}

	for i, edicao := range req.Edicoes {
		if err := s.aplicar(ctx, &proposta, edicao); err != nil {
			var svcErr *Error
			if errors.As(err, &svcErr) {
				return nil, err
			}
			return nil, invalidInput("Edição %d: %s", i+1, err.Error())
		}
	}
	return &proposta, nil
}

func (s *EventoService) aplicar(ctx context.Context, p *models.PropostaEvento, e models.EdicaoAgenda) error {
	switch e.Operacao {
	case "adicionar_atividade":
		atividade, err := s.atividades.FindByID(ctx, e.AtividadeID)
		if err != nil {
			if isNotFound(err) {
				return notFound("Atividade not found")
			}
			return err
		}
		if !atividade.Aprovada {
			return invalidInput("Atividade não está disponível")
		}
		if atividade.CapacidadeMax < p.NPessoas {
			return invalidInput("Número de pessoas excede a capacidade máxima (%d)", atividade.CapacidadeMax)
		}
		return p.AddAtividade(atividade, e.HorarioInicio, e.HorarioFim)
	case "adicionar_almoco":
		return p.AddAlmoco(precoOr(e.PrecoPorPessoa, models.PrecoAlmocoPadrao))
	case "adicionar_transporte":
		return p.AddTransporte(precoOr(e.PrecoPorPessoa, models.PrecoTransportePadrao))
	case "editar":
		if e.Indice == nil || e.Alteracoes == nil {
			return models.ErrItemInexistente
		}
		return p.UpdateItem(*e.Indice, *e.Alteracoes)
	case "remover":
		if e.Indice == nil {
			return models.ErrItemInexistente
		}
		_, err := p.RemoveItem(*e.Indice)
		return err
	}
	return fmt.Errorf("operação desconhecida %q", e.Operacao)
}

func precoOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// Confirmar turns a proposal into pending reservations, one per activity or
// one per group and activity when the team is split.
func (s *EventoService) Confirmar(ctx context.Context, session *Session, req models.ConfirmarEventoRequest) (*ConfirmacaoEvento, error) {
	proposta := req.Proposta
	if len(req.Grupos) > 0 {
		if err := models.ValidateGroupSplit(req.Grupos, proposta.NPessoas); err != nil {
			var split *models.GroupSplitError
			if errors.As(err, &split) {
				return nil, utils.ValidationErrors{{
					Field:   "grupos",
					Message: fmt.Sprintf("%s (%s)", split.Error(), split.Ratio()),
				}}
			}
			return nil, invalidInput("%s", err.Error())
		}
	}

	empresa, err := s.empresaConfirmacao(ctx, session, req)
	if err != nil {
		return nil, err
	}

	data := time.Now().UTC().Truncate(24 * time.Hour)
	if proposta.DataEvento != "" {
		if d, err := utils.ParseDate(proposta.DataEvento); err == nil {
			data = d
		}
	}

	var reservas []*models.Reserva
	if len(req.Grupos) > 0 {
		for _, grupo := range req.Grupos {
			nome := grupo.Nome
			for _, item := range grupo.Atividades {
				r, err := s.reservaItem(ctx, empresa, item, data, grupo.NPessoas, &nome)
				if err != nil {
					return nil, err
				}
				if r != nil {
					reservas = append(reservas, r)
				}
			}
		}
	} else {
		for _, item := range proposta.Agenda {
			r, err := s.reservaItem(ctx, empresa, item, data, proposta.NPessoas, nil)
			if err != nil {
				return nil, err
			}
			if r != nil {
				reservas = append(reservas, r)
			}
		}
	}

	if len(reservas) == 0 {
		return nil, invalidInput("Nenhuma reserva foi criada. Verifique se há atividades válidas na proposta.")
	}
	if err := s.reservas.CreateMany(ctx, reservas); err != nil {
		return nil, err
	}

	ids := make([]string, len(reservas))
	for i, r := range reservas {
		ids[i] = r.ID
	}
	s.logger.Info("event confirmed", "empresa_id", empresa.ID, "proposta_id", proposta.ID, "reservas", len(ids))
	return &ConfirmacaoEvento{
		ReservasCriadas: ids,
		TotalReservas:   len(ids),
		Mensagem:        fmt.Sprintf("%d reserva(s) criada(s) com sucesso", len(ids)),
	}, nil
}

func (s *EventoService) reservaItem(ctx context.Context, empresa *models.Empresa, item models.AgendaItem, data time.Time, nPessoas int, grupo *string) (*models.Reserva, error) {
	if item.Tipo != models.AgendaAtividade || item.AtividadeID == nil || *item.AtividadeID == "" {
		return nil, nil
	}
	atividade, err := s.atividades.FindByID(ctx, *item.AtividadeID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	total, err := utils.TotalFromPerPerson(atividade.PrecoPorPessoa, nPessoas)
	if err != nil {
		return nil, invalidInput("Número de pessoas inválido")
	}
	return &models.Reserva{
		ID:          uuid.New().String(),
		EmpresaID:   empresa.ID,
		AtividadeID: &atividade.ID,
		Data:        data,
		NPessoas:    nPessoas,
		PrecoTotal:  total,
		Estado:      models.ReservaPendente,
		Grupo:       grupo,
	}, nil
}

func (s *EventoService) empresaConfirmacao(ctx context.Context, session *Session, req models.ConfirmarEventoRequest) (*models.Empresa, error) {
	if session != nil && session.Tipo == models.UserTipoEmpresa {
		empresa, err := s.empresas.FindByUserID(ctx, session.UserID)
		if err == nil {
			return empresa, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}
	if req.Email == nil || req.NomeEmpresa == nil || *req.Email == "" || *req.NomeEmpresa == "" {
		return nil, invalidInput("Não foi possível identificar ou criar a empresa. Por favor, faça login ou forneça email e nome da empresa.")
	}
	return s.auth.GuestEmpresa(ctx, *req.Email, *req.NomeEmpresa, req.Telefone, nil)
}
