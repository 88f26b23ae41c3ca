// File: /models/evento_proposta.go
package models

import (
	"errors"
	"fmt"
	"strings"

	"teamsync-api/utils"
)

type AgendaItemTipo string

const (
	AgendaAtividade  AgendaItemTipo = "atividade"
	AgendaAlmoco     AgendaItemTipo = "almoco"
	AgendaTransporte AgendaItemTipo = "transporte"
)

const (
	PrecoAlmocoPadrao     = 25.0
	PrecoTransportePadrao = 15.0
	HorarioAlmocoPadrao   = "13:00 - 14:30"
	HorarioTransporte     = "08:00 - 19:00"
	LocalPorDefinir       = "A definir"
)

var (
	ErrItemDuplicado   = errors.New("a agenda já inclui este item")
	ErrItemInexistente = errors.New("item da agenda inexistente")
	ErrSemGrupos       = errors.New("indique pelo menos um grupo")
	ErrGrupoSemNome    = errors.New("indique o nome de cada grupo")
)

type AgendaItem struct {
	Tipo           AgendaItemTipo `json:"tipo" validate:"required,oneof=atividade almoco transporte"`
	Nome           string         `json:"nome" validate:"required"`
	Fornecedor     string         `json:"fornecedor,omitempty"`
	Horario        string         `json:"horario" validate:"required,hhmm_range"`
	Local          string         `json:"local"`
	Preco          float64        `json:"preco" validate:"gte=0"`
	DuracaoMinutos int            `json:"duracao_minutos,omitempty" validate:"gte=0"`
	Descricao      string         `json:"descricao,omitempty"`
	AtividadeID    *string        `json:"atividade_id,omitempty"`
}

// AgendaItemPatch carries the editable fields of an agenda item. Nil fields
// are left untouched.
type AgendaItemPatch struct {
	Horario        *string  `json:"horario,omitempty" validate:"omitempty,hhmm_range"`
	Local          *string  `json:"local,omitempty"`
	Preco          *float64 `json:"preco,omitempty" validate:"omitempty,gte=0"`
	DuracaoMinutos *int     `json:"duracao_minutos,omitempty" validate:"omitempty,gte=0"`
	Descricao      *string  `json:"descricao,omitempty"`
}

// PropostaEvento is a generated event proposal. It is only persisted once
// confirmed, as one reservation per activity.
type PropostaEvento struct {
	ID               string       `json:"id"`
	Titulo           string       `json:"titulo" validate:"required"`
	Tipo             string       `json:"tipo"`
	Descricao        string       `json:"descricao"`
	NPessoas         int          `json:"n_pessoas" validate:"required,gt=0" msg:"Por favor, informe o número de pessoas"`
	DataEvento       string       `json:"data_evento" validate:"omitempty,isodate"`
	Agenda           []AgendaItem `json:"agenda" validate:"required,min=1,dive"`
	PrecoTotal       float64      `json:"preco_total"`
	PrecoPorPessoa   float64      `json:"preco_por_pessoa"`
	Inclusoes        []string     `json:"inclusoes"`
	Resumo           string       `json:"resumo"`
	NotasImportantes []string     `json:"notas_importantes"`
}

// Total is the sum of every agenda line.
func (p *PropostaEvento) Total() float64 {
	var total float64
	for _, item := range p.Agenda {
		total += item.Preco
	}
	return utils.Round2(total)
}

// Recalculate refreshes both price fields from the agenda.
func (p *PropostaEvento) Recalculate() error {
	p.PrecoTotal = p.Total()
	perPerson, err := utils.PerPersonFromTotal(p.PrecoTotal, p.NPessoas)
	if err != nil {
		return err
	}
	p.PrecoPorPessoa = perPerson
	return nil
}

func (p *PropostaEvento) hasTipo(tipo AgendaItemTipo) bool {
	for _, item := range p.Agenda {
		if item.Tipo == tipo {
			return true
		}
	}
	return false
}

func (p *PropostaEvento) defaultLocal() string {
	if len(p.Agenda) > 0 && p.Agenda[0].Local != "" {
		return p.Agenda[0].Local
	}
	return LocalPorDefinir
}

// NewAtividadeItem prices an activity for the whole group. duracaoPadrao
// is used when the activity has no duration of its own.
func NewAtividadeItem(a *Atividade, horario string, nPessoas, duracaoPadrao int) (AgendaItem, error) {
	if _, _, err := utils.ParseHorario(horario); err != nil {
		return AgendaItem{}, err
	}
	preco, err := utils.TotalFromPerPerson(a.PrecoPorPessoa, nPessoas)
	if err != nil {
		return AgendaItem{}, err
	}

	atividadeID := a.ID
	fornecedor := "Fornecedor"
	if a.Fornecedor != nil && a.Fornecedor.Nome != "" {
		fornecedor = a.Fornecedor.Nome
	}
	item := AgendaItem{
		Tipo:           AgendaAtividade,
		Nome:           a.Nome,
		Fornecedor:     fornecedor,
		Horario:        horario,
		Local:          a.Localizacao,
		Preco:          preco,
		DuracaoMinutos: a.DuracaoOr(duracaoPadrao),
		AtividadeID:    &atividadeID,
	}
	if a.Descricao != nil {
		item.Descricao = *a.Descricao
	}
	return item, nil
}

// AddAtividade appends an activity priced for the whole group.
func (p *PropostaEvento) AddAtividade(a *Atividade, inicio, fim string) error {
	item, err := NewAtividadeItem(a, utils.FormatHorario(inicio, fim), p.NPessoas, 120)
	if err != nil {
		return err
	}
	p.Agenda = append(p.Agenda, item)
	return p.Recalculate()
}

// AddItem appends a prepared line. Lunch and transport appear at most once.
func (p *PropostaEvento) AddItem(item AgendaItem) error {
	if item.Tipo != AgendaAtividade && p.hasTipo(item.Tipo) {
		return ErrItemDuplicado
	}
	p.Agenda = append(p.Agenda, item)
	return p.Recalculate()
}

// AddAlmoco appends lunch for everyone. An agenda holds at most one lunch.
func (p *PropostaEvento) AddAlmoco(precoPorPessoa float64) error {
	if p.hasTipo(AgendaAlmoco) {
		return ErrItemDuplicado
	}
	preco, err := utils.TotalFromPerPerson(precoPorPessoa, p.NPessoas)
	if err != nil {
		return err
	}
	p.Agenda = append(p.Agenda, AgendaItem{
		Tipo:           AgendaAlmoco,
		Nome:           "Almoço em Restaurante Local",
		Fornecedor:     "Restaurante Parceiro",
		Horario:        HorarioAlmocoPadrao,
		Local:          p.defaultLocal(),
		Preco:          preco,
		DuracaoMinutos: 90,
		Descricao:      "Menu completo",
	})
	return p.Recalculate()
}

// AddTransporte appends return transport. An agenda holds at most one.
func (p *PropostaEvento) AddTransporte(precoPorPessoa float64) error {
	if p.hasTipo(AgendaTransporte) {
		return ErrItemDuplicado
	}
	preco, err := utils.TotalFromPerPerson(precoPorPessoa, p.NPessoas)
	if err != nil {
		return err
	}
	p.Agenda = append(p.Agenda, AgendaItem{
		Tipo:       AgendaTransporte,
		Nome:       "Transporte de/para Local",
		Fornecedor: "Transporte Parceiro",
		Horario:    HorarioTransporte,
		Local:      p.defaultLocal(),
		Preco:      preco,
		Descricao:  "Transporte em autocarro confortável",
	})
	return p.Recalculate()
}

func (p *PropostaEvento) UpdateItem(index int, patch AgendaItemPatch) error {
	if index < 0 || index >= len(p.Agenda) {
		return ErrItemInexistente
	}
	item := &p.Agenda[index]
	if patch.Horario != nil {
		if _, _, err := utils.ParseHorario(*patch.Horario); err != nil {
			return err
		}
		item.Horario = *patch.Horario
	}
	if patch.Local != nil {
		item.Local = *patch.Local
	}
	if patch.Preco != nil {
		if *patch.Preco < 0 {
			return fmt.Errorf("preco must not be negative")
		}
		item.Preco = utils.Round2(*patch.Preco)
	}
	if patch.DuracaoMinutos != nil {
		item.DuracaoMinutos = *patch.DuracaoMinutos
	}
	if patch.Descricao != nil {
		item.Descricao = *patch.Descricao
	}
	return p.Recalculate()
}

func (p *PropostaEvento) RemoveItem(index int) (AgendaItem, error) {
	if index < 0 || index >= len(p.Agenda) {
		return AgendaItem{}, ErrItemInexistente
	}
	removed := p.Agenda[index]
	p.Agenda = append(p.Agenda[:index:index], p.Agenda[index+1:]...)
	return removed, p.Recalculate()
}

type Grupo struct {
	ID         int          `json:"id"`
	Nome       string       `json:"nome" validate:"required" msg:"Indique o nome do grupo"`
	NPessoas   int          `json:"n_pessoas" validate:"required,gt=0" msg:"Indique o número de pessoas do grupo"`
	Atividades []AgendaItem `json:"atividades" validate:"dive"`
}

// GroupSplitError reports a partition that does not cover the headcount.
type GroupSplitError struct {
	Soma  int
	Total int
}

func (e *GroupSplitError) Error() string {
	return fmt.Sprintf("O total de pessoas (%d) deve ser igual a %d", e.Soma, e.Total)
}

// Ratio renders the mismatch as shown next to the group editor, e.g. 21/20.
func (e *GroupSplitError) Ratio() string {
	return fmt.Sprintf("%d/%d", e.Soma, e.Total)
}

// ValidateGroupSplit accepts the groups exactly when their headcounts add
// up to total.
func ValidateGroupSplit(grupos []Grupo, total int) error {
	if len(grupos) == 0 {
		return ErrSemGrupos
	}
	soma := 0
	for _, g := range grupos {
		if strings.TrimSpace(g.Nome) == "" {
			return ErrGrupoSemNome
		}
		if g.NPessoas <= 0 {
			return fmt.Errorf("grupo %q sem pessoas", g.Nome)
		}
		soma += g.NPessoas
	}
	if soma != total {
		return &GroupSplitError{Soma: soma, Total: total}
	}
	return nil
}
