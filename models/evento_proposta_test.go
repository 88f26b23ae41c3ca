package models

import (
	"errors"
	"testing"
)

func newProposta(t *testing.T, nPessoas int) *PropostaEvento {
	t.Helper()
	p := &PropostaEvento{ID: "1", Titulo: "Aventura & Outdoor", NPessoas: nPessoas}
	canoagem := &Atividade{ID: "a1", Nome: "Canoagem no Tejo", PrecoPorPessoa: 25, Localizacao: "Lisboa"}
	if err := p.AddAtividade(canoagem, "09:00", "13:00"); err != nil {
		t.Fatalf("expected no error adding activity, got %v", err)
	}
	paintball := &Atividade{ID: "a2", Nome: "Paintball", PrecoPorPessoa: 35, Localizacao: "Sintra"}
	if err := p.AddAtividade(paintball, "15:00", "18:00"); err != nil {
		t.Fatalf("expected no error adding activity, got %v", err)
	}
	return p
}

func TestPropostaEvento_AddAtividadeUsesHeadcount(t *testing.T) {
	p := newProposta(t, 20)

	if p.Agenda[0].Preco != 500 {
		t.Fatalf("expected 500, got %.2f", p.Agenda[0].Preco)
	}
	if p.PrecoTotal != 1200 {
		t.Fatalf("expected total 1200, got %.2f", p.PrecoTotal)
	}
	if p.PrecoPorPessoa != 60 {
		t.Fatalf("expected 60 per person, got %.2f", p.PrecoPorPessoa)
	}
	if p.Agenda[0].Horario != "09:00 - 13:00" {
		t.Fatalf("expected formatted horario, got %q", p.Agenda[0].Horario)
	}
}

func TestPropostaEvento_AddAlmoco(t *testing.T) {
	p := newProposta(t, 20)
	before := p.PrecoTotal

	if err := p.AddAlmoco(PrecoAlmocoPadrao); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.PrecoTotal-before != 500 {
		t.Fatalf("expected lunch to add 500, got %.2f", p.PrecoTotal-before)
	}
	last := p.Agenda[len(p.Agenda)-1]
	if last.Horario != HorarioAlmocoPadrao || last.DuracaoMinutos != 90 {
		t.Fatalf("unexpected lunch item: %+v", last)
	}
	if last.Local != "Lisboa" {
		t.Fatalf("expected lunch at the first activity's location, got %q", last.Local)
	}

	if err := p.AddAlmoco(30); !errors.Is(err, ErrItemDuplicado) {
		t.Fatalf("expected ErrItemDuplicado, got %v", err)
	}
}

func TestPropostaEvento_AddTransporteOnce(t *testing.T) {
	p := newProposta(t, 10)
	if err := p.AddTransporte(PrecoTransportePadrao); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.PrecoTotal != 250+350+150 {
		t.Fatalf("expected 750, got %.2f", p.PrecoTotal)
	}
	if err := p.AddTransporte(PrecoTransportePadrao); !errors.Is(err, ErrItemDuplicado) {
		t.Fatalf("expected ErrItemDuplicado, got %v", err)
	}
}

func TestPropostaEvento_RemoveItem(t *testing.T) {
	p := newProposta(t, 20)
	if err := p.AddAlmoco(PrecoAlmocoPadrao); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for len(p.Agenda) > 0 {
		before := p.PrecoTotal
		removed, err := p.RemoveItem(0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if before-p.PrecoTotal != removed.Preco {
			t.Fatalf("expected total to drop by %.2f, dropped %.2f", removed.Preco, before-p.PrecoTotal)
		}
	}

	if _, err := p.RemoveItem(0); !errors.Is(err, ErrItemInexistente) {
		t.Fatalf("expected ErrItemInexistente, got %v", err)
	}
}

func TestPropostaEvento_UpdateItem(t *testing.T) {
	p := newProposta(t, 20)
	preco := 450.0
	horario := "10:00 - 13:00"
	local := "Belém"

	if err := p.UpdateItem(0, AgendaItemPatch{Preco: &preco, Horario: &horario, Local: &local}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.PrecoTotal != 1150 {
		t.Fatalf("expected 1150, got %.2f", p.PrecoTotal)
	}
	if p.Agenda[0].Horario != horario || p.Agenda[0].Local != local {
		t.Fatalf("patch not applied: %+v", p.Agenda[0])
	}

	t.Run("bad horario", func(t *testing.T) {
		bad := "tarde"
		if err := p.UpdateItem(0, AgendaItemPatch{Horario: &bad}); err == nil {
			t.Fatalf("expected error for bad horario")
		}
	})

	t.Run("negative price", func(t *testing.T) {
		neg := -1.0
		if err := p.UpdateItem(0, AgendaItemPatch{Preco: &neg}); err == nil {
			t.Fatalf("expected error for negative price")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if err := p.UpdateItem(9, AgendaItemPatch{}); !errors.Is(err, ErrItemInexistente) {
			t.Fatalf("expected ErrItemInexistente, got %v", err)
		}
	})
}

func TestValidateGroupSplit(t *testing.T) {
	t.Run("sum matches", func(t *testing.T) {
		grupos := []Grupo{{ID: 1, Nome: "A", NPessoas: 12}, {ID: 2, Nome: "B", NPessoas: 8}}
		if err := ValidateGroupSplit(grupos, 20); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("sum exceeds", func(t *testing.T) {
		grupos := []Grupo{{ID: 1, Nome: "A", NPessoas: 12}, {ID: 2, Nome: "B", NPessoas: 9}}
		err := ValidateGroupSplit(grupos, 20)
		var splitErr *GroupSplitError
		if !errors.As(err, &splitErr) {
			t.Fatalf("expected GroupSplitError, got %v", err)
		}
		if splitErr.Ratio() != "21/20" {
			t.Fatalf("expected 21/20, got %s", splitErr.Ratio())
		}
		if err.Error() != "O total de pessoas (21) deve ser igual a 20" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("no groups", func(t *testing.T) {
		if err := ValidateGroupSplit(nil, 20); !errors.Is(err, ErrSemGrupos) {
			t.Fatalf("expected ErrSemGrupos, got %v", err)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		grupos := []Grupo{{ID: 1, Nome: "A", NPessoas: 20}, {ID: 2, Nome: "B", NPessoas: 0}}
		if err := ValidateGroupSplit(grupos, 20); err == nil {
			t.Fatalf("expected error for a group without people")
		}
	})

	t.Run("unnamed group", func(t *testing.T) {
		grupos := []Grupo{{ID: 1, Nome: " ", NPessoas: 20}}
		if err := ValidateGroupSplit(grupos, 20); !errors.Is(err, ErrGrupoSemNome) {
			t.Fatalf("expected ErrGrupoSemNome, got %v", err)
		}
	})
}
