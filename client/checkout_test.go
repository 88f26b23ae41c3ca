package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
)

// paymentRoutes settles the payment on the given confirm attempt.
func paymentRoutes(r *gin.Engine, settleOn int32, final models.PagamentoEstado, confirms *atomic.Int32) {
	intent := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pagamento_id": "pag-1", "status": "processing", "estado": "processando"})
	}
	r.POST("/pagamentos/cartao", intent)
	r.POST("/pagamentos/mbway", intent)
	r.POST("/pagamentos/:id/confirmar", func(c *gin.Context) {
		estado := models.PagamentoProcessando
		if confirms.Add(1) >= settleOn {
			estado = final
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "reserva_id": "res-1", "estado": estado})
	})
}

func TestClient_PayByCard(t *testing.T) {
	ctx := context.Background()

	t.Run("polls until the payment completes", func(t *testing.T) {
		var confirms atomic.Int32
		srv := newTestServer(t, func(r *gin.Engine) { paymentRoutes(r, 3, models.PagamentoConcluido, &confirms) })
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

		pagamento, err := c.PayByCard(ctx, models.PagamentoCartaoRequest{ReservaID: "res-1", NomeTitular: "Ana", NumeroCartao: "4242424242424242"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pagamento.Estado != models.PagamentoConcluido || confirms.Load() != 3 {
			t.Fatalf("expected concluido after 3 confirms, got %s after %d", pagamento.Estado, confirms.Load())
		}
	})

	t.Run("declined card", func(t *testing.T) {
		var confirms atomic.Int32
		srv := newTestServer(t, func(r *gin.Engine) { paymentRoutes(r, 1, models.PagamentoFalhado, &confirms) })
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

		pagamento, err := c.PayByMBWay(ctx, models.PagamentoMBWayRequest{ReservaID: "res-1", Telefone: "912345678"})
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("expected ErrPaymentFailed, got %v", err)
		}
		if pagamento == nil || pagamento.Estado != models.PagamentoFalhado {
			t.Fatalf("expected the failed payment, got %+v", pagamento)
		}
	})

	t.Run("cancelled before the first confirm", func(t *testing.T) {
		var confirms atomic.Int32
		srv := newTestServer(t, func(r *gin.Engine) { paymentRoutes(r, 1, models.PagamentoConcluido, &confirms) })
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)
		c.PollInterval = time.Hour

		cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		if _, err := c.PayByCard(cctx, models.PagamentoCartaoRequest{ReservaID: "res-1"}); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected the deadline error, got %v", err)
		}
		if confirms.Load() != 0 {
			t.Fatalf("expected no confirm after cancel, got %d", confirms.Load())
		}
	})

	t.Run("one payment per reservation at a time", func(t *testing.T) {
		c := loggedIn(t, "http://127.0.0.1:0", models.UserTipoEmpresa)
		if !c.begin("res-1") {
			t.Fatalf("expected the first payment to start")
		}
		defer c.end("res-1")

		if _, err := c.PayByCard(ctx, models.PagamentoCartaoRequest{ReservaID: "res-1"}); !errors.Is(err, ErrPaymentInFlight) {
			t.Fatalf("expected ErrPaymentInFlight, got %v", err)
		}
	})
}

func TestClient_CheckoutEvento(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.POST("/eventos/propostas/:id/confirmar", func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				t.Errorf("expected a guest request")
			}
			c.JSON(http.StatusOK, gin.H{"reservas_criadas": []string{"res-7", "res-8"}, "total_reservas": 2, "mensagem": "2 reserva(s) criada(s) com sucesso"})
		})
	})

	anonymous, _ := NewSession(nil)
	c := New(srv.URL, anonymous)
	email, nome := "guest@acme.pt", "Acme"
	target, err := c.CheckoutEvento(context.Background(), models.ConfirmarEventoRequest{
		Proposta:    models.PropostaEvento{ID: "prop_1", Titulo: "Aventura & Outdoor", NPessoas: 20},
		Email:       &email,
		NomeEmpresa: &nome,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if target.Path != "/checkout/res-7" {
		t.Fatalf("unexpected target %+v", target)
	}
}
