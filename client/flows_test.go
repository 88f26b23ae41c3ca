package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"teamsync-api/models"
)

func rfqRoutes(r *gin.Engine, reservaID *string) {
	r.GET("/rfq/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "empresa_id": "emp-1", "n_pessoas": 20, "estado": "fechado"})
	})
	r.GET("/propostas/rfq/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{
			{"id": "p-1", "rfq_id": c.Param("id"), "preco_total": 500, "melhor_preco": true, "reserva_id": reservaID},
			{"id": "p-2", "rfq_id": c.Param("id"), "preco_total": 700, "melhor_preco": false},
		})
	})
}

func TestClient_LoadRFQComparison(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) { rfqRoutes(r, nil) })
	c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

	cmp, err := c.LoadRFQComparison(context.Background(), "rfq-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cmp.RFQ.ID != "rfq-1" || len(cmp.Propostas) != 2 {
		t.Fatalf("unexpected comparison %+v", cmp)
	}
	if best := cmp.Melhor(); best == nil || best.ID != "p-1" {
		t.Fatalf("expected p-1 as the best price, got %+v", best)
	}
}

func TestClient_AcceptAndCheckout(t *testing.T) {
	accept := func(r *gin.Engine) {
		r.POST("/propostas/:id/aceitar", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Proposta aceite", "data": gin.H{"id": c.Param("id"), "estado": "aceite"}})
		})
	}

	t.Run("lands on checkout", func(t *testing.T) {
		reservaID := "res-9"
		srv := newTestServer(t, func(r *gin.Engine) {
			accept(r)
			rfqRoutes(r, &reservaID)
		})
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

		target, err := c.AcceptAndCheckout(context.Background(), "p-1", "rfq-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if target.Fallback || target.Path != "/checkout/res-9" || target.ReservaID != "res-9" {
			t.Fatalf("unexpected target %+v", target)
		}
	})

	t.Run("falls back when the reservation is unknown", func(t *testing.T) {
		srv := newTestServer(t, func(r *gin.Engine) {
			accept(r)
			rfqRoutes(r, nil)
		})
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

		target, err := c.AcceptAndCheckout(context.Background(), "p-1", "rfq-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !target.Fallback || target.Path != ReservasPath {
			t.Fatalf("expected the reservations list, got %+v", target)
		}
	})

	t.Run("falls back when the reload fails", func(t *testing.T) {
		srv := newTestServer(t, func(r *gin.Engine) {
			accept(r)
			r.GET("/rfq/:id", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"}) })
			r.GET("/propostas/rfq/:id", func(c *gin.Context) { c.JSON(http.StatusOK, []gin.H{}) })
		})
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

		target, err := c.AcceptAndCheckout(context.Background(), "p-1", "rfq-1")
		if err != nil || !target.Fallback {
			t.Fatalf("expected a fallback, got %+v, %v", target, err)
		}
	})

	t.Run("a refused accept is an error", func(t *testing.T) {
		srv := newTestServer(t, func(r *gin.Engine) {
			r.POST("/propostas/:id/aceitar", func(c *gin.Context) {
				c.JSON(http.StatusConflict, gin.H{"detail": "Proposta já não está pendente"})
			})
		})
		c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

		if _, err := c.AcceptAndCheckout(context.Background(), "p-1", "rfq-1"); !IsStatus(err, http.StatusConflict) {
			t.Fatalf("expected 409, got %v", err)
		}
	})
}

func TestClient_LoadCheckout(t *testing.T) {
	srv := newTestServer(t, func(r *gin.Engine) {
		r.GET("/reservas/detalhe/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "preco_total": 500, "estado": "pendente"})
		})
		r.GET("/pagamentos/reserva/:id", func(c *gin.Context) {
			if c.Param("id") == "res-paid" {
				c.JSON(http.StatusOK, gin.H{"id": "pag-1", "reserva_id": "res-paid", "estado": "concluido"})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"detail": "Pagamento not found"})
		})
	})
	c := loggedIn(t, srv.URL, models.UserTipoEmpresa)

	data, err := c.LoadCheckout(context.Background(), "res-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data.Reserva.ID != "res-1" || data.Pagamento != nil {
		t.Fatalf("expected a reservation without payment, got %+v", data)
	}

	data, err = c.LoadCheckout(context.Background(), "res-paid")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data.Pagamento == nil || data.Pagamento.Estado != models.PagamentoConcluido {
		t.Fatalf("expected the payment, got %+v", data.Pagamento)
	}
}
