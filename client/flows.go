// File: /client/flows.go
package client

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"teamsync-api/models"
)

// ReservasPath is where a flow lands when it cannot reach checkout.
const ReservasPath = "/reservas"

// CheckoutTarget is the page a flow ends on.
type CheckoutTarget struct {
	Path      string
	ReservaID string
	// Fallback is set when the flow degraded to the reservations list.
	Fallback bool
}

func checkoutTarget(reservaID string) CheckoutTarget {
	return CheckoutTarget{Path: "/checkout/" + reservaID, ReservaID: reservaID}
}

func fallbackTarget() CheckoutTarget {
	return CheckoutTarget{Path: ReservasPath, Fallback: true}
}

type RFQComparison struct {
	RFQ       models.RFQ
	Propostas []models.PropostaComparada
}

// Melhor returns the proposal flagged as the best price, if any.
func (c *RFQComparison) Melhor() *models.PropostaComparada {
	for i := range c.Propostas {
		if c.Propostas[i].MelhorPreco {
			return &c.Propostas[i]
		}
	}
	return nil
}

// LoadRFQComparison fetches an RFQ and its ranked proposals in parallel.
func (c *Client) LoadRFQComparison(ctx context.Context, rfqID string) (*RFQComparison, error) {
	if err := c.Session.Require(models.UserTipoEmpresa); err != nil {
		return nil, err
	}

	var cmp RFQComparison
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Do(gctx, http.MethodGet, "/rfq/"+url.PathEscape(rfqID), nil, &cmp.RFQ)
	})
	g.Go(func() error {
		return c.Do(gctx, http.MethodGet, "/propostas/rfq/"+url.PathEscape(rfqID), nil, &cmp.Propostas)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cmp, nil
}

type CheckoutData struct {
	Reserva models.Reserva
	// Pagamento is nil until a payment has been opened.
	Pagamento *models.Pagamento
}

// LoadCheckout fetches a reservation and its payment in parallel.
func (c *Client) LoadCheckout(ctx context.Context, reservaID string) (*CheckoutData, error) {
	if err := c.Session.Require(); err != nil {
		return nil, err
	}

	var data CheckoutData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.Do(gctx, http.MethodGet, "/reservas/detalhe/"+url.PathEscape(reservaID), nil, &data.Reserva)
	})
	g.Go(func() error {
		var pagamento models.Pagamento
		err := c.Do(gctx, http.MethodGet, "/pagamentos/reserva/"+url.PathEscape(reservaID), nil, &pagamento)
		if IsStatus(err, http.StatusNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		data.Pagamento = &pagamento
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *Client) AcceptProposta(ctx context.Context, propostaID string) (*models.PropostaComparada, error) {
	if err := c.Session.Require(models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	var resp struct {
		Message string                   `json:"message"`
		Data    models.PropostaComparada `json:"data"`
	}
	if err := c.Do(ctx, http.MethodPost, "/propostas/"+url.PathEscape(propostaID)+"/aceitar", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) RejectProposta(ctx context.Context, propostaID string) error {
	if err := c.Session.Require(models.UserTipoEmpresa); err != nil {
		return err
	}
	return c.Do(ctx, http.MethodPost, "/propostas/"+url.PathEscape(propostaID)+"/recusar", nil, nil)
}

// AcceptAndCheckout accepts a proposal and points at the checkout of the
// reservation it produced. Only a failed accept is an error; anything that
// goes wrong afterwards lands on the reservations list.
func (c *Client) AcceptAndCheckout(ctx context.Context, propostaID, rfqID string) (CheckoutTarget, error) {
	if _, err := c.AcceptProposta(ctx, propostaID); err != nil {
		return CheckoutTarget{}, err
	}

	cmp, err := c.LoadRFQComparison(ctx, rfqID)
	if err != nil {
		return fallbackTarget(), nil
	}
	for _, p := range cmp.Propostas {
		if p.ID == propostaID && p.ReservaID != nil && *p.ReservaID != "" {
			return checkoutTarget(*p.ReservaID), nil
		}
	}
	return fallbackTarget(), nil
}
