// File: /client/checkout.go
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"teamsync-api/models"
)

var (
	ErrPaymentInFlight = errors.New("client: a payment for this reservation is already in progress")
	ErrPaymentFailed   = errors.New("client: payment was not completed")
)

type paymentIntent struct {
	PagamentoID string                 `json:"pagamento_id"`
	Status      string                 `json:"status"`
	Estado      models.PagamentoEstado `json:"estado"`
}

// PayByCard opens a card payment and waits until the gateway settles it.
func (c *Client) PayByCard(ctx context.Context, req models.PagamentoCartaoRequest) (*models.Pagamento, error) {
	return c.pay(ctx, req.ReservaID, "/pagamentos/cartao", req)
}

// PayByMBWay sends an MB Way request and waits for the customer to approve it.
func (c *Client) PayByMBWay(ctx context.Context, req models.PagamentoMBWayRequest) (*models.Pagamento, error) {
	return c.pay(ctx, req.ReservaID, "/pagamentos/mbway", req)
}

func (c *Client) pay(ctx context.Context, reservaID, path string, body interface{}) (*models.Pagamento, error) {
	if err := c.Session.Require(models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	if !c.begin(reservaID) {
		return nil, ErrPaymentInFlight
	}
	defer c.end(reservaID)

	var intent paymentIntent
	if err := c.Do(ctx, http.MethodPost, path, body, &intent); err != nil {
		return nil, err
	}
	if intent.PagamentoID == "" {
		return nil, errors.New("client: payment intent without id")
	}
	return c.awaitPayment(ctx, intent.PagamentoID)
}

// awaitPayment asks the server to confirm until the payment is terminal.
// Cancelling ctx stops the loop before the next confirm is sent.
func (c *Client) awaitPayment(ctx context.Context, pagamentoID string) (*models.Pagamento, error) {
	path := "/pagamentos/" + url.PathEscape(pagamentoID) + "/confirmar"
	for {
		if err := wait(ctx, c.pollInterval()); err != nil {
			return nil, err
		}

		var pagamento models.Pagamento
		if err := c.Do(ctx, http.MethodPost, path, nil, &pagamento); err != nil {
			return nil, err
		}
		if !pagamento.Estado.Terminal() {
			continue
		}
		if pagamento.Estado != models.PagamentoConcluido {
			return &pagamento, fmt.Errorf("%w: %s", ErrPaymentFailed, pagamento.Estado)
		}
		return &pagamento, nil
	}
}

func (c *Client) pollInterval() time.Duration {
	if c.PollInterval > 0 {
		return c.PollInterval
	}
	return defaultPollInterval
}

func (c *Client) begin(reservaID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight == nil {
		c.inflight = make(map[string]struct{})
	}
	if _, busy := c.inflight[reservaID]; busy {
		return false
	}
	c.inflight[reservaID] = struct{}{}
	return true
}

func (c *Client) end(reservaID string) {
	c.mu.Lock()
	delete(c.inflight, reservaID)
	c.mu.Unlock()
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type eventoConfirmado struct {
	ReservasCriadas []string `json:"reservas_criadas"`
	TotalReservas   int      `json:"total_reservas"`
	Mensagem        string   `json:"mensagem"`
}

// ConfirmEvento turns a generated event proposal into reservations and
// returns their ids. Without a session the server creates a guest account
// from req.Email and req.NomeEmpresa.
func (c *Client) ConfirmEvento(ctx context.Context, req models.ConfirmarEventoRequest) ([]string, error) {
	var resp eventoConfirmado
	path := "/eventos/propostas/" + url.PathEscape(req.Proposta.ID) + "/confirmar"
	if err := c.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.ReservasCriadas) == 0 {
		return nil, errors.New("client: event confirmed without reservations")
	}
	return resp.ReservasCriadas, nil
}

// CheckoutEvento confirms the event and points at the checkout of its first
// reservation.
func (c *Client) CheckoutEvento(ctx context.Context, req models.ConfirmarEventoRequest) (CheckoutTarget, error) {
	ids, err := c.ConfirmEvento(ctx, req)
	if err != nil {
		return CheckoutTarget{}, err
	}
	return checkoutTarget(ids[0]), nil
}
