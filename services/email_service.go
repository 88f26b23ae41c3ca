// File: /services/email_service.go
package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"gopkg.in/gomail.v2"

	"teamsync-api/config"
	"teamsync-api/models"
	"teamsync-api/utils"
)

// EmailService delivers the marketplace notifications. Without an SMTP host
// the messages are only logged.
type EmailService struct {
	config *config.Config
	send   func(m *gomail.Message) error
	logger *slog.Logger
}

func NewEmailService(cfg *config.Config, logger *slog.Logger) *EmailService {
	es := &EmailService{config: cfg, logger: logger}
	if cfg.EmailEnabled() {
		dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		es.send = func(m *gomail.Message) error { return dialer.DialAndSend(m) }
	} else {
		es.send = es.logOnly
	}
	return es
}

type emailContent struct {
	to       string
	subject  string
	heading  string
	intro    string
	details  [][2]string
	link     string
	linkText string
	outro    string
}

func (es *EmailService) RFQCreated(ctx context.Context, to string, rfq *models.RFQ) error {
	return es.deliver(ctx, emailContent{
		to:      to,
		subject: fmt.Sprintf("RFQ #%s criado com sucesso", shortID(rfq.ID)),
		heading: "RFQ Criado com Sucesso!",
		intro:   fmt.Sprintf("O seu pedido de proposta (RFQ #%s) foi criado e os fornecedores serão notificados.", shortID(rfq.ID)),
		details: [][2]string{
			{"Pessoas", fmt.Sprintf("%d", rfq.NPessoas)},
			{"Data", rfq.DataPreferida.Format(utils.DateLayout)},
			{"Localização", rfq.Localizacao},
			{"Orçamento", euros(rfq.OrcamentoMax)},
		},
		link:     es.frontendURL("/rfq/" + rfq.ID),
		linkText: "Ver RFQ",
		outro:    "Receberá notificações quando os fornecedores enviarem propostas.",
	})
}

func (es *EmailService) PropostaReceived(ctx context.Context, to string, rfq *models.RFQ, proposta *models.Proposta) error {
	fornecedor := "Um fornecedor"
	if proposta.Fornecedor != nil {
		fornecedor = proposta.Fornecedor.Nome
	}
	return es.deliver(ctx, emailContent{
		to:      to,
		subject: fmt.Sprintf("Nova proposta para o RFQ #%s", shortID(rfq.ID)),
		heading: "Recebeu uma nova proposta!",
		intro:   fmt.Sprintf("%s respondeu ao seu pedido de proposta.", fornecedor),
		details: [][2]string{
			{"Preço total", euros(proposta.PrecoTotal)},
			{"Preço por pessoa", euros(proposta.PrecoPorPessoa)},
		},
		link:     es.frontendURL("/rfq/" + rfq.ID),
		linkText: "Comparar propostas",
	})
}

func (es *EmailService) PropostaAccepted(ctx context.Context, to string, proposta *models.Proposta, reservaID string) error {
	return es.deliver(ctx, emailContent{
		to:      to,
		subject: "A sua proposta foi aceite",
		heading: "Proposta aceite!",
		intro:   "A empresa aceitou a sua proposta. A reserva foi criada e aguarda pagamento.",
		details: [][2]string{
			{"Preço total", euros(proposta.PrecoTotal)},
			{"Reserva", shortID(reservaID)},
		},
		link:     es.frontendURL("/evento/" + reservaID),
		linkText: "Ver evento",
	})
}

func (es *EmailService) ReservaConfirmed(ctx context.Context, to string, reserva *models.Reserva) error {
	atividade := "Evento"
	if reserva.Atividade != nil {
		atividade = reserva.Atividade.Nome
	}
	return es.deliver(ctx, emailContent{
		to:      to,
		subject: "Reserva confirmada",
		heading: "A sua reserva está confirmada!",
		intro:   fmt.Sprintf("A reserva de %s foi confirmada.", atividade),
		details: [][2]string{
			{"Data", reserva.Data.Format(utils.DateLayout)},
			{"Pessoas", fmt.Sprintf("%d", reserva.NPessoas)},
			{"Total", euros(reserva.PrecoTotal)},
		},
		link:     es.frontendURL("/evento/" + reserva.ID),
		linkText: "Ver evento",
	})
}

func (es *EmailService) PaymentCompleted(ctx context.Context, to string, pagamento *models.Pagamento) error {
	return es.deliver(ctx, emailContent{
		to:      to,
		subject: "Pagamento recebido",
		heading: "Pagamento concluído",
		intro:   "Recebemos o seu pagamento. Obrigado!",
		details: [][2]string{
			{"Valor", euros(pagamento.Valor)},
			{"Método", string(pagamento.Metodo)},
		},
		link:     es.frontendURL("/evento/" + pagamento.ReservaID),
		linkText: "Ver evento",
	})
}

func (es *EmailService) MensagemReceived(ctx context.Context, to string, mensagem *models.Mensagem) error {
	preview := mensagem.Conteudo
	if len([]rune(preview)) > 140 {
		preview = string([]rune(preview)[:140]) + "…"
	}
	return es.deliver(ctx, emailContent{
		to:       to,
		subject:  "Nova mensagem sobre o seu evento",
		heading:  "Tem uma nova mensagem",
		intro:    preview,
		link:     es.frontendURL("/evento/" + mensagem.ReservaID),
		linkText: "Responder",
	})
}

func (es *EmailService) deliver(ctx context.Context, c emailContent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", c.to)
	m.SetHeader("Subject", c.subject)
	m.SetBody("text/plain", renderText(c))
	m.AddAlternative("text/html", renderHTML(c))

	if err := es.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (es *EmailService) logOnly(m *gomail.Message) error {
	es.logger.Info("email disabled, message not sent",
		"to", strings.Join(m.GetHeader("To"), ","),
		"subject", strings.Join(m.GetHeader("Subject"), ""),
	)
	return nil
}

func (es *EmailService) frontendURL(path string) string {
	return strings.TrimRight(es.config.FrontendURL, "/") + path
}

func renderText(c emailContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TeamSync - %s\n\n%s\n", c.heading, c.intro)
	if len(c.details) > 0 {
		b.WriteString("\nDetalhes:\n")
		for _, d := range c.details {
			fmt.Fprintf(&b, "- %s: %s\n", d[0], d[1])
		}
	}
	if c.outro != "" {
		fmt.Fprintf(&b, "\n%s\n", c.outro)
	}
	if c.link != "" {
		fmt.Fprintf(&b, "\n%s: %s\n", c.linkText, c.link)
	}
	return b.String()
}

func renderHTML(c emailContent) string {
	var details strings.Builder
	for _, d := range c.details {
		fmt.Fprintf(&details, "<li><strong>%s:</strong> %s</li>", html.EscapeString(d[0]), html.EscapeString(d[1]))
	}
	var button string
	if c.link != "" {
		button = fmt.Sprintf(`<a href="%s" class="button">%s</a>`, html.EscapeString(c.link), html.EscapeString(c.linkText))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1F4FFF; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 20px; border-radius: 0 0 8px 8px; }
        .button { display: inline-block; background: #1F4FFF; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>TeamSync</h1></div>
        <div class="content">
            <h2>%s</h2>
            <p>%s</p>
            <ul>%s</ul>
            <p>%s</p>
            %s
        </div>
    </div>
</body>
</html>`,
		html.EscapeString(c.heading),
		html.EscapeString(c.intro),
		details.String(),
		html.EscapeString(c.outro),
		button,
	)
}

func euros(v float64) string {
	return fmt.Sprintf("€%.2f", v)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
