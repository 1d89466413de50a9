package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
	domainErrors "github.com/itlabs/orderflow/internal/domain/errors"
	"github.com/itlabs/orderflow/internal/domain/model"
	"github.com/itlabs/orderflow/internal/domain/repository"
	"github.com/itlabs/orderflow/internal/pkg/auth"
	"github.com/itlabs/orderflow/internal/pkg/ratelimit"
)

// PortalUseCase serves the client-facing portal: passwordless access links and
// read-only views of the client's own records.
type PortalUseCase struct {
	clients       repository.ClientRepository
	orders        repository.OrderRepository
	invoices      repository.InvoiceRepository
	proposals     repository.ProposalRepository
	tickets       repository.TicketRepository
	tokens        auth.Strategy
	limiter       *ratelimit.Limiter
	mail          MailSender
	portalBaseURL string
	rateLimit     int
	rateWindow    time.Duration
	logger        *slog.Logger
}

// NewPortalUseCase constructs PortalUseCase.
func NewPortalUseCase(
	clients repository.ClientRepository,
	orders repository.OrderRepository,
	invoices repository.InvoiceRepository,
	proposals repository.ProposalRepository,
	tickets repository.TicketRepository,
	tokens auth.Strategy,
	limiter *ratelimit.Limiter,
	mail MailSender,
	portalBaseURL string,
	rateLimit int,
	rateWindow time.Duration,
	logger *slog.Logger,
) *PortalUseCase {
	return &PortalUseCase{
		clients:       clients,
		orders:        orders,
		invoices:      invoices,
		proposals:     proposals,
		tickets:       tickets,
		tokens:        tokens,
		limiter:       limiter,
		mail:          mail,
		portalBaseURL: portalBaseURL,
		rateLimit:     rateLimit,
		rateWindow:    rateWindow,
		logger:        logger,
	}
}

// RequestAccess emails a time-limited portal link to the client with the given
// email. The response never reveals whether the email is known; an unknown
// email succeeds silently. Requests are rate limited per caller address.
func (u *PortalUseCase) RequestAccess(ctx context.Context, email, callerAddr string) error {
	if res := u.limiter.Check("portal-auth:"+callerAddr, u.rateLimit, u.rateWindow); !res.Allowed {
		return fmt.Errorf("%w: retry in %s", domainErrors.ErrRateLimited, res.RetryAfter.Round(time.Second))
	}

	client, err := u.clients.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := u.tokens.IssueToken(client.ID)
	if err != nil {
		return fmt.Errorf("issue portal token: %w", err)
	}

	err = u.mail.PortalAccess(ctx, client.Email, mailer.PortalAccessEmail{
		ClientName: client.Name,
		AccessURL:  fmt.Sprintf("%s/portal?token=%s", u.portalBaseURL, token),
	})
	if err != nil {
		u.logger.Error("portal access email failed",
			slog.Int64("client", client.ID),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// ParseToken returns the client id a portal token was issued for.
func (u *PortalUseCase) ParseToken(token string) (int64, error) {
	return u.tokens.ParseToken(token)
}

// Orders returns the client's orders.
func (u *PortalUseCase) Orders(ctx context.Context, clientID int64) ([]model.Order, error) {
	return u.orders.List(ctx, model.OrderFilter{ClientID: &clientID})
}

// Invoices returns the client's invoices.
func (u *PortalUseCase) Invoices(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	return u.invoices.ListByClient(ctx, clientID)
}

// Proposals returns the client's proposals.
func (u *PortalUseCase) Proposals(ctx context.Context, clientID int64) ([]model.Proposal, error) {
	return u.proposals.ListByClient(ctx, clientID)
}

// Tickets returns the client's tickets.
func (u *PortalUseCase) Tickets(ctx context.Context, clientID int64) ([]model.Ticket, error) {
	return u.tickets.ListByClient(ctx, clientID)
}
