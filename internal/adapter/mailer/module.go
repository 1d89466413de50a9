package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/itlabs/orderflow/internal/config"
)

// Module exposes the mail client and service to the fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(newService),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.MailerAddress == "" {
		return NewNopClient(p.Logger), nil
	}
	return NewHTTPClient(p.Config.MailerAddress, p.Config.MailerAPIKey, p.Logger)
}

type serviceParams struct {
	fx.In

	Client Client
	Config *config.Config
}

func newService(p serviceParams) (*Service, error) {
	return NewService(p.Client, p.Config.MailFrom)
}
