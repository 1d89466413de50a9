package auth

import (
	"go.uber.org/fx"

	"github.com/itlabs/orderflow/internal/config"
)

// TokenStrategies bundles the two token families the service issues.
type TokenStrategies struct {
	Staff  Strategy
	Portal Strategy
}

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategies),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategiesParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategies(p strategiesParams) *TokenStrategies {
	return &TokenStrategies{
		Staff:  NewHMACStrategy(p.Config.TokenSecret, Options{Audience: AudienceStaff}),
		Portal: NewHMACStrategy(p.Config.TokenSecret, Options{Audience: AudiencePortal, TTL: p.Config.PortalTokenTTL}),
	}
}
