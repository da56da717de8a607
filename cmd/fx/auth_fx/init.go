package auth_fx

import (
	"time"

	"go.uber.org/fx"

	"vivuconnect/internal/config"
	"vivuconnect/pkg/utils"
)

// Tokens are minted by the identity service; this TTL only matters for
// tokens issued locally by tooling.
const tokenTTL = 24 * time.Hour

var Module = fx.Provide(provideTokenIssuer)

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, tokenTTL)
}
