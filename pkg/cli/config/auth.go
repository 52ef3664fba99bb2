package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
)

// Auth holds CLI flags for token verification configuration
type Auth struct {
	jwtSecret string
	jwksURL   string
	issuer    string
	audience  string
	noAuthUID string
}

// Flags returns CLI flags for authentication configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Shared secret for HS256 token verification",
			Category:    "Authentication",
			Sources:     cli.EnvVars("MINISTRYDESK_JWT_SECRET"),
			Destination: &a.jwtSecret,
		},
		&cli.StringFlag{
			Name:        "jwks-url",
			Usage:       "JWKS endpoint of the identity provider",
			Category:    "Authentication",
			Sources:     cli.EnvVars("MINISTRYDESK_JWKS_URL"),
			Destination: &a.jwksURL,
		},
		&cli.StringFlag{
			Name:        "jwt-issuer",
			Usage:       "Required iss claim value",
			Category:    "Authentication",
			Sources:     cli.EnvVars("MINISTRYDESK_JWT_ISSUER"),
			Destination: &a.issuer,
		},
		&cli.StringFlag{
			Name:        "jwt-audience",
			Usage:       "Required aud claim value",
			Category:    "Authentication",
			Sources:     cli.EnvVars("MINISTRYDESK_JWT_AUDIENCE"),
			Destination: &a.audience,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run as the specified user ID (development only). Example: --no-auth=user-admin",
			Category:    "Authentication",
			Sources:     cli.EnvVars("MINISTRYDESK_NO_AUTH"),
			Destination: &a.noAuthUID,
		},
	}
}

// IsNoAuthMode reports whether the no-auth development mode is requested
func (a *Auth) IsNoAuthMode() bool {
	return a.noAuthUID != ""
}

// NoAuthUID returns the configured no-auth user ID
func (a *Auth) NoAuthUID() string {
	return a.noAuthUID
}

// Configure builds the token verifier from the flags
func (a *Auth) Configure(ctx context.Context, repo interfaces.Repository) (usecase.AuthUseCaseInterface, error) {
	if a.noAuthUID != "" {
		return usecase.NewNoAuthnUseCase(repo, types.UserID(a.noAuthUID)), nil
	}

	if a.jwtSecret == "" && a.jwksURL == "" {
		return nil, goerr.New("either jwt-secret or jwks-url is required (or use --no-auth for development)")
	}
	if a.jwtSecret != "" && a.jwksURL != "" {
		return nil, goerr.New("jwt-secret and jwks-url are mutually exclusive")
	}

	var opts []usecase.AuthOption
	if a.jwtSecret != "" {
		opts = append(opts, usecase.WithJWTSecret([]byte(a.jwtSecret)))
	}
	if a.jwksURL != "" {
		opts = append(opts, usecase.WithJWKSURL(a.jwksURL))
	}
	if a.issuer != "" {
		opts = append(opts, usecase.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, usecase.WithAudience(a.audience))
	}

	return usecase.NewAuthUseCase(repo, opts...), nil
}
