package usecase

import (
	"context"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/govops-lab/ministrydesk/pkg/domain/interfaces"
	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/domain/types"
)

// AuthUseCaseInterface resolves a bearer token into a caller identity
type AuthUseCaseInterface interface {
	VerifyToken(ctx context.Context, token string) (*auth.Identity, error)
	IsNoAuthn() bool
}

// AuthUseCase verifies JWTs issued by the external identity provider. The
// token only proves who the caller is; role and department come from the
// stored user profile so that a stale token cannot carry stale privileges.
type AuthUseCase struct {
	repo     interfaces.Repository
	secret   []byte
	jwksURL  string
	issuer   string
	audience string
}

var _ AuthUseCaseInterface = &AuthUseCase{}

// AuthOption is a functional option for AuthUseCase
type AuthOption func(*AuthUseCase)

// WithJWTSecret enables HS256 verification with a shared secret
func WithJWTSecret(secret []byte) AuthOption {
	return func(uc *AuthUseCase) {
		uc.secret = secret
	}
}

// WithJWKSURL enables verification against the provider's published key set
func WithJWKSURL(url string) AuthOption {
	return func(uc *AuthUseCase) {
		uc.jwksURL = url
	}
}

// WithIssuer requires the token's iss claim to match
func WithIssuer(issuer string) AuthOption {
	return func(uc *AuthUseCase) {
		uc.issuer = issuer
	}
}

// WithAudience requires the token's aud claim to contain the value
func WithAudience(audience string) AuthOption {
	return func(uc *AuthUseCase) {
		uc.audience = audience
	}
}

func NewAuthUseCase(repo interfaces.Repository, options ...AuthOption) *AuthUseCase {
	uc := &AuthUseCase{
		repo: repo,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// IsNoAuthn returns false for regular AuthUseCase
func (uc *AuthUseCase) IsNoAuthn() bool {
	return false
}

// VerifyToken parses and verifies the JWT, then resolves the caller's
// profile. Inactive users are rejected.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, raw string) (*auth.Identity, error) {
	token, err := uc.parseToken(ctx, raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify token")
	}

	sub := token.Subject()
	if sub == "" {
		return nil, goerr.New("sub claim not found in token")
	}

	user, err := uc.repo.User().Get(ctx, types.UserID(sub))
	if err != nil {
		return nil, goerr.Wrap(ErrUserNotFound, "no profile for token subject", goerr.V("sub", sub))
	}
	if !user.IsActive {
		return nil, goerr.Wrap(ErrForbidden, "user is deactivated", goerr.V(UserIDKey, user.ID))
	}

	ident := &auth.Identity{
		Sub:          user.ID,
		Role:         user.Role,
		DepartmentID: user.DepartmentID,
		Email:        user.Email,
		Name:         user.FullName,
	}
	if err := ident.Validate(); err != nil {
		return nil, err
	}

	return ident, nil
}

func (uc *AuthUseCase) parseToken(ctx context.Context, raw string) (jwt.Token, error) {
	// Allow 10 seconds of clock skew to handle time synchronization differences
	opts := []jwt.ParseOption{
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(10 * time.Second),
	}
	if uc.issuer != "" {
		opts = append(opts, jwt.WithIssuer(uc.issuer))
	}
	if uc.audience != "" {
		opts = append(opts, jwt.WithAudience(uc.audience))
	}

	switch {
	case uc.jwksURL != "":
		keySet, err := jwk.Fetch(ctx, uc.jwksURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch provider's public keys", goerr.V("jwks_url", uc.jwksURL))
		}
		opts = append(opts, jwt.WithKeySet(keySet))

	case len(uc.secret) > 0:
		opts = append(opts, jwt.WithKey(jwa.HS256, uc.secret))

	default:
		return nil, goerr.New("no token verification key configured")
	}

	token, err := jwt.Parse([]byte(raw), opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse or verify JWT token")
	}

	return token, nil
}
