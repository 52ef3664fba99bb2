package auth

import (
	"context"

	"github.com/govops-lab/ministrydesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Identity is the caller context received from the external auth provider on
// every operation: who is acting, with which role, in which department. The
// core never manages credentials or sessions.
type Identity struct {
	Sub          types.UserID
	Role         types.Role
	DepartmentID types.DepartmentID
	Email        string
	Name         string
}

// Validate checks the identity carries the minimum fields the core needs
func (i *Identity) Validate() error {
	if err := i.Sub.Validate(); err != nil {
		return goerr.Wrap(err, "identity subject is invalid")
	}
	if !i.Role.IsValid() {
		return goerr.New("identity role is invalid", goerr.V("role", i.Role))
	}
	return nil
}

// NewAnonymousIdentity returns the fixed identity used in no-auth development
// mode. It carries admin privileges.
func NewAnonymousIdentity(uid types.UserID) *Identity {
	if uid == "" {
		uid = "anonymous"
	}
	return &Identity{
		Sub:  uid,
		Role: types.RoleAdmin,
		Name: "Anonymous",
	}
}

type ctxKey struct{}

// ContextWithIdentity returns a context carrying the identity
func ContextWithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, ident)
}

// IdentityFromContext extracts the identity from the context
func IdentityFromContext(ctx context.Context) (*Identity, error) {
	ident, ok := ctx.Value(ctxKey{}).(*Identity)
	if !ok || ident == nil {
		return nil, goerr.New("no identity in context")
	}
	return ident, nil
}
