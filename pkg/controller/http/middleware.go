package http

import (
	"net/http"
	"strings"

	"github.com/govops-lab/ministrydesk/pkg/domain/model/auth"
	"github.com/govops-lab/ministrydesk/pkg/usecase"
)

// authMiddleware resolves the bearer token into a caller identity and puts
// it on the request context. Requests without a valid identity get 401.
func authMiddleware(authUC usecase.AuthUseCaseInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authUC == nil {
				http.Error(w, "Authentication not configured", http.StatusUnauthorized)
				return
			}

			var raw string
			if !authUC.IsNoAuthn() {
				header := r.Header.Get("Authorization")
				if !strings.HasPrefix(header, "Bearer ") {
					http.Error(w, "Authentication required", http.StatusUnauthorized)
					return
				}
				raw = strings.TrimPrefix(header, "Bearer ")
			}

			ident, err := authUC.VerifyToken(r.Context(), raw)
			if err != nil {
				http.Error(w, "Invalid authentication token", http.StatusUnauthorized)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
