package middleware

import (
	"net/http"

	"github.com/expensehub/expensehub-backend-go/internal/handler/http/response"
	"github.com/expensehub/expensehub-backend-go/internal/pkg/token"
)

// EmployeeAuth gates employee-only endpoints. It parses the shared-secret
// Authorization header and attaches the resulting identity to the request
// context; a request without a valid identity never reaches the handler.
func EmployeeAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			identity, err := token.Parse(r.Header.Get("Authorization"), secret)

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			// No header at all: anonymous caller
			if identity == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(token.NewContext(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
