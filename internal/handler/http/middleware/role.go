package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
)

const roleAdmin = "admin"

// AdminOnly gates payroll and statutory-report routes to admin users.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Failed to extract claims from context")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != roleAdmin {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
