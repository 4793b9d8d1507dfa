package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/employee"
	"github.com/workline-ph/erp-backend-go/internal/handler/http/response"
)

// roleFromClaims pulls the numeric role out of the verified token. jwx
// decodes JSON numbers as float64.
func roleFromClaims(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}

	raw, ok := claims["role"].(float64)
	if !ok {
		return 0, false
	}

	role := employee.Role(int(raw))
	return role, role.Valid()
}

// RequireSuperAdmin restricts a route to Super Admins.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != employee.RoleSuperAdmin {
			response.Forbidden(w, "Super Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireHR restricts a route to HR Managers and Super Admins.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || (role != employee.RoleHRManager && role != employee.RoleSuperAdmin) {
			response.Forbidden(w, "HR access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
