package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffly-hq/attendance-backend-go/internal/domain/auth"
	"github.com/staffly-hq/attendance-backend-go/internal/handler/http/response"
)

// RequireAdminOrHR gates the employee administration and payroll routes.
func RequireAdminOrHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrAdminOrHRRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrAdminOrHRRequired)
			return
		}

		if !auth.CanManagePayroll(auth.Role(roleStr)) {
			response.HandleError(w, auth.ErrAdminOrHRRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManagement admits admin, HR and managers to the read-only report
// and dashboard screens.
func RequireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrManagementRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrManagementRequired)
			return
		}

		if !auth.CanViewReports(auth.Role(roleStr)) {
			response.HandleError(w, auth.ErrManagementRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
