package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/mhr996/school-dash-backend/internal/domain"
	"github.com/mhr996/school-dash-backend/internal/security"
)

type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyRole   contextKey = "role"
)

// AuthMiddleware validates the bearer token and injects user identity into
// the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractBearerToken(r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondError(w, http.StatusUnauthorized, "access token required")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyRole, domain.UserRole(claims.Role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:], true
	}
	return header, true
}

// UserIDFromContext returns the authenticated user's id.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKeyUserID).(int64)
	return id, ok
}

// RoleFromContext returns the authenticated user's role.
func RoleFromContext(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(contextKeyRole).(domain.UserRole)
	return role, ok
}

// RequireRole gates a handler behind a minimum role. Admin passes everything;
// employee passes employee-level routes; viewer only passes what is left
// open.
func RequireRole(minimum domain.UserRole, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !roleAllows(role, minimum) {
			respondError(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r)
	}
}

var roleRank = map[domain.UserRole]int{
	domain.UserRoleViewer:   1,
	domain.UserRoleEmployee: 2,
	domain.UserRoleAdmin:    3,
}

func roleAllows(have, need domain.UserRole) bool {
	return roleRank[have] >= roleRank[need]
}
