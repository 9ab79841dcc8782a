package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"remindr/internal/core"

	"go.uber.org/zap"
)

// AuthHeader is the custom header carrying the session token, with no
// scheme prefix.
const AuthHeader = "X-Authorization"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenAuthorizer . TokenAuthorizer
type TokenAuthorizer interface {
	Authorize(ctx context.Context, token string) (core.Account, error)
}

// AuthMiddleware rejects requests that do not carry a currently active
// session token. It runs before every reminder operation, login is the
// only unguarded endpoint.
type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	authorizer TokenAuthorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authorizer TokenAuthorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs:       logger,
		authorizer: authorizer,
	}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := ""
		if reqIdCtx := r.Context().Value(RequestIDKey); reqIdCtx != nil {
			requestId = reqIdCtx.(string)
		}

		token := r.Header.Get(AuthHeader)
		if token == "" {
			m.reject(w, "token not provided")
			m.logs.Errorw("missing auth header",
				"header", AuthHeader,
				"request_id", requestId)
			return
		}

		account, err := m.authorizer.Authorize(r.Context(), token)
		if err != nil {
			m.reject(w, "invalid token")
			m.logs.Errorw("token rejected",
				"error", err,
				"request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		m.logs.Errorw("failed to encode rejection", "error", err)
	}
}
