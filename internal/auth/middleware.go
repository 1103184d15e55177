package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	UsuarioIDKey ctxKey = "usuarioID"
	PerfilKey    ctxKey = "perfil"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UsuarioID)
		ctx = context.WithValue(ctx, PerfilKey, claims.Perfil)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PerfilDoContexto devolve o perfil colocado no contexto pelo middleware.
func PerfilDoContexto(ctx context.Context) string {
	p, _ := ctx.Value(PerfilKey).(string)
	return p
}

// UsuarioIDDoContexto devolve o ID do usuário autenticado.
func UsuarioIDDoContexto(ctx context.Context) uint {
	id, _ := ctx.Value(UsuarioIDKey).(uint)
	return id
}

// RequirePerfil é o ponto único de autorização: a checagem de capacidade
// acontece na borda da requisição, nunca dentro dos handlers.
func RequirePerfil(perfis ...string) func(http.Handler) http.Handler {
	permitidos := make(map[string]bool, len(perfis))
	for _, p := range perfis {
		permitidos[p] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !permitidos[PerfilDoContexto(r.Context())] {
				http.Error(w, "Acesso negado para este perfil", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin restringe a rota ao perfil ADMIN.
func RequireAdmin(next http.Handler) http.Handler {
	return RequirePerfil(PerfilAdmin)(next)
}
