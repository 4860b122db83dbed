package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SAC-BookingService/internal/api/handlers"
)

// Заголовки, которыми сессионный сервис портала передает личность пользователя
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
	HeaderUserRole  = "X-User-Role"
)

// Роли пользователей портала
const (
	RoleRequester = "requester"
	RoleReviewer  = "reviewer"
)

const (
	msgMissingIdentity = "отсутствует заголовок X-User-Email"
	msgReviewerOnly    = "операция доступна только ревьюерам"
)

// Actor аутентифицированный пользователь портала
type Actor struct {
	Email string
	Name  *string
	Role  string
}

// IsReviewer сообщает, имеет ли пользователь права ревьюера
func (a Actor) IsReviewer() bool {
	return a.Role == RoleReviewer
}

type contextKey string

const actorKey contextKey = "actor"

// Auth извлекает личность пользователя из доверенных заголовков.
// Аутентификация выполняется на границе портала; сервис не перепроверяет
// подлинность заголовков. Отсутствующая роль трактуется как requester.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(HeaderUserEmail)
		if email == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingIdentity)
			return
		}

		actor := Actor{
			Email: email,
			Role:  r.Header.Get(HeaderUserRole),
		}
		if actor.Role == "" {
			actor.Role = RoleRequester
		}
		if name := r.Header.Get(HeaderUserName); name != "" {
			actor.Name = &name
		}

		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireReviewer пропускает только пользователей с ролью ревьюера.
// Должен стоять после Auth.
func RequireReviewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok || !actor.IsReviewer() {
			handlers.RespondForbidden(w, msgReviewerOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFromContext возвращает актора запроса, положенного Auth middleware
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}
