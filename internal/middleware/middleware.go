package middleware

import (
	"net/http"

	"CrowdCheck/internal/sessions"
)

// AdminOnly — обёртка для конкретных хендлеров.
// Позволяет писать: r.Get("/path", mw.AdminOnly(sm, handler))
func AdminOnly(sm *sessions.Manager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sm.GetAdminID(r); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r)
	}
}

// AdminOnlyMW — chi-совместимая мидлварь для групп роутов.
// Позволяет писать: g.Use(mw.AdminOnlyMW(sm))
func AdminOnlyMW(sm *sessions.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sm.GetAdminID(r); !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
