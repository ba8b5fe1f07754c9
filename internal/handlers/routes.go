package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	mw "CrowdCheck/internal/middleware"
)

// Routes собирает весь HTTP-роутинг. Вынесено из main, чтобы тесты
// гоняли запросы через тот же роутер, что и прод.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	// базовые middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RedirectSlashes) // /path/ -> /path

	// статика
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// ---------- Публичные страницы ----------
	r.Get("/", h.ShowIndexPage)
	r.Post("/submit", h.SubmitCampaign)

	// ---------- Аутентификация администратора ----------
	r.Get("/login", h.ShowLoginPage)
	r.Post("/login", h.HandleLogin)

	// ---------- Админка (только с валидной сессией) ----------
	r.Group(func(g chi.Router) {
		g.Use(mw.AdminOnlyMW(h.Sessions))

		g.Get("/admin", h.AdminDashboard)
		g.Get("/approve/{id}", h.ApproveCampaign)
		g.Get("/reject/{id}", h.RejectCampaign)
		g.Get("/logout", h.HandleLogout)
	})

	return r
}
