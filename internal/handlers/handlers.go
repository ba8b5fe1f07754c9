package handlers

import (
	"context"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"CrowdCheck/internal/cache"
	"CrowdCheck/internal/models"
	"CrowdCheck/internal/sessions"
	"CrowdCheck/internal/store"
	"CrowdCheck/internal/trust"
)

// ключ и TTL кэша агрегатов дашборда
const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

// Handler держит все зависимости запросов. Собирается один раз в main,
// никаких пакетных глобалов.
type Handler struct {
	Campaigns store.CampaignStoreI
	Admins    store.AdminStoreI
	Sessions  *sessions.Manager
	Policy    trust.Policy
	Log       *logrus.Logger

	// Redis опционален: nil отключает кэш статистики.
	Redis *redis.Client

	// TemplatesDir переопределяется в тестах.
	TemplatesDir string
}

func New(campaigns store.CampaignStoreI, admins store.AdminStoreI, sm *sessions.Manager, policy trust.Policy, log *logrus.Logger, rdb *redis.Client) *Handler {
	return &Handler{
		Campaigns:    campaigns,
		Admins:       admins,
		Sessions:     sm,
		Policy:       policy,
		Log:          log,
		Redis:        rdb,
		TemplatesDir: "web/templates",
	}
}

/* ========= ВСПОМОГАТЕЛЬНОЕ ========= */

// Единый рендер: сам прокидывает .IsAdmin и .Year во все шаблоны
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	_, isAdmin := h.Sessions.GetAdminID(r)
	data["IsAdmin"] = isAdmin
	if _, ok := data["Year"]; !ok {
		data["Year"] = time.Now().Year()
	}

	tmpl, err := template.ParseFiles(
		filepath.Join(h.TemplatesDir, "base.html"),
		filepath.Join(h.TemplatesDir, page),
	)
	if err != nil {
		h.Log.WithError(err).Error("template parse failed")
		http.Error(w, "Ошибка шаблона", http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.Log.WithError(err).Error("template execute failed")
	}
}

// cachedStats отдаёт агрегаты из Redis, при промахе идёт в стор.
func (h *Handler) cachedStats(ctx context.Context) (models.CampaignStats, error) {
	if h.Redis == nil {
		return h.Campaigns.Aggregate(ctx)
	}

	var st models.CampaignStats
	found, err := cache.Get(ctx, h.Redis, statsCacheKey, &st)
	if err != nil {
		// кэш не критичен: логируем и падаем на БД
		h.Log.WithError(err).Warn("stats cache read failed")
	} else if found {
		return st, nil
	}

	st, err = h.Campaigns.Aggregate(ctx)
	if err != nil {
		return models.CampaignStats{}, err
	}
	if err := cache.Set(ctx, h.Redis, statsCacheKey, st, statsCacheTTL); err != nil {
		h.Log.WithError(err).Warn("stats cache write failed")
	}
	return st, nil
}

// invalidateStats сбрасывает кэш после любой мутации кампаний.
func (h *Handler) invalidateStats(ctx context.Context) {
	if h.Redis == nil {
		return
	}
	if err := cache.Delete(ctx, h.Redis, statsCacheKey); err != nil {
		h.Log.WithError(err).Warn("stats cache invalidation failed")
	}
}
