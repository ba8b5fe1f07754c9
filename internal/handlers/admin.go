package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"CrowdCheck/internal/models"
)

/* ========= АДМИН-ПАНЕЛЬ ========= */

// AdminDashboard — агрегаты + фильтрованный список кампаний.
// Текущие значения фильтра прокидываются обратно в шаблон.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	statusFilter := r.URL.Query().Get("status")

	stats, err := h.cachedStats(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("aggregate failed")
		http.Error(w, "Ошибка БД", http.StatusInternalServerError)
		return
	}

	campaigns, err := h.Campaigns.List(r.Context(), models.CampaignFilter{
		Name:   search,
		Status: statusFilter,
	})
	if err != nil {
		h.Log.WithError(err).Error("list campaigns failed")
		http.Error(w, "Ошибка БД", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "admin/dashboard.html", map[string]any{
		"Title":        "Модерация кампаний",
		"Campaigns":    campaigns,
		"Stats":        stats,
		"Search":       search,
		"StatusFilter": statusFilter,
	})
}

// ApproveCampaign / RejectCampaign — GET-экшены из дашборда.
// Повторное одобрение уже одобренной кампании — no-op.
func (h *Handler) ApproveCampaign(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusApproved)
}

func (h *Handler) RejectCampaign(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusRejected)
}

// setStatus меняет статус fail-soft: кривой или неизвестный id не показывает
// ошибку админу, но обязательно попадает в лог — иначе опечатки маскируются.
func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"id": idStr, "status": status}).
			Warn("moderation: malformed campaign id, ignored")
		h.redirectToDashboard(w, r)
		return
	}

	ok, err := h.Campaigns.SetStatus(r.Context(), id, status)
	if err != nil {
		h.Log.WithError(err).Error("set status failed")
		http.Error(w, "Ошибка БД", http.StatusInternalServerError)
		return
	}
	if !ok {
		h.Log.WithFields(logrus.Fields{"id": id, "status": status}).
			Warn("moderation: unknown campaign id, ignored")
	} else {
		h.invalidateStats(r.Context())
		h.Log.WithFields(logrus.Fields{"id": id, "status": status}).Info("campaign moderated")
	}

	h.redirectToDashboard(w, r)
}

// redirectToDashboard возвращает на /admin, сохраняя текущий фильтр.
func (h *Handler) redirectToDashboard(w http.ResponseWriter, r *http.Request) {
	q := url.Values{}
	if v := r.URL.Query().Get("search"); v != "" {
		q.Set("search", v)
	}
	if v := r.URL.Query().Get("status"); v != "" {
		q.Set("status", v)
	}
	target := "/admin"
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusFound)
}
