package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"CrowdCheck/internal/models"
	"CrowdCheck/internal/trust"
)

/* ========= ПУБЛИЧНЫЕ СТРАНИЦЫ ========= */

// ShowIndexPage — главная с формой подачи кампании.
func (h *Handler) ShowIndexPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", map[string]any{
		"Title": "Подать кампанию",
	})
}

// SubmitCampaign принимает форму с / и создаёт кампанию.
// Trust score считается здесь один раз; дальше статус меняет только админ.
func (h *Handler) SubmitCampaign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Ошибка формы", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := r.FormValue("description")
	address := strings.TrimSpace(r.FormValue("address"))
	amountStr := strings.TrimSpace(r.FormValue("amount"))

	if name == "" {
		http.Error(w, "Поле 'name' обязательно", http.StatusBadRequest)
		return
	}
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil {
		// раньше это роняло запрос целиком; теперь честный 400
		http.Error(w, "Некорректная сумма: нужно целое число", http.StatusBadRequest)
		return
	}

	score := trust.Score(amount, address, description)
	c := &models.Campaign{
		Name:        name,
		Description: description,
		Amount:      amount,
		Address:     address,
		TrustScore:  score,
		Status:      h.Policy.InitialStatus(score),
	}

	id, err := h.Campaigns.Insert(r.Context(), c)
	if err != nil {
		h.Log.WithError(err).Error("campaign insert failed")
		http.Error(w, "Ошибка БД при сохранении заявки", http.StatusInternalServerError)
		return
	}
	h.invalidateStats(r.Context())

	h.Log.WithFields(logrus.Fields{
		"id":     id,
		"score":  score,
		"status": c.Status,
	}).Info("campaign submitted")

	http.Redirect(w, r, "/", http.StatusFound)
}
