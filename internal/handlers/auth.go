package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

/* ========= АУТЕНТИФИКАЦИЯ АДМИНИСТРАТОРА ========= */

// ShowLoginPage отображает страницу входа администратора
func (h *Handler) ShowLoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "Вход администратора",
	}
	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		data["Error"] = errMsg
	}
	h.render(w, r, "admin/login.html", data)
}

// HandleLogin обрабатывает POST-запрос входа администратора.
// «Нет такого логина» и «неверный пароль» снаружи неразличимы —
// одно сообщение на оба случая, чтобы не перебирали логины.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Ошибка формы", http.StatusFound)
		return
	}

	login := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if login == "" || password == "" {
		http.Redirect(w, r, "/login?error=Заполните все поля", http.StatusFound)
		return
	}

	admin, err := h.Admins.GetByLogin(r.Context(), login)
	if err != nil {
		h.Log.WithError(err).Error("administrator lookup failed")
		http.Redirect(w, r, "/login?error=Ошибка БД", http.StatusFound)
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		h.Log.WithField("login", login).Info("login failed")
		http.Redirect(w, r, "/login?error=Неверный логин или пароль", http.StatusFound)
		return
	}

	if err := h.Sessions.SetAdminID(w, r, admin.ID); err != nil {
		h.Log.WithError(err).Error("session save failed")
		http.Redirect(w, r, "/login?error=Ошибка сессии", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// HandleLogout удаляет сессию и возвращает на главную
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.ClearAdminID(w, r); err != nil {
		h.Log.WithError(err).Error("session clear failed")
		http.Error(w, "Ошибка выхода", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
