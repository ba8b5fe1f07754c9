package sessions

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "admin_session"

// Manager — обёртка над cookie-store с явным жизненным циклом:
// создаётся один раз в main и передаётся в хендлеры и мидлвари.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager строит store из одного секрета.
// Делаем 2 ключа: подпись + шифрование (устойчивее, чем только подпись).
func NewManager(secret string, secure bool) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60, // 7 дней
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode, // кука по GET тоже отправится
		Secure:   secure,               // локально false, за HTTPS-прокси — true
	}
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, sessionName)
}

// SetAdminID привязывает сессию к id администратора и выставляет Set-Cookie.
func (m *Manager) SetAdminID(w http.ResponseWriter, r *http.Request, adminID int) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	s.Values["admin_id"] = adminID
	return s.Save(r, w)
}

// GetAdminID возвращает id администратора из сессии, если она валидна.
func (m *Manager) GetAdminID(r *http.Request) (int, bool) {
	s, err := m.get(r)
	if err != nil {
		return 0, false
	}
	if v, ok := s.Values["admin_id"].(int); ok {
		return v, true
	}
	return 0, false
}

// ClearAdminID снимает привязку и сохраняет пустую сессию.
func (m *Manager) ClearAdminID(w http.ResponseWriter, r *http.Request) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	delete(s.Values, "admin_id")
	return s.Save(r, w)
}
