package handlers

import (
	"context"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"CrowdCheck/internal/models"
	"CrowdCheck/internal/sessions"
	"CrowdCheck/internal/trust"
)

// fakeCampaignStore — in-memory реализация CampaignStoreI для тестов хендлеров.
type fakeCampaignStore struct {
	nextID int64
	items  []models.Campaign
}

func (f *fakeCampaignStore) Insert(_ context.Context, c *models.Campaign) (int64, error) {
	f.nextID++
	cc := *c
	cc.ID = f.nextID
	f.items = append(f.items, cc)
	return cc.ID, nil
}

func (f *fakeCampaignStore) List(_ context.Context, flt models.CampaignFilter) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, c := range f.items {
		if flt.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(flt.Name)) {
			continue
		}
		if flt.Status != "" && c.Status != flt.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCampaignStore) Aggregate(_ context.Context) (models.CampaignStats, error) {
	var st models.CampaignStats
	st.Total = len(f.items)
	if st.Total == 0 {
		return st, nil
	}
	sum := 0
	for _, c := range f.items {
		sum += c.TrustScore
		switch c.Status {
		case models.StatusApproved:
			st.Approved++
		case models.StatusRejected:
			st.Rejected++
		case models.StatusPending:
			st.Pending++
		}
	}
	st.AvgScore = math.Round(float64(sum)/float64(st.Total)*100) / 100
	return st, nil
}

func (f *fakeCampaignStore) SetStatus(_ context.Context, id int64, status string) (bool, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

// fakeAdminStore — in-memory реализация AdminStoreI.
type fakeAdminStore struct {
	admins map[string]models.Administrator
}

func (f *fakeAdminStore) GetByLogin(_ context.Context, login string) (*models.Administrator, error) {
	a, ok := f.admins[login]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAdminStore) EnsureAdmin(_ context.Context, login, hash string) error {
	if f.admins == nil {
		f.admins = map[string]models.Administrator{}
	}
	if _, ok := f.admins[login]; !ok {
		f.admins[login] = models.Administrator{ID: len(f.admins) + 1, Login: login, PasswordHash: hash}
	}
	return nil
}

const (
	testAdminLogin    = "moderator"
	testAdminPassword = "correct-horse"
)

// newTestHandler собирает Handler поверх фейковых сторов.
func newTestHandler(t *testing.T) (*Handler, *fakeCampaignStore, *fakeAdminStore) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	admins := &fakeAdminStore{}
	_ = admins.EnsureAdmin(context.Background(), testAdminLogin, string(hash))

	log := logrus.New()
	log.SetOutput(io.Discard)

	campaigns := &fakeCampaignStore{}
	h := New(campaigns, admins, sessions.NewManager("test-secret", false), trust.PolicyManual, log, nil)
	h.TemplatesDir = "../../web/templates"
	return h, campaigns, admins
}

// postForm отправляет form-encoded POST через роутер.
func postForm(t *testing.T, router http.Handler, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, router http.Handler, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginCookies логинится тестовым администратором и возвращает сессионные куки.
func loginCookies(t *testing.T, router http.Handler) []*http.Cookie {
	t.Helper()
	rec := postForm(t, router, "/login", url.Values{
		"username": {testAdminLogin},
		"password": {testAdminPassword},
	}, nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin" {
		t.Fatalf("login failed: code=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}
	return cookies
}
